package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/infrastructure/auth"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthTestContext(token string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/requests", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func newTestAuthMiddleware() (*AuthMiddleware, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", 15)
	return NewAuthMiddleware(jwtService, logger.NewLogger()), jwtService
}

func signedToken(t *testing.T, jwtService *auth.JWTService, viewer *identity.Viewer) string {
	t.Helper()
	token, err := jwtService.Generate(viewer)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_RequireAuth_ValidToken(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()

	teamID := uint(3)
	viewer := &identity.Viewer{
		ID:          "u1",
		DisplayName: "Jan Kowalski",
		TeamID:      &teamID,
		Roles:       []string{"User"},
	}
	c, w := newAuthTestContext(signedToken(t, jwtService, viewer))

	m.RequireAuth()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)

	resolved := ViewerFromContext(c)
	require.NotNil(t, resolved)
	assert.Equal(t, "u1", resolved.ID)
	assert.Equal(t, "Jan Kowalski", resolved.DisplayName)
	require.NotNil(t, resolved.TeamID)
	assert.Equal(t, uint(3), *resolved.TeamID)
	assert.Equal(t, []string{"User"}, resolved.Roles)
}

func TestAuthMiddleware_RequireAuth_MissingToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("")

	m.RequireAuth()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, ViewerFromContext(c))
}

func TestAuthMiddleware_RequireAuth_InvalidToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("not-a-token")

	m.RequireAuth()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RequireAuth_WrongSecret(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	other := auth.NewJWTService("other-secret", 15)
	c, w := newAuthTestContext(signedToken(t, other, &identity.Viewer{ID: "u1"}))

	m.RequireAuth()(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_OptionalAuth_NoToken(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("")

	m.OptionalAuth()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, ViewerFromContext(c))
}

func TestAuthMiddleware_OptionalAuth_InvalidTokenPassesThrough(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("garbage")

	m.OptionalAuth()(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, ViewerFromContext(c))
}

func TestAuthMiddleware_OptionalAuth_ValidToken(t *testing.T) {
	m, jwtService := newTestAuthMiddleware()

	c, _ := newAuthTestContext(signedToken(t, jwtService, &identity.Viewer{ID: "u7"}))

	m.OptionalAuth()(c)

	assert.False(t, c.IsAborted())
	resolved := ViewerFromContext(c)
	require.NotNil(t, resolved)
	assert.Equal(t, "u7", resolved.ID)
	assert.Nil(t, resolved.TeamID)
}

func TestAuthMiddleware_RequireRole_Admin(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("")
	c.Set(constants.ContextKeyViewer, &identity.Viewer{ID: "a1", Roles: []string{constants.RoleAdmin}})

	m.RequireRole(constants.RoleAdmin)(c)

	assert.False(t, c.IsAborted())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_RequireRole_MissingRole(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("")
	c.Set(constants.ContextKeyViewer, &identity.Viewer{ID: "u1", Roles: []string{"User"}})

	m.RequireRole(constants.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthMiddleware_RequireRole_NoViewer(t *testing.T) {
	m, _ := newTestAuthMiddleware()

	c, w := newAuthTestContext("")

	m.RequireRole(constants.RoleAdmin)(c)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
