package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mnsternik/issue-manager/internal/domain/identity"
)

// Claims carries the identity attributes embedded in an access token.
// The subject is the opaque user identifier issued by the identity provider.
type Claims struct {
	DisplayName string   `json:"name,omitempty"`
	TeamID      *uint    `json:"team_id,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Generate signs an access token for the given viewer.
func (s *JWTService) Generate(viewer *identity.Viewer) (string, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		DisplayName: viewer.DisplayName,
		TeamID:      viewer.TeamID,
		Roles:       viewer.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   viewer.ID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		if claims.Subject == "" {
			return nil, fmt.Errorf("token has no subject")
		}
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// ViewerFromClaims rebuilds the viewer identity carried by a verified token.
// The display name is normalized; a name the normalizer rejects is carried
// through untouched rather than failing authentication.
func ViewerFromClaims(claims *Claims) *identity.Viewer {
	displayName := claims.DisplayName
	if normalized, err := identity.NormalizeDisplayName(displayName); err == nil {
		displayName = normalized
	}

	return &identity.Viewer{
		ID:          claims.Subject,
		DisplayName: displayName,
		TeamID:      claims.TeamID,
		Roles:       claims.Roles,
	}
}
