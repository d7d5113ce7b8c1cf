package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/domain/identity"
	"github.com/mnsternik/issue-manager/internal/domain/notification"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

// storedRequest builds a persisted-style request for use case tests.
func storedRequest(t *testing.T, id uint, assignedUserID *string, assignedTeamID *uint) *request.Request {
	t.Helper()
	r, err := request.ReconstructRequest(
		id,
		"Stored request", "desc",
		vo.StatusOpen, vo.PriorityMedium,
		2, "u1",
		assignedUserID, assignedTeamID,
		1,
		time.Now().UTC(), nil,
	)
	require.NoError(t, err)
	return r
}

func testViewer(id string, teamID *uint, roles ...string) *identity.Viewer {
	return &identity.Viewer{ID: id, DisplayName: "Viewer", TeamID: teamID, Roles: roles}
}

func storedCategory(t *testing.T, id uint, name string) *category.Category {
	t.Helper()
	return category.ReconstructCategory(id, name, time.Now().UTC())
}

type mockRequestRepository struct {
	SaveFunc    func(ctx context.Context, r *request.Request) error
	UpdateFunc  func(ctx context.Context, r *request.Request) error
	DeleteFunc  func(ctx context.Context, requestID uint) error
	GetByIDFunc func(ctx context.Context, requestID uint) (*request.Request, error)
	ListFunc    func(ctx context.Context, filters request.SearchFilters) ([]*request.Request, int64, error)
}

func (m *mockRequestRepository) Save(ctx context.Context, r *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, r *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, r)
	}
	return nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, requestID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, requestID)
	}
	return nil
}

func (m *mockRequestRepository) GetByID(ctx context.Context, requestID uint) (*request.Request, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filters request.SearchFilters) ([]*request.Request, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filters)
	}
	return nil, 0, nil
}

type mockResponseRepository struct {
	SaveFunc           func(ctx context.Context, r *request.Response) error
	GetByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Response, error)
}

func (m *mockResponseRepository) Save(ctx context.Context, r *request.Response) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

func (m *mockResponseRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*request.Response, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	SaveAllFunc        func(ctx context.Context, requestID uint, attachments []*request.Attachment) error
	GetByIDFunc        func(ctx context.Context, attachmentID uint) (*request.Attachment, error)
	GetByRequestIDFunc func(ctx context.Context, requestID uint) ([]*request.Attachment, error)
}

func (m *mockAttachmentRepository) SaveAll(ctx context.Context, requestID uint, attachments []*request.Attachment) error {
	if m.SaveAllFunc != nil {
		return m.SaveAllFunc(ctx, requestID, attachments)
	}
	return nil
}

func (m *mockAttachmentRepository) GetByID(ctx context.Context, attachmentID uint) (*request.Attachment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, attachmentID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) GetByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	if m.GetByRequestIDFunc != nil {
		return m.GetByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

type mockCategoryRepository struct {
	SaveFunc      func(ctx context.Context, c *category.Category) error
	UpdateFunc    func(ctx context.Context, c *category.Category) error
	DeleteFunc    func(ctx context.Context, categoryID uint) error
	GetByIDFunc   func(ctx context.Context, categoryID uint) (*category.Category, error)
	GetByNameFunc func(ctx context.Context, name string) (*category.Category, error)
	ListFunc      func(ctx context.Context) ([]*category.Category, error)
}

func (m *mockCategoryRepository) Save(ctx context.Context, c *category.Category) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Update(ctx context.Context, c *category.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, categoryID)
	}
	return nil
}

func (m *mockCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*category.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, categoryID)
	}
	return nil, nil
}

func (m *mockCategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockNotificationRepository struct {
	SaveFunc             func(ctx context.Context, n *notification.Notification) error
	GetByRecipientIDFunc func(ctx context.Context, recipientID string) ([]*notification.Notification, error)
	MarkReadFunc         func(ctx context.Context, notificationID uint) error
}

func (m *mockNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, n)
	}
	return nil
}

func (m *mockNotificationRepository) GetByRecipientID(ctx context.Context, recipientID string) ([]*notification.Notification, error) {
	if m.GetByRecipientIDFunc != nil {
		return m.GetByRecipientIDFunc(ctx, recipientID)
	}
	return nil, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, notificationID uint) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID)
	}
	return nil
}

type mockMarkdownService struct {
	ToHTMLFunc          func(markdown string) (string, error)
	SanitizeFunc        func(htmlContent string) string
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return markdown, nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
}

type mockLogger struct {
	DebugFunc  func(msg string, args ...any)
	InfoFunc   func(msg string, args ...any)
	WarnFunc   func(msg string, args ...any)
	ErrorFunc  func(msg string, args ...any)
	DebugwFunc func(msg string, keysAndValues ...interface{})
	InfowFunc  func(msg string, keysAndValues ...interface{})
	WarnwFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
	WithFunc   func(args ...any) interface{}
	NamedFunc  func(name string) interface{}
}

func (m *mockLogger) Debug(msg string, args ...any) {
	if m.DebugFunc != nil {
		m.DebugFunc(msg, args...)
	}
}

func (m *mockLogger) Info(msg string, args ...any) {
	if m.InfoFunc != nil {
		m.InfoFunc(msg, args...)
	}
}

func (m *mockLogger) Warn(msg string, args ...any) {
	if m.WarnFunc != nil {
		m.WarnFunc(msg, args...)
	}
}

func (m *mockLogger) Error(msg string, args ...any) {
	if m.ErrorFunc != nil {
		m.ErrorFunc(msg, args...)
	}
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {
	if m.DebugwFunc != nil {
		m.DebugwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {
	if m.WarnwFunc != nil {
		m.WarnwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) With(args ...any) logger.Interface {
	if m.WithFunc != nil {
		if result, ok := m.WithFunc(args...).(logger.Interface); ok {
			return result
		}
	}
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	if m.NamedFunc != nil {
		if result, ok := m.NamedFunc(name).(logger.Interface); ok {
			return result
		}
	}
	return m
}
