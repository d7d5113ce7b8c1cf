package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.RequestModel{},
		&models.ResponseModel{},
		&models.AttachmentModel{},
		&models.CategoryModel{},
		&models.TeamModel{},
		&models.NotificationModel{},
	)
	require.NoError(t, err)

	return db
}

func createTestRequest(t *testing.T, title, description, authorID string) *request.Request {
	req, err := request.NewRequest(title, description, vo.PriorityMedium, 1, authorID)
	require.NoError(t, err)
	return req
}

func TestRequestRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("save new request successfully", func(t *testing.T) {
		req := createTestRequest(t, "Broken keyboard", "Keys are stuck", "u1")

		err := repo.Save(ctx, req)
		assert.NoError(t, err)
		assert.NotZero(t, req.ID())
	})

	t.Run("save request with attachments", func(t *testing.T) {
		req := createTestRequest(t, "With files", "See attached", "u1")
		att, err := request.NewAttachment("log.txt", "text/plain", []byte("log data"))
		require.NoError(t, err)
		req.AttachFiles([]*request.Attachment{att})

		err = repo.Save(ctx, req)
		require.NoError(t, err)

		attachmentRepo := NewAttachmentRepository(db)
		stored, err := attachmentRepo.GetByRequestID(ctx, req.ID())
		require.NoError(t, err)
		require.Len(t, stored, 1)
		assert.Equal(t, "log.txt", stored[0].FileName())
		assert.Equal(t, []byte("log data"), stored[0].Data())
	})

	t.Run("roundtrip preserves fields", func(t *testing.T) {
		req := createTestRequest(t, "Roundtrip", "desc", "u7")
		require.NoError(t, repo.Save(ctx, req))

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, "Roundtrip", found.Title())
		assert.Equal(t, "u7", found.AuthorID())
		assert.Equal(t, vo.StatusOpen, found.Status())
		assert.Equal(t, 1, found.Version())
		assert.Nil(t, found.AssignedUserID())
	})
}

func TestRequestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	t.Run("update persists assignment and bumps version", func(t *testing.T) {
		req := createTestRequest(t, "Assign me", "desc", "u1")
		require.NoError(t, repo.Save(ctx, req))

		teamID := uint(3)
		require.NoError(t, req.AssignTo("u2", &teamID))
		require.NoError(t, repo.Update(ctx, req))

		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		require.NotNil(t, found.AssignedUserID())
		assert.Equal(t, "u2", *found.AssignedUserID())
		assert.Equal(t, uint(3), *found.AssignedTeamID())
		assert.Equal(t, 2, found.Version())
		assert.Equal(t, vo.StatusOpen, found.Status(), "assignment leaves status untouched")
	})

	t.Run("stale version returns conflict", func(t *testing.T) {
		req := createTestRequest(t, "Contended", "desc", "u1")
		require.NoError(t, repo.Save(ctx, req))

		first, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		second, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)

		require.NoError(t, first.AssignTo("u2", nil))
		require.NoError(t, repo.Update(ctx, first))

		require.NoError(t, second.AssignTo("u3", nil))
		err = repo.Update(ctx, second)
		require.Error(t, err)
		assert.True(t, errors.IsConflictError(err))

		// The second writer's change must not be visible.
		found, err := repo.GetByID(ctx, req.ID())
		require.NoError(t, err)
		assert.Equal(t, "u2", *found.AssignedUserID())
	})

	t.Run("update of deleted request returns not found", func(t *testing.T) {
		req := createTestRequest(t, "Doomed", "desc", "u1")
		require.NoError(t, repo.Save(ctx, req))
		require.NoError(t, repo.Delete(ctx, req.ID()))

		require.NoError(t, req.AssignTo("u2", nil))
		err := repo.Update(ctx, req)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestRequestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	responseRepo := NewResponseRepository(db)
	attachmentRepo := NewAttachmentRepository(db)
	ctx := context.Background()

	t.Run("delete cascades to responses and attachments", func(t *testing.T) {
		req := createTestRequest(t, "To delete", "desc", "u1")
		att, err := request.NewAttachment("file.pdf", "application/pdf", []byte("pdf"))
		require.NoError(t, err)
		req.AttachFiles([]*request.Attachment{att})
		require.NoError(t, repo.Save(ctx, req))

		resp, err := request.NewResponse(req.ID(), "u2", "on it")
		require.NoError(t, err)
		require.NoError(t, responseRepo.Save(ctx, resp))

		require.NoError(t, repo.Delete(ctx, req.ID()))

		_, err = repo.GetByID(ctx, req.ID())
		assert.True(t, errors.IsNotFoundError(err))

		responses, err := responseRepo.GetByRequestID(ctx, req.ID())
		require.NoError(t, err)
		assert.Empty(t, responses)

		attachments, err := attachmentRepo.GetByRequestID(ctx, req.ID())
		require.NoError(t, err)
		assert.Empty(t, attachments)
	})

	t.Run("delete missing request returns not found", func(t *testing.T) {
		err := repo.Delete(ctx, 9999)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func seedRequestModel(t *testing.T, db *gorm.DB, title, description, status, authorID string, assignedUserID *string, assignedTeamID *uint, createdAt time.Time) uint {
	t.Helper()
	model := &models.RequestModel{
		Title:          title,
		Description:    description,
		Status:         status,
		Priority:       vo.PriorityMedium.String(),
		CategoryID:     1,
		AuthorID:       authorID,
		AssignedUserID: assignedUserID,
		AssignedTeamID: assignedTeamID,
		Version:        1,
		CreatedAt:      createdAt.UnixMilli(),
	}
	require.NoError(t, db.Create(model).Error)
	return model.ID
}

func TestRequestRepository_List(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	userID := "u2"
	teamID := uint(3)

	seedRequestModel(t, db, "Printer offline", "Third floor printer", "open", "u1", nil, nil, base)
	seedRequestModel(t, db, "VPN drops hourly", "Printer unrelated text", "open", "u1", &userID, &teamID, base.Add(time.Hour))
	seedRequestModel(t, db, "Laptop battery", "Drains fast", "closed", "u9", nil, nil, base.Add(2*time.Hour))

	t.Run("title substring match is case-insensitive", func(t *testing.T) {
		title := "PRINTER"
		results, total, err := repo.List(ctx, request.SearchFilters{Title: &title, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Printer offline", results[0].Title())
	})

	t.Run("filters combine with AND", func(t *testing.T) {
		desc := "printer"
		status := vo.StatusOpen
		results, total, err := repo.List(ctx, request.SearchFilters{
			Description:    &desc,
			Status:         &status,
			AssignedUserID: &userID,
			Page:           1,
			PageSize:       10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "VPN drops hourly", results[0].Title())
	})

	t.Run("timestamp bounds are inclusive", func(t *testing.T) {
		after := base.Add(time.Hour)
		before := base.Add(time.Hour)
		results, total, err := repo.List(ctx, request.SearchFilters{
			CreatedAfter:  &after,
			CreatedBefore: &before,
			Page:          1,
			PageSize:      10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, "VPN drops hourly", results[0].Title())
	})

	t.Run("results ordered by created_at descending", func(t *testing.T) {
		results, total, err := repo.List(ctx, request.SearchFilters{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, results, 3)
		assert.Equal(t, "Laptop battery", results[0].Title())
		assert.Equal(t, "Printer offline", results[2].Title())
	})

	t.Run("pagination slices by page", func(t *testing.T) {
		results, total, err := repo.List(ctx, request.SearchFilters{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, results, 1)
		assert.Equal(t, "Printer offline", results[0].Title())
	})

	t.Run("page past the end is empty, not an error", func(t *testing.T) {
		results, total, err := repo.List(ctx, request.SearchFilters{Page: 9, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Empty(t, results)
	})

	t.Run("page below one is empty, not an error", func(t *testing.T) {
		for _, page := range []int{0, -3} {
			results, total, err := repo.List(ctx, request.SearchFilters{Page: page, PageSize: 10})
			require.NoError(t, err)
			assert.Equal(t, int64(3), total)
			assert.Empty(t, results)
		}
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		results, total, err := repo.List(ctx, request.SearchFilters{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, results, 3)
	})

	t.Run("filter by id", func(t *testing.T) {
		wantID := seedRequestModel(t, db, "Monitor flickers", "Left screen", "open", "u1", nil, nil, base.Add(3*time.Hour))
		results, total, err := repo.List(ctx, request.SearchFilters{RequestID: &wantID, Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, results, 1)
		assert.Equal(t, wantID, results[0].ID())
	})
}

func TestResponseRepository_SaveAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRequestRepository(db)
	responseRepo := NewResponseRepository(db)
	ctx := context.Background()

	req := createTestRequest(t, "Threaded", "desc", "u1")
	require.NoError(t, repo.Save(ctx, req))

	first, err := request.NewResponse(req.ID(), "u2", "first reply")
	require.NoError(t, err)
	require.NoError(t, responseRepo.Save(ctx, first))
	assert.NotZero(t, first.ID())

	second, err := request.NewResponse(req.ID(), "u3", "second reply")
	require.NoError(t, err)
	require.NoError(t, responseRepo.Save(ctx, second))

	responses, err := responseRepo.GetByRequestID(ctx, req.ID())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "first reply", responses[0].Text())
	assert.Equal(t, "second reply", responses[1].Text())
}
