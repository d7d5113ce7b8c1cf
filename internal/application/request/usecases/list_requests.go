package usecases

import (
	"context"
	"time"

	"github.com/mnsternik/issue-manager/internal/application/request/dto"
	"github.com/mnsternik/issue-manager/internal/domain/request"
	vo "github.com/mnsternik/issue-manager/internal/domain/request/value_objects"
	"github.com/mnsternik/issue-manager/internal/shared/constants"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
	"github.com/mnsternik/issue-manager/internal/shared/utils"
)

type ListRequestsQuery struct {
	RequestID      *uint
	Title          *string
	Description    *string
	Status         *string
	Priority       *string
	CategoryID     *uint
	AuthorID       *string
	AssignedUserID *string
	AssignedTeamID *uint
	CreatedAfter   *time.Time
	CreatedBefore  *time.Time
	UpdatedAfter   *time.Time
	UpdatedBefore  *time.Time
	Page           int
}

type ListRequestsResult struct {
	Requests []dto.RequestListItemDTO
	Meta     utils.PageMeta
}

type ListRequestsUseCase struct {
	requestRepo request.RequestRepository
	logger      logger.Interface
}

func NewListRequestsUseCase(
	requestRepo request.RequestRepository,
	logger logger.Interface,
) *ListRequestsUseCase {
	return &ListRequestsUseCase{
		requestRepo: requestRepo,
		logger:      logger,
	}
}

func (uc *ListRequestsUseCase) Execute(
	ctx context.Context,
	query ListRequestsQuery,
) (*ListRequestsResult, error) {
	// Page size is fixed; callers cannot widen a page. A page below 1 is
	// passed through and comes back as an empty page.
	filters := request.SearchFilters{
		RequestID:      query.RequestID,
		Title:          query.Title,
		Description:    query.Description,
		CategoryID:     query.CategoryID,
		AuthorID:       query.AuthorID,
		AssignedUserID: query.AssignedUserID,
		AssignedTeamID: query.AssignedTeamID,
		CreatedAfter:   query.CreatedAfter,
		CreatedBefore:  query.CreatedBefore,
		UpdatedAfter:   query.UpdatedAfter,
		UpdatedBefore:  query.UpdatedBefore,
		Page:           query.Page,
		PageSize:       constants.RequestPageSize,
	}

	if query.Status != nil {
		status, err := vo.NewStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status")
		}
		filters.Status = &status
	}

	if query.Priority != nil {
		priority, err := vo.NewPriority(*query.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		filters.Priority = &priority
	}

	requests, totalCount, err := uc.requestRepo.List(ctx, filters)
	if err != nil {
		uc.logger.Errorw("failed to list requests", "error", err)
		return nil, errors.NewInternalError("failed to list requests")
	}

	items := make([]dto.RequestListItemDTO, 0, len(requests))
	for _, r := range requests {
		items = append(items, dto.ToRequestListItemDTO(r))
	}

	uc.logger.Infow("requests listed",
		"count", len(items),
		"total", totalCount,
		"page", query.Page)

	return &ListRequestsResult{
		Requests: items,
		Meta:     utils.NewPageMeta(totalCount, query.Page, constants.RequestPageSize),
	}, nil
}
