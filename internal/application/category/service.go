package category

import (
	"context"
	"time"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type CategoryDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Service manages the category catalog. Names are unique; uniqueness is
// checked here rather than relying on the database constraint so the caller
// gets a conflict instead of a driver error.
type Service struct {
	categoryRepo category.CategoryRepository
	logger       logger.Interface
}

func NewService(categoryRepo category.CategoryRepository, logger logger.Interface) *Service {
	return &Service{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *Service) Create(ctx context.Context, name string) (*CategoryDTO, error) {
	c, err := category.NewCategory(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := s.categoryRepo.GetByName(ctx, c.Name()); err == nil && existing != nil {
		return nil, errors.NewConflictError("category name already exists", c.Name())
	} else if err != nil && !errors.IsNotFoundError(err) {
		s.logger.Errorw("failed to check category name", "error", err)
		return nil, errors.NewInternalError("failed to create category")
	}

	if err := s.categoryRepo.Save(ctx, c); err != nil {
		s.logger.Errorw("failed to save category", "error", err, "name", c.Name())
		return nil, errors.NewInternalError("failed to create category")
	}

	s.logger.Infow("category created", "category_id", c.ID(), "name", c.Name())

	return toCategoryDTO(c), nil
}

func (s *Service) Rename(ctx context.Context, categoryID uint, name string) (*CategoryDTO, error) {
	c, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load category")
	}

	if err := c.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := s.categoryRepo.GetByName(ctx, c.Name()); err == nil && existing != nil && existing.ID() != c.ID() {
		return nil, errors.NewConflictError("category name already exists", c.Name())
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.NewInternalError("failed to rename category")
	}

	if err := s.categoryRepo.Update(ctx, c); err != nil {
		s.logger.Errorw("failed to update category", "error", err, "category_id", categoryID)
		return nil, errors.NewInternalError("failed to rename category")
	}

	return toCategoryDTO(c), nil
}

func (s *Service) Delete(ctx context.Context, categoryID uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to load category")
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		s.logger.Errorw("failed to delete category", "error", err, "category_id", categoryID)
		return errors.NewInternalError("failed to delete category")
	}

	s.logger.Infow("category deleted", "category_id", categoryID)
	return nil
}

func (s *Service) List(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list categories", "error", err)
		return nil, errors.NewInternalError("failed to list categories")
	}

	items := make([]CategoryDTO, 0, len(categories))
	for _, c := range categories {
		items = append(items, *toCategoryDTO(c))
	}
	return items, nil
}

func toCategoryDTO(c *category.Category) *CategoryDTO {
	return &CategoryDTO{
		ID:        c.ID(),
		Name:      c.Name(),
		CreatedAt: c.CreatedAt(),
	}
}
