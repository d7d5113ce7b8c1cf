package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/category"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, c *category.Category) error {
	model := mappers.CategoryToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	result := r.db.WithContext(ctx).
		Model(&models.CategoryModel{}).
		Where("id = ?", c.ID()).
		Update("name", c.Name())

	if result.Error != nil {
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, categoryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("category not found")
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID uint) (*category.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).First(&model, categoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	var model models.CategoryModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("category not found")
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return mappers.CategoryToDomain(&model), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*category.Category, error) {
	var categoryModels []models.CategoryModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categoryModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*category.Category, len(categoryModels))
	for i, model := range categoryModels {
		categories[i] = mappers.CategoryToDomain(&model)
	}

	return categories, nil
}
