package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/mnsternik/issue-manager/internal/domain/team"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/mappers"
	"github.com/mnsternik/issue-manager/internal/infrastructure/persistence/models"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Save(ctx context.Context, t *team.Team) error {
	model := mappers.TeamToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TeamRepository) Update(ctx context.Context, t *team.Team) error {
	result := r.db.WithContext(ctx).
		Model(&models.TeamModel{}).
		Where("id = ?", t.ID()).
		Update("name", t.Name())

	if result.Error != nil {
		return fmt.Errorf("failed to update team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("team not found")
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, teamID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TeamModel{}, teamID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete team: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("team not found")
	}
	return nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID uint) (*team.Team, error) {
	var model models.TeamModel

	if err := r.db.WithContext(ctx).First(&model, teamID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return mappers.TeamToDomain(&model), nil
}

func (r *TeamRepository) GetByName(ctx context.Context, name string) (*team.Team, error) {
	var model models.TeamModel

	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("team not found")
		}
		return nil, fmt.Errorf("failed to find team: %w", err)
	}

	return mappers.TeamToDomain(&model), nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	var teamModels []models.TeamModel

	if err := r.db.WithContext(ctx).Order("name ASC").Find(&teamModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	teams := make([]*team.Team, len(teamModels))
	for i, model := range teamModels {
		teams[i] = mappers.TeamToDomain(&model)
	}

	return teams, nil
}
