package team

import (
	"context"
	"time"

	"github.com/mnsternik/issue-manager/internal/domain/team"
	"github.com/mnsternik/issue-manager/internal/shared/errors"
	"github.com/mnsternik/issue-manager/internal/shared/logger"
)

type TeamDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Service manages teams. Team membership itself lives in the identity
// provider; this catalog only backs request routing.
type Service struct {
	teamRepo team.TeamRepository
	logger   logger.Interface
}

func NewService(teamRepo team.TeamRepository, logger logger.Interface) *Service {
	return &Service{
		teamRepo: teamRepo,
		logger:   logger,
	}
}

func (s *Service) Create(ctx context.Context, name string) (*TeamDTO, error) {
	tm, err := team.NewTeam(name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := s.teamRepo.GetByName(ctx, tm.Name()); err == nil && existing != nil {
		return nil, errors.NewConflictError("team name already exists", tm.Name())
	} else if err != nil && !errors.IsNotFoundError(err) {
		s.logger.Errorw("failed to check team name", "error", err)
		return nil, errors.NewInternalError("failed to create team")
	}

	if err := s.teamRepo.Save(ctx, tm); err != nil {
		s.logger.Errorw("failed to save team", "error", err, "name", tm.Name())
		return nil, errors.NewInternalError("failed to create team")
	}

	s.logger.Infow("team created", "team_id", tm.ID(), "name", tm.Name())

	return toTeamDTO(tm), nil
}

func (s *Service) Rename(ctx context.Context, teamID uint, name string) (*TeamDTO, error) {
	tm, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewInternalError("failed to load team")
	}

	if err := tm.Rename(name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if existing, err := s.teamRepo.GetByName(ctx, tm.Name()); err == nil && existing != nil && existing.ID() != tm.ID() {
		return nil, errors.NewConflictError("team name already exists", tm.Name())
	} else if err != nil && !errors.IsNotFoundError(err) {
		return nil, errors.NewInternalError("failed to rename team")
	}

	if err := s.teamRepo.Update(ctx, tm); err != nil {
		s.logger.Errorw("failed to update team", "error", err, "team_id", teamID)
		return nil, errors.NewInternalError("failed to rename team")
	}

	return toTeamDTO(tm), nil
}

func (s *Service) Delete(ctx context.Context, teamID uint) error {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewInternalError("failed to load team")
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		s.logger.Errorw("failed to delete team", "error", err, "team_id", teamID)
		return errors.NewInternalError("failed to delete team")
	}

	s.logger.Infow("team deleted", "team_id", teamID)
	return nil
}

func (s *Service) List(ctx context.Context) ([]TeamDTO, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		s.logger.Errorw("failed to list teams", "error", err)
		return nil, errors.NewInternalError("failed to list teams")
	}

	items := make([]TeamDTO, 0, len(teams))
	for _, tm := range teams {
		items = append(items, *toTeamDTO(tm))
	}
	return items, nil
}

func toTeamDTO(tm *team.Team) *TeamDTO {
	return &TeamDTO{
		ID:        tm.ID(),
		Name:      tm.Name(),
		CreatedAt: tm.CreatedAt(),
	}
}
