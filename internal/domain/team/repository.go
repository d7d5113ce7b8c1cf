package team

import "context"

type TeamRepository interface {
	Save(ctx context.Context, team *Team) error
	Update(ctx context.Context, team *Team) error
	Delete(ctx context.Context, teamID uint) error
	GetByID(ctx context.Context, teamID uint) (*Team, error)
	GetByName(ctx context.Context, name string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
}
