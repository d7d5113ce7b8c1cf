package team

import (
	"fmt"
	"strings"
	"time"
)

const maxNameLength = 50

// Team groups users for request routing. Requests assigned to a team member
// become visible to the whole team.
type Team struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewTeam(name string) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("team name exceeds maximum length of %d characters", maxNameLength)
	}

	return &Team{
		name:      name,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructTeam(id uint, name string, createdAt time.Time) *Team {
	return &Team{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}
}

func (t *Team) ID() uint {
	return t.id
}

func (t *Team) Name() string {
	return t.name
}

func (t *Team) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("team ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Team) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("team name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("team name exceeds maximum length of %d characters", maxNameLength)
	}
	t.name = name
	return nil
}
