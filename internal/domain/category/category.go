package category

import (
	"fmt"
	"strings"
	"time"
)

const maxNameLength = 50

// Category labels requests for routing and filtering. Names are unique.
type Category struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewCategory(name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	if len(name) > maxNameLength {
		return nil, fmt.Errorf("category name exceeds maximum length of %d characters", maxNameLength)
	}

	return &Category{
		name:      name,
		createdAt: time.Now().UTC(),
	}, nil
}

func ReconstructCategory(id uint, name string, createdAt time.Time) *Category {
	return &Category{
		id:        id,
		name:      name,
		createdAt: createdAt,
	}
}

func (c *Category) ID() uint {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

func (c *Category) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Category) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("category ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Category) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("category name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("category name exceeds maximum length of %d characters", maxNameLength)
	}
	c.name = name
	return nil
}
