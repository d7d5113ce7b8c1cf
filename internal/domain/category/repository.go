package category

import "context"

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID uint) error
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}
