package properties

import "context"

type Repository interface {
	Create(ctx context.Context, p Property) error
	GetByID(ctx context.Context, id string) (Property, error)
	List(ctx context.Context) ([]Property, error)
}
