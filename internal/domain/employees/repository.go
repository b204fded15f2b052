package employees

import (
	"context"
	"time"
)

// Repository: mismo contrato de borrado lógico que buyers.
type Repository interface {
	Create(ctx context.Context, e Employee) error
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
