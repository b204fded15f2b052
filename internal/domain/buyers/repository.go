package buyers

import (
	"context"
	"time"
)

// Repository: GetByID y List ignoran borrados.
// SoftDelete devuelve ErrNotFound si el id no existe; si ya estaba borrado
// no cambia DeletedAt.
type Repository interface {
	Create(ctx context.Context, b Buyer) error
	GetByID(ctx context.Context, id string) (Buyer, error)
	List(ctx context.Context) ([]Buyer, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
