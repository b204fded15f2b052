package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"boi-na-nuvem/internal/domain/buyers"
)

type buyerRepo struct {
	mu    sync.RWMutex
	byID  map[string]buyers.Buyer
	order []string
}

func NewBuyerRepo() buyers.Repository {
	return &buyerRepo{
		byID: make(map[string]buyers.Buyer),
	}
}

func (r *buyerRepo) Create(ctx context.Context, b buyers.Buyer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(b.ID) == "" {
		return errors.New("buyer id required")
	}
	if _, exists := r.byID[b.ID]; exists {
		return errors.New("buyer already exists")
	}
	r.byID[b.ID] = b
	r.order = append(r.order, b.ID)
	return nil
}

func (r *buyerRepo) GetByID(ctx context.Context, id string) (buyers.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.byID[id]
	if !ok || b.DeletedAt != nil {
		return buyers.Buyer{}, buyers.ErrNotFound
	}
	return b, nil
}

func (r *buyerRepo) List(ctx context.Context) ([]buyers.Buyer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]buyers.Buyer, 0, len(r.order))
	for _, id := range r.order {
		if b := r.byID[id]; b.DeletedAt == nil {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *buyerRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.byID[id]
	if !ok {
		return buyers.ErrNotFound
	}
	if b.DeletedAt != nil {
		return nil
	}
	b.DeletedAt = &at
	b.UpdatedAt = at
	r.byID[id] = b
	return nil
}
