package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"boi-na-nuvem/internal/domain/properties"
)

type propertyRepo struct {
	mu    sync.RWMutex
	byID  map[string]properties.Property
	order []string
}

func NewPropertyRepo() properties.Repository {
	return &propertyRepo{
		byID: make(map[string]properties.Property),
	}
}

func (r *propertyRepo) Create(ctx context.Context, p properties.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("property id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("property already exists")
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, id string) (properties.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return properties.Property{}, properties.ErrNotFound
	}
	return p, nil
}

func (r *propertyRepo) List(ctx context.Context) ([]properties.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]properties.Property, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}
