package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"boi-na-nuvem/internal/domain/animals"
)

type animalRepo struct {
	mu        sync.RWMutex
	byID      map[string]animals.Animal
	order     []string // orden de inserción, List lo respeta
	locations map[string][]animals.AnimalLocation
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID:      make(map[string]animals.Animal),
		locations: make(map[string][]animals.AnimalLocation),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return nil
}

func (r *animalRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok || a.DeletedAt != nil {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.order))
	for _, id := range r.order {
		if a := r.byID[id]; a.DeletedAt == nil {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *animalRepo) AddLocation(ctx context.Context, l animals.AnimalLocation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[l.AnimalID]; !ok {
		return animals.ErrNotFound
	}
	r.locations[l.AnimalID] = append(r.locations[l.AnimalID], l)
	return nil
}

func (r *animalRepo) ListLocations(ctx context.Context, animalID string) ([]animals.AnimalLocation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src := r.locations[animalID]
	out := make([]animals.AnimalLocation, len(src))
	copy(out, src)
	return out, nil
}
