package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"boi-na-nuvem/internal/domain/employees"
)

type employeeRepo struct {
	mu    sync.RWMutex
	byID  map[string]employees.Employee
	order []string
}

func NewEmployeeRepo() employees.Repository {
	return &employeeRepo{
		byID: make(map[string]employees.Employee),
	}
}

func (r *employeeRepo) Create(ctx context.Context, e employees.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("employee id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("employee already exists")
	}
	r.byID[e.ID] = e
	r.order = append(r.order, e.ID)
	return nil
}

func (r *employeeRepo) GetByID(ctx context.Context, id string) (employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok || e.DeletedAt != nil {
		return employees.Employee{}, employees.ErrNotFound
	}
	return e, nil
}

func (r *employeeRepo) List(ctx context.Context) ([]employees.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]employees.Employee, 0, len(r.order))
	for _, id := range r.order {
		if e := r.byID[id]; e.DeletedAt == nil {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *employeeRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return employees.ErrNotFound
	}
	if e.DeletedAt != nil {
		return nil
	}
	e.DeletedAt = &at
	e.UpdatedAt = at
	r.byID[id] = e
	return nil
}
