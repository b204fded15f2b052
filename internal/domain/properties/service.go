package properties

import (
	"context"
	"errors"
	"strings"
	"time"

	"boi-na-nuvem/internal/platform/idgen"
)

const IDPrefix = "PR"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("property not found")
)

type Service struct {
	repo Repository
	ids  *idgen.Generator
	now  func() time.Time
}

func NewService(repo Repository, ids *idgen.Generator) *Service {
	if ids == nil {
		ids = idgen.Default
	}
	return &Service{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Property, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Property, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Property{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name         string
	City         string
	State        string
	AreaHectares float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Property, error) {
	name := strings.TrimSpace(in.Name)
	state := strings.ToUpper(strings.TrimSpace(in.State))
	if name == "" || in.AreaHectares < 0 {
		return Property{}, ErrInvalidInput
	}
	if state != "" && len(state) != 2 {
		return Property{}, ErrInvalidInput
	}

	p := Property{
		ID:           s.ids.Next(IDPrefix),
		Name:         name,
		City:         strings.TrimSpace(in.City),
		State:        state,
		AreaHectares: in.AreaHectares,
		CreatedAt:    s.now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Property{}, err
	}
	return p, nil
}
