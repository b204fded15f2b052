package employees

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"boi-na-nuvem/internal/domain/address"
	"boi-na-nuvem/internal/platform/filter"
	"boi-na-nuvem/internal/platform/idgen"
)

const IDPrefix = "EM"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("employee not found")
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

type ListInput struct {
	SelectedPropertyID string
	AllSelected        bool
}

func (s *Service) List(ctx context.Context, in ListInput) ([]Employee, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.BySelectedProperty(items, strings.TrimSpace(in.SelectedPropertyID), in.AllSelected, func(e Employee) string {
		return e.PropertyID
	}), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Employee{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name       string
	Role       Role
	Email      string
	Phone      string
	Salary     float64
	Address    address.Address
	PropertyID string
	HiredAt    *time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Employee, error) {
	name := strings.TrimSpace(in.Name)
	propertyID := strings.TrimSpace(in.PropertyID)
	if name == "" || propertyID == "" || !in.Role.Valid() {
		return Employee{}, ErrInvalidInput
	}
	if in.Salary < 0 || !in.Address.Valid() {
		return Employee{}, ErrInvalidInput
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Employee{}, ErrInvalidInput
		}
	}

	now := s.now()
	if in.HiredAt != nil && in.HiredAt.After(now) {
		return Employee{}, ErrInvalidInput
	}

	e := Employee{
		ID:         s.ids.Next(IDPrefix),
		Name:       name,
		Role:       in.Role,
		Email:      email,
		Phone:      strings.TrimSpace(in.Phone),
		Salary:     in.Salary,
		Address:    in.Address.Normalize(),
		PropertyID: propertyID,
		HiredAt:    in.HiredAt,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return Employee{}, err
	}
	return e, nil
}

func (s *Service) SoftDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.SoftDelete(ctx, id, s.now())
}
