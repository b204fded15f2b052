package buyers

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

const IDPrefix = "BU"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("buyer not found")
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

func (s *Service) List(ctx context.Context, in ListInput) ([]Buyer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.BySelectedProperty(items, strings.TrimSpace(in.SelectedPropertyID), in.AllSelected, propertyOf), nil
}

func propertyOf(b Buyer) string { return b.PropertyID }

func (s *Service) GetByID(ctx context.Context, id string) (Buyer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Buyer{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Name       string
	Document   string
	Email      string
	Phone      string
	Address    address.Address
	PropertyID string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Buyer, error) {
	name := strings.TrimSpace(in.Name)
	propertyID := strings.TrimSpace(in.PropertyID)
	if name == "" || propertyID == "" {
		return Buyer{}, ErrInvalidInput
	}

	email := strings.TrimSpace(in.Email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Buyer{}, ErrInvalidInput
		}
	}
	if !in.Address.Valid() {
		return Buyer{}, ErrInvalidInput
	}

	now := s.now()
	b := Buyer{
		ID:         s.ids.Next(IDPrefix),
		Name:       name,
		Document:   strings.TrimSpace(in.Document),
		Email:      email,
		Phone:      strings.TrimSpace(in.Phone),
		Address:    in.Address.Normalize(),
		PropertyID: propertyID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return Buyer{}, err
	}
	return b, nil
}

// SoftDelete marca DeletedAt. Borrar dos veces no es error.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.SoftDelete(ctx, id, s.now())
}
