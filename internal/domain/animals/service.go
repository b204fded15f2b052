package animals

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"boi-na-nuvem/internal/platform/filter"
	"boi-na-nuvem/internal/platform/idgen"

	"github.com/google/uuid"
)

const IDPrefix = "AN"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
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

// ListInput es el contexto de propiedad seleccionada en la UI.
type ListInput struct {
	SelectedPropertyID string
	AllSelected        bool
}

func (s *Service) List(ctx context.Context, in ListInput) ([]Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.BySelectedProperty(items, strings.TrimSpace(in.SelectedPropertyID), in.AllSelected, propertyOf), nil
}

func propertyOf(a Animal) string { return a.PropertyID }

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

type CreateInput struct {
	Code       string
	Name       string
	Breed      string
	Sex        Sex
	BirthDate  *time.Time
	WeightKg   float64
	Status     Status
	Phase      Phase
	PropertyID string
	FatherID   *string
	MotherID   *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.PropertyID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if in.WeightKg < 0 {
		return Animal{}, ErrInvalidInput
	}

	status := in.Status
	if status == "" {
		status = StatusActive
	}
	if !status.Valid() || !in.Phase.Valid() {
		return Animal{}, ErrInvalidInput
	}
	if in.Sex != "" && in.Sex != SexMale && in.Sex != SexFemale {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	if in.BirthDate != nil && in.BirthDate.After(now) {
		return Animal{}, ErrInvalidInput
	}

	a := Animal{
		ID:         s.ids.Next(IDPrefix),
		Code:       strings.TrimSpace(in.Code),
		Name:       strings.TrimSpace(in.Name),
		Breed:      strings.TrimSpace(in.Breed),
		Sex:        in.Sex,
		BirthDate:  in.BirthDate,
		WeightKg:   in.WeightKg,
		Status:     status,
		Phase:      in.Phase,
		PropertyID: strings.TrimSpace(in.PropertyID),
		Pedigree: Pedigree{
			FatherID: trimmedOrNil(in.FatherID),
			MotherID: trimmedOrNil(in.MotherID),
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

type LocationInput struct {
	LocationID string
	EntryDate  time.Time
	ExitDate   *time.Time
}

// RecordLocation agrega una entrada al histórico de locales del animal.
func (s *Service) RecordLocation(ctx context.Context, animalID string, in LocationInput) (AnimalLocation, error) {
	if strings.TrimSpace(in.LocationID) == "" || in.EntryDate.IsZero() {
		return AnimalLocation{}, ErrInvalidInput
	}
	if in.ExitDate != nil && in.ExitDate.Before(in.EntryDate) {
		return AnimalLocation{}, ErrInvalidInput
	}

	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return AnimalLocation{}, err
	}

	l := AnimalLocation{
		ID:         uuid.NewString(),
		AnimalID:   a.ID,
		LocationID: strings.TrimSpace(in.LocationID),
		EntryDate:  in.EntryDate,
		ExitDate:   in.ExitDate,
	}
	if err := s.repo.AddLocation(ctx, l); err != nil {
		return AnimalLocation{}, err
	}
	return l, nil
}

// Locations devuelve el histórico ordenado por fecha de entrada asc.
func (s *Service) Locations(ctx context.Context, animalID string) ([]AnimalLocation, error) {
	a, err := s.GetByID(ctx, animalID)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListLocations(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].EntryDate.Before(items[j].EntryDate)
	})
	return items, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
