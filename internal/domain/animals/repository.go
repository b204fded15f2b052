package animals

import "context"

// Repository: List y GetByID ignoran registros con DeletedAt.
type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)
	List(ctx context.Context) ([]Animal, error)

	AddLocation(ctx context.Context, l AnimalLocation) error
	ListLocations(ctx context.Context, animalID string) ([]AnimalLocation, error)
}
