package animals

import "time"

// Status del animal en el rebaño.
type Status string

const (
	StatusActive     Status = "active"
	StatusSold       Status = "sold"
	StatusDead       Status = "dead"
	StatusQuarantine Status = "quarantine"
)

// Phase es la categoría zootécnica.
type Phase string

const (
	PhaseCalf   Phase = "calf"
	PhaseHeifer Phase = "heifer"
	PhaseSteer  Phase = "steer"
	PhaseCow    Phase = "cow"
	PhaseBull   Phase = "bull"
)

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// Pedigree referencia padre/madre por id. Son back-references: no se valida
// que existan ni se borran en cascada.
type Pedigree struct {
	FatherID *string
	MotherID *string
}

type Animal struct {
	ID   string
	Code string // brinco / caravana

	Name      string
	Breed     string
	Sex       Sex
	BirthDate *time.Time
	WeightKg  float64

	Status Status
	Phase  Phase

	PropertyID string
	Pedigree   Pedigree

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// AnimalLocation es el histórico animal <-> local (pasto, curral).
// ExitDate nil = sigue ahí.
type AnimalLocation struct {
	ID         string
	AnimalID   string
	LocationID string
	EntryDate  time.Time
	ExitDate   *time.Time
}
