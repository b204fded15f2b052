package buyers

import (
	"time"

	"boi-na-nuvem/internal/domain/address"
)

// Buyer es un comprador de animales (frigorífico, otro productor).
// DeletedAt nil = activo.
type Buyer struct {
	ID       string
	Name     string
	Document string // CPF/CNPJ
	Email    string
	Phone    string
	Address  address.Address

	PropertyID string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
