package employees

import (
	"time"

	"boi-na-nuvem/internal/domain/address"
)

// Role del funcionario en la fazenda.
type Role string

const (
	RoleManager    Role = "manager"
	RoleCowboy     Role = "cowboy" // vaqueiro
	RoleVet        Role = "veterinarian"
	RoleOperator   Role = "operator"
	RoleAdminStaff Role = "admin"
)

var Roles = []Role{RoleManager, RoleCowboy, RoleVet, RoleOperator, RoleAdminStaff}

func (r Role) Valid() bool {
	for _, v := range Roles {
		if r == v {
			return true
		}
	}
	return false
}

type Employee struct {
	ID      string
	Name    string
	Role    Role
	Email   string
	Phone   string
	Salary  float64 // mensual, BRL
	Address address.Address

	PropertyID string
	HiredAt    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}
