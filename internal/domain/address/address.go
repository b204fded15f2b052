package address

import "strings"

// Address de compradores y funcionarios. Todos los campos son opcionales.
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// Normalize recorta espacios y pasa el estado (UF) a mayúsculas.
func (a Address) Normalize() Address {
	return Address{
		Street:       strings.TrimSpace(a.Street),
		Number:       strings.TrimSpace(a.Number),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
		State:        strings.ToUpper(strings.TrimSpace(a.State)),
		ZipCode:      strings.TrimSpace(a.ZipCode),
	}
}

// Valid: UF de 2 letras cuando viene informada.
func (a Address) Valid() bool {
	s := strings.TrimSpace(a.State)
	return s == "" || len(s) == 2
}
