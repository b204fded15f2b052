package properties

import "time"

// Property es una fazenda. Es el alcance de "propiedad seleccionada" que
// usan los listados de animals, buyers y employees.
type Property struct {
	ID           string
	Name         string
	City         string
	State        string
	AreaHectares float64
	CreatedAt    time.Time
}
