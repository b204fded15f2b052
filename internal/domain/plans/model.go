package plans

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PlanID acepta id string o numérico del backend; se normaliza a string.
type PlanID string

func (id *PlanID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = PlanID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("plan id: %w", err)
	}
	*id = PlanID(n.String())
	return nil
}

// Plan es un nivel de suscripción ofrecido al usuario. Solo lectura.
type Plan struct {
	ID          PlanID   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	AnnualPrice float64  `json:"annualPrice"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	IsPopular   *bool    `json:"isPopular,omitempty"`
}

// PlansResponse es el envelope del backend: {success, data, count}.
type PlansResponse struct {
	Success bool   `json:"success"`
	Data    []Plan `json:"data"`
	Count   int    `json:"count"`
}

// envelope crudo: data queda sin decodificar para poder validar que sea array.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   json.RawMessage `json:"count"`
}
