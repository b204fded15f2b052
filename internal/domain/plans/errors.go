package plans

import (
	"errors"
	"fmt"
)

var (
	ErrFetch      = errors.New("plans fetch failed")
	ErrValidation = errors.New("plans response invalid")
)

const invalidFormatMsg = "invalid plans response format"

// FetchError: el backend respondió con status fuera de 2xx.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch plans: status %d", e.StatusCode)
}

func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// ValidationError: respuesta 2xx con envelope inválido
// (success=false o data que no es array). El mensaje es fijo; el detalle
// queda en Cause.
type ValidationError struct {
	Cause error
}

func (e *ValidationError) Error() string { return invalidFormatMsg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func (e *ValidationError) Unwrap() error { return e.Cause }
