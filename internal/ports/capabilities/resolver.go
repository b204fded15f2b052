package capabilities

import (
	"context"
	"errors"
)

var (
	ErrInvalidCheck = errors.New("plan id and feature required")
	ErrUnknownPlan  = errors.New("plan not found")
)

// CapabilityCheck pregunta si un plan incluye una feature.
type CapabilityCheck struct {
	PlanID  string
	Feature string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
