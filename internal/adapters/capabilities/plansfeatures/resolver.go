package plansfeatures

import (
	"context"
	"errors"
	"os"
	"strings"

	"boi-na-nuvem/internal/domain/plans"
	"boi-na-nuvem/internal/ports/capabilities"
)

var ErrNotConfigured = errors.New("plans-features resolver not configured")

// Resolver responde si un plan incluye una feature, usando la lista de
// features que trae el backend en cada Plan.
type Resolver struct {
	plans    plans.Lister
	allowAll bool
}

var _ capabilities.CapabilitiesResolver = (*Resolver)(nil)

// NewResolver: ALLOW_ALL_CAPABILITIES=true (env) => todo true sin consultar
// el backend (modo dev).
func NewResolver(lister plans.Lister) *Resolver {
	allowAll := strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_ALL_CAPABILITIES")), "true")
	return &Resolver{
		plans:    lister,
		allowAll: allowAll,
	}
}

func (r *Resolver) HasFeature(ctx context.Context, in capabilities.CapabilityCheck) (bool, error) {
	feature := strings.TrimSpace(in.Feature)
	planID := strings.TrimSpace(in.PlanID)
	if feature == "" || planID == "" {
		return false, capabilities.ErrInvalidCheck
	}

	if r == nil || r.plans == nil {
		return false, ErrNotConfigured
	}
	if r.allowAll {
		return true, nil
	}

	features, err := r.Resolve(ctx, planID)
	if err != nil {
		return false, err
	}
	return features[strings.ToLower(feature)], nil
}

// Resolve devuelve el set de features (en minúscula) del plan.
func (r *Resolver) Resolve(ctx context.Context, planID string) (map[string]bool, error) {
	if r == nil || r.plans == nil {
		return nil, ErrNotConfigured
	}

	items, err := r.plans.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range items {
		if string(p.ID) != planID {
			continue
		}
		out := make(map[string]bool, len(p.Features))
		for _, f := range p.Features {
			if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
				out[f] = true
			}
		}
		return out, nil
	}
	return nil, capabilities.ErrUnknownPlan
}
