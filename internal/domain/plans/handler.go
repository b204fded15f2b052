package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"boi-na-nuvem/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

// Lister permite inyectar un fake en tests de router.
type Lister interface {
	GetAll(ctx context.Context) ([]Plan, error)
}

// RegisterRoutes; caps puede ser nil (sin endpoint de features).
func RegisterRoutes(r chi.Router, svc Lister, caps capabilities.CapabilitiesResolver) {
	r.Get("/plans", listPlansHandler(svc))
	if caps != nil {
		r.Get("/plans/{planID}/features/{feature}", featureHandler(caps))
	}
}

type featureResponse struct {
	PlanID  string `json:"planId"`
	Feature string `json:"feature"`
	Enabled bool   `json:"enabled"`
}

// listPlansHandler godoc
// @Summary Listar planes
// @Description Devuelve los planes de suscripción del backend, en el orden original.
// @Tags plans
// @Produce json
// @Success 200 {object} PlansResponse
// @Failure 502 {string} string "upstream error"
// @Router /plans [get]
func listPlansHandler(svc Lister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.GetAll(r.Context())
		if err != nil {
			var fe *FetchError
			switch {
			case errors.As(err, &fe):
				http.Error(w, fmt.Sprintf("upstream status=%d", fe.StatusCode), http.StatusBadGateway)
			case errors.Is(err, ErrValidation):
				http.Error(w, err.Error(), http.StatusBadGateway)
			case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
				http.Error(w, "upstream timeout", http.StatusGatewayTimeout)
			default:
				http.Error(w, "upstream unavailable", http.StatusBadGateway)
			}
			return
		}

		writeJSON(w, http.StatusOK, PlansResponse{
			Success: true,
			Data:    items,
			Count:   len(items),
		})
	}
}

// featureHandler godoc
// @Summary Consultar si un plan incluye una feature
// @Tags plans
// @Produce json
// @Param planID path string true "ID del plan"
// @Param feature path string true "Feature"
// @Success 200 {object} featureResponse
// @Failure 404 {string} string "plan not found"
// @Failure 502 {string} string "upstream error"
// @Router /plans/{planID}/features/{feature} [get]
func featureHandler(caps capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := capabilities.CapabilityCheck{
			PlanID:  chi.URLParam(r, "planID"),
			Feature: chi.URLParam(r, "feature"),
		}
		ok, err := caps.HasFeature(r.Context(), in)
		if err != nil {
			switch {
			case errors.Is(err, capabilities.ErrInvalidCheck):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, capabilities.ErrUnknownPlan):
				http.Error(w, "plan not found", http.StatusNotFound)
			default:
				http.Error(w, "upstream unavailable", http.StatusBadGateway)
			}
			return
		}
		writeJSON(w, http.StatusOK, featureResponse{PlanID: in.PlanID, Feature: in.Feature, Enabled: ok})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
