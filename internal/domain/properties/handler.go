package properties

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"boi-na-nuvem/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/properties", func(pr chi.Router) {
		pr.Get("/", listPropertiesHandler(svc))
		pr.Post("/", createPropertyHandler(svc))
		pr.Get("/{propertyID}", getPropertyHandler(svc))
	})
}

type createPropertyRequest struct {
	Name         string  `json:"name"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	AreaHectares float64 `json:"areaHectares"`
}

type propertyResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	AreaHectares float64   `json:"areaHectares"`
	CreatedAt    time.Time `json:"createdAt"`
}

type listPropertiesResponse struct {
	Success bool               `json:"success"`
	Data    []propertyResponse `json:"data"`
	Count   int                `json:"count"`
}

// listPropertiesHandler godoc
// @Summary Listar propiedades (fazendas)
// @Tags properties
// @Produce json
// @Success 200 {object} listPropertiesResponse
// @Router /properties [get]
func listPropertiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]propertyResponse, 0, len(items))
		for _, p := range items {
			out = append(out, propertyResponse(p))
		}
		writeJSON(w, http.StatusOK, listPropertiesResponse{Success: true, Data: out, Count: len(out)})
	}
}

// createPropertyHandler godoc
// @Summary Registrar propiedad
// @Tags properties
// @Accept json
// @Produce json
// @Param payload body createPropertyRequest true "Datos de la propiedad"
// @Success 201 {object} propertyResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /properties [post]
func createPropertyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		var req createPropertyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, propertyResponse(p))
	}
}

// getPropertyHandler godoc
// @Summary Obtener propiedad
// @Tags properties
// @Produce json
// @Param propertyID path string true "ID de la propiedad"
// @Success 200 {object} propertyResponse
// @Failure 404 {string} string "property not found"
// @Router /properties/{propertyID} [get]
func getPropertyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "propertyID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, propertyResponse(p))
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "property not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
