package buyers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"boi-na-nuvem/internal/domain/address"
	"boi-na-nuvem/internal/middleware"
	"boi-na-nuvem/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/buyers", func(br chi.Router) {
		br.Get("/", listBuyersHandler(svc))
		br.Post("/", createBuyerHandler(svc))
		br.Get("/{buyerID}", getBuyerHandler(svc))
		br.Delete("/{buyerID}", deleteBuyerHandler(svc))
	})
}

type createBuyerRequest struct {
	Name       string          `json:"name"`
	Document   string          `json:"document"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    address.Address `json:"address"`
	PropertyID string          `json:"propertyId"`
}

type buyerResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Document   string          `json:"document"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Address    address.Address `json:"address"`
	PropertyID string          `json:"propertyId"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type listBuyersResponse struct {
	Success bool            `json:"success"`
	Data    []buyerResponse `json:"data"`
	Count   int             `json:"count"`
}

// listBuyersHandler godoc
// @Summary Listar compradores
// @Tags buyers
// @Produce json
// @Param property_id query string false "Propiedad seleccionada"
// @Param all query bool false "Todas las propiedades"
// @Success 200 {object} listBuyersResponse
// @Router /buyers [get]
func listBuyersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := parseAll(r.URL.Query().Get("all"))
		if err != nil {
			http.Error(w, "all must be a boolean", http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), ListInput{
			SelectedPropertyID: r.URL.Query().Get("property_id"),
			AllSelected:        all,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]buyerResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBuyerResponse(b))
		}
		writeJSON(w, http.StatusOK, listBuyersResponse{Success: true, Data: out, Count: len(out)})
	}
}

// createBuyerHandler godoc
// @Summary Registrar comprador
// @Tags buyers
// @Accept json
// @Produce json
// @Param payload body createBuyerRequest true "Datos del comprador"
// @Success 201 {object} buyerResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /buyers [post]
func createBuyerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		var req createBuyerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		b, err := svc.Create(r.Context(), CreateInput(req))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toBuyerResponse(b))
	}
}

// getBuyerHandler godoc
// @Summary Obtener comprador
// @Tags buyers
// @Produce json
// @Param buyerID path string true "ID del comprador"
// @Success 200 {object} buyerResponse
// @Failure 404 {string} string "buyer not found"
// @Router /buyers/{buyerID} [get]
func getBuyerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(r.Context(), chi.URLParam(r, "buyerID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toBuyerResponse(b))
	}
}

// deleteBuyerHandler godoc
// @Summary Borrar comprador (soft delete)
// @Tags buyers
// @Param buyerID path string true "ID del comprador"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "buyer not found"
// @Router /buyers/{buyerID} [delete]
func deleteBuyerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleOwner, auth.RoleManager); !ok {
			return
		}
		if err := svc.SoftDelete(r.Context(), chi.URLParam(r, "buyerID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func parseAll(raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "buyer not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toBuyerResponse(b Buyer) buyerResponse {
	return buyerResponse{
		ID:         b.ID,
		Name:       b.Name,
		Document:   b.Document,
		Email:      b.Email,
		Phone:      b.Phone,
		Address:    b.Address,
		PropertyID: b.PropertyID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
