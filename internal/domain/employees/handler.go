package employees

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
	r.Route("/employees", func(er chi.Router) {
		er.Get("/", listEmployeesHandler(svc))
		er.Post("/", createEmployeeHandler(svc))
		er.Get("/{employeeID}", getEmployeeHandler(svc))
		er.Delete("/{employeeID}", deleteEmployeeHandler(svc))
	})
}

type createEmployeeRequest struct {
	Name       string          `json:"name"`
	Role       Role            `json:"role" enums:"manager,cowboy,veterinarian,operator,admin"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Salary     float64         `json:"salary"`
	Address    address.Address `json:"address"`
	PropertyID string          `json:"propertyId"`
	HiredAt    string          `json:"hiredAt"` // YYYY-MM-DD opcional
}

type employeeResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Role       Role            `json:"role"`
	Email      string          `json:"email"`
	Phone      string          `json:"phone"`
	Salary     float64         `json:"salary"`
	Address    address.Address `json:"address"`
	PropertyID string          `json:"propertyId"`
	HiredAt    *time.Time      `json:"hiredAt,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

type listEmployeesResponse struct {
	Success bool               `json:"success"`
	Data    []employeeResponse `json:"data"`
	Count   int                `json:"count"`
}

// listEmployeesHandler godoc
// @Summary Listar funcionarios
// @Tags employees
// @Produce json
// @Param property_id query string false "Propiedad seleccionada"
// @Param all query bool false "Todas las propiedades"
// @Success 200 {object} listEmployeesResponse
// @Router /employees [get]
func listEmployeesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := false
		if raw := strings.TrimSpace(r.URL.Query().Get("all")); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "all must be a boolean", http.StatusBadRequest)
				return
			}
			all = v
		}

		items, err := svc.List(r.Context(), ListInput{
			SelectedPropertyID: r.URL.Query().Get("property_id"),
			AllSelected:        all,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]employeeResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEmployeeResponse(e))
		}
		writeJSON(w, http.StatusOK, listEmployeesResponse{Success: true, Data: out, Count: len(out)})
	}
}

// createEmployeeHandler godoc
// @Summary Registrar funcionario
// @Tags employees
// @Accept json
// @Produce json
// @Param payload body createEmployeeRequest true "Datos del funcionario"
// @Success 201 {object} employeeResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /employees [post]
func createEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		var req createEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var hired *time.Time
		if strings.TrimSpace(req.HiredAt) != "" {
			t, err := time.Parse("2006-01-02", strings.TrimSpace(req.HiredAt))
			if err != nil {
				http.Error(w, "hiredAt must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			hired = &t
		}

		e, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Name,
			Role:       req.Role,
			Email:      req.Email,
			Phone:      req.Phone,
			Salary:     req.Salary,
			Address:    req.Address,
			PropertyID: req.PropertyID,
			HiredAt:    hired,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEmployeeResponse(e))
	}
}

// getEmployeeHandler godoc
// @Summary Obtener funcionario
// @Tags employees
// @Produce json
// @Param employeeID path string true "ID del funcionario"
// @Success 200 {object} employeeResponse
// @Failure 404 {string} string "employee not found"
// @Router /employees/{employeeID} [get]
func getEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := svc.GetByID(r.Context(), chi.URLParam(r, "employeeID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEmployeeResponse(e))
	}
}

// deleteEmployeeHandler godoc
// @Summary Borrar funcionario (soft delete)
// @Tags employees
// @Param employeeID path string true "ID del funcionario"
// @Success 204
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "forbidden"
// @Failure 404 {string} string "employee not found"
// @Router /employees/{employeeID} [delete]
func deleteEmployeeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireRole(w, r, auth.RoleOwner, auth.RoleManager); !ok {
			return
		}
		if err := svc.SoftDelete(r.Context(), chi.URLParam(r, "employeeID")); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "employee not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toEmployeeResponse(e Employee) employeeResponse {
	return employeeResponse{
		ID:         e.ID,
		Name:       e.Name,
		Role:       e.Role,
		Email:      e.Email,
		Phone:      e.Phone,
		Salary:     e.Salary,
		Address:    e.Address,
		PropertyID: e.PropertyID,
		HiredAt:    e.HiredAt,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
