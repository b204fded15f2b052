package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"boi-na-nuvem/internal/domain/display"
	"boi-na-nuvem/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))

		// Histórico de locales
		ar.Get("/{animalID}/locations", listLocationsHandler(svc))
		ar.Post("/{animalID}/locations", recordLocationHandler(svc))
	})

	r.Get("/display/animal-statuses", statusesHandler())
	r.Get("/display/animal-phases", phasesHandler())
}

// statusesHandler godoc
// @Summary Tabla de status de animales (label y color)
// @Tags display
// @Produce json
// @Success 200 {array} display.Entry
// @Router /display/animal-statuses [get]
func statusesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		display.WriteJSON(w, http.StatusOK, display.Entries(StatusIndicators))
	}
}

// phasesHandler godoc
// @Summary Tabla de fases de animales (label y color)
// @Tags display
// @Produce json
// @Success 200 {array} display.Entry
// @Router /display/animal-phases [get]
func phasesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		display.WriteJSON(w, http.StatusOK, display.Entries(PhaseIndicators))
	}
}

type createAnimalRequest struct {
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Breed      string  `json:"breed"`
	Sex        Sex     `json:"sex" enums:"male,female"`
	BirthDate  string  `json:"birthDate"` // YYYY-MM-DD opcional
	WeightKg   float64 `json:"weightKg"`
	Status     Status  `json:"status" enums:"active,sold,dead,quarantine"`
	Phase      Phase   `json:"phase" enums:"calf,heifer,steer,cow,bull"`
	PropertyID string  `json:"propertyId"`
	FatherID   *string `json:"fatherId"`
	MotherID   *string `json:"motherId"`
}

type pedigreeResponse struct {
	FatherID *string `json:"fatherId"`
	MotherID *string `json:"motherId"`
}

type animalResponse struct {
	ID         string            `json:"id"`
	Code       string            `json:"code"`
	Name       string            `json:"name"`
	Breed      string            `json:"breed"`
	Sex        Sex               `json:"sex"`
	BirthDate  *time.Time        `json:"birthDate,omitempty"`
	WeightKg   float64           `json:"weightKg"`
	Status     Status            `json:"status"`
	StatusInd  display.Indicator `json:"statusIndicator"`
	Phase      Phase             `json:"phase"`
	PhaseLabel string            `json:"phaseLabel"`
	PropertyID string            `json:"propertyId"`
	Pedigree   pedigreeResponse  `json:"pedigree"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

type listAnimalsResponse struct {
	Success bool             `json:"success"`
	Data    []animalResponse `json:"data"`
	Count   int              `json:"count"`
}

type tableAnimalsResponse struct {
	Success bool               `json:"success"`
	Data    []display.TableRow `json:"data"`
	Count   int                `json:"count"`
}

type recordLocationRequest struct {
	LocationID string `json:"locationId"`
	EntryDate  string `json:"entryDate"` // RFC3339
	ExitDate   string `json:"exitDate"`  // RFC3339 opcional
}

type locationResponse struct {
	ID         string     `json:"id"`
	AnimalID   string     `json:"animalId"`
	LocationID string     `json:"locationId"`
	EntryDate  time.Time  `json:"entryDate"`
	ExitDate   *time.Time `json:"exitDate,omitempty"`
}

// listAnimalsHandler godoc
// @Summary Listar animales
// @Description Animales no borrados. Con property_id filtra por fazenda, salvo all=true.
// @Tags animals
// @Produce json
// @Param property_id query string false "Propiedad seleccionada"
// @Param all query bool false "Todas las propiedades"
// @Param format query string false "table = filas planas para la grilla"
// @Success 200 {object} listAnimalsResponse
// @Failure 400 {string} string "all inválido"
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
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

		if r.URL.Query().Get("format") == "table" {
			rows := make([]display.TableRow, 0, len(items))
			for _, a := range items {
				rows = append(rows, toTableRow(a))
			}
			writeJSON(w, http.StatusOK, tableAnimalsResponse{Success: true, Data: rows, Count: len(rows)})
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, listAnimalsResponse{Success: true, Data: out, Count: len(out)})
	}
}

// createAnimalHandler godoc
// @Summary Registrar animal
// @Tags animals
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / reglas de negocio"
// @Failure 401 {string} string "unauthorized"
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var bd *time.Time
		if strings.TrimSpace(req.BirthDate) != "" {
			t, err := time.Parse("2006-01-02", req.BirthDate)
			if err != nil {
				http.Error(w, "birthDate must be YYYY-MM-DD", http.StatusBadRequest)
				return
			}
			bd = &t
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Code:       req.Code,
			Name:       req.Name,
			Breed:      req.Breed,
			Sex:        req.Sex,
			BirthDate:  bd,
			WeightKg:   req.WeightKg,
			Status:     req.Status,
			Phase:      req.Phase,
			PropertyID: req.PropertyID,
			FatherID:   req.FatherID,
			MotherID:   req.MotherID,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

// getAnimalHandler godoc
// @Summary Obtener animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

// listLocationsHandler godoc
// @Summary Histórico de locales del animal
// @Description Ordenado por fecha de entrada.
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {array} locationResponse
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/locations [get]
func listLocationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Locations(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, err)
			return
		}

		out := make([]locationResponse, 0, len(items))
		for _, l := range items {
			out = append(out, toLocationResponse(l))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// recordLocationHandler godoc
// @Summary Registrar entrada del animal en un local
// @Tags animals
// @Accept json
// @Produce json
// @Param animalID path string true "ID del animal"
// @Param body body recordLocationRequest true "Local y fechas (RFC3339)"
// @Success 201 {object} locationResponse
// @Failure 400 {string} string "invalid json / fechas"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/locations [post]
func recordLocationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.RequireUser(w, r); !ok {
			return
		}

		var req recordLocationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		entry, err := time.Parse(time.RFC3339, strings.TrimSpace(req.EntryDate))
		if err != nil {
			http.Error(w, "entryDate must be RFC3339", http.StatusBadRequest)
			return
		}
		var exit *time.Time
		if strings.TrimSpace(req.ExitDate) != "" {
			t, err := time.Parse(time.RFC3339, strings.TrimSpace(req.ExitDate))
			if err != nil {
				http.Error(w, "exitDate must be RFC3339", http.StatusBadRequest)
				return
			}
			exit = &t
		}

		l, err := svc.RecordLocation(r.Context(), chi.URLParam(r, "animalID"), LocationInput{
			LocationID: req.LocationID,
			EntryDate:  entry,
			ExitDate:   exit,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toLocationResponse(l))
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
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:         a.ID,
		Code:       a.Code,
		Name:       a.Name,
		Breed:      a.Breed,
		Sex:        a.Sex,
		BirthDate:  a.BirthDate,
		WeightKg:   a.WeightKg,
		Status:     a.Status,
		StatusInd:  a.Status.Indicator(),
		Phase:      a.Phase,
		PhaseLabel: a.Phase.Indicator().Label,
		PropertyID: a.PropertyID,
		Pedigree: pedigreeResponse{
			FatherID: a.Pedigree.FatherID,
			MotherID: a.Pedigree.MotherID,
		},
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toTableRow(a Animal) display.TableRow {
	return display.TableRow{
		ID: a.ID,
		Cells: map[string]string{
			"code":     a.Code,
			"name":     a.Name,
			"breed":    a.Breed,
			"status":   a.Status.Indicator().Label,
			"phase":    a.Phase.Indicator().Label,
			"weightKg": strconv.FormatFloat(a.WeightKg, 'f', -1, 64),
		},
	}
}

func toLocationResponse(l AnimalLocation) locationResponse {
	return locationResponse{
		ID:         l.ID,
		AnimalID:   l.AnimalID,
		LocationID: l.LocationID,
		EntryDate:  l.EntryDate,
		ExitDate:   l.ExitDate,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
