package display

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type iconSizeEntry struct {
	Size   IconSize `json:"size"`
	Pixels int      `json:"pixels"`
}

type iconsResponse struct {
	Sizes  []iconSizeEntry  `json:"sizes"`
	Colors map[string]Color `json:"colors"`
}

// RegisterRoutes expone las tablas genéricas. Las tablas de cada dominio
// (p.ej. status de animales) las registra su propio paquete bajo /display.
func RegisterRoutes(r chi.Router) {
	r.Get("/display/icons", iconsHandler())
}

// iconsHandler godoc
// @Summary Tamaños de íconos y paleta
// @Tags display
// @Produce json
// @Success 200 {object} iconsResponse
// @Router /display/icons [get]
func iconsHandler() http.HandlerFunc {
	sizes := make([]iconSizeEntry, 0, len(IconSizes))
	for _, s := range []IconSize{IconSizeSM, IconSizeMD, IconSizeLG, IconSizeXL} {
		sizes = append(sizes, iconSizeEntry{Size: s, Pixels: IconSizes[s]})
	}
	resp := iconsResponse{
		Sizes: sizes,
		Colors: map[string]Color{
			"primary": ColorPrimary,
			"success": ColorSuccess,
			"warning": ColorWarning,
			"danger":  ColorDanger,
			"info":    ColorInfo,
			"neutral": ColorNeutral,
		},
	}

	return func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON queda exportado para los handlers de tablas de otros dominios.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
