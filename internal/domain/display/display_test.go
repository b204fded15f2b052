package display

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type status string

var table = map[status]Indicator{
	"b": {Label: "B", Icon: "b", Color: ColorInfo},
	"a": {Label: "A", Icon: "a", Color: ColorSuccess},
}

func TestLookup(t *testing.T) {
	assert.Equal(t, "A", Lookup(table, "a").Label)
	assert.Equal(t, Unknown, Lookup(table, "zzz"))
}

func TestEntries_SortedByValue(t *testing.T) {
	got := Entries(table)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Value)
	assert.Equal(t, "b", got[1].Value)
	assert.Equal(t, ColorInfo, got[1].Color)
}

func TestIconsHandler(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/display/icons", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"size":"sm","pixels":16`)
	assert.Contains(t, rec.Body.String(), `"primary":"#2E7D32"`)
}
