package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boi-na-nuvem/internal/domain/plans"
	"boi-na-nuvem/internal/router"

	"github.com/go-chi/chi/v5"
)

type fakePlans struct {
	items []plans.Plan
	err   error
}

func (f fakePlans) GetAll(context.Context) ([]plans.Plan, error) {
	return f.items, f.err
}

type listEnvelope struct {
	Success bool              `json:"success"`
	Data    []json.RawMessage `json:"data"`
	Count   int               `json:"count"`
}

func TestHTTP_EndToEnd_SelectedProperty(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "owner-1"

	// 1) Dos fazendas
	pr1 := createResource(t, ts.URL, "/properties", userID, map[string]any{"name": "Santa Luzia", "state": "GO"})
	pr2 := createResource(t, ts.URL, "/properties", userID, map[string]any{"name": "Boa Vista", "state": "MT"})

	// 2) Animales en cada una
	an1 := createResource(t, ts.URL, "/animals", userID, map[string]any{"name": "Mimosa", "phase": "cow", "sex": "female", "propertyId": pr1})
	createResource(t, ts.URL, "/animals", userID, map[string]any{"name": "Trovão", "phase": "bull", "sex": "male", "propertyId": pr2})
	an3 := createResource(t, ts.URL, "/animals", userID, map[string]any{"name": "Pintada", "phase": "heifer", "propertyId": pr1, "motherId": an1})

	if pr1 != "PR-1" || an1 != "AN-3" {
		t.Fatalf("expected shared id sequence, got %s %s", pr1, an1)
	}

	// 3) Filtro por propiedad seleccionada
	{
		env := listAt(t, ts.URL, "/animals?property_id="+pr1)
		if env.Count != 2 || len(env.Data) != 2 {
			t.Fatalf("expected 2 animals in %s, got %d", pr1, env.Count)
		}
	}

	// 4) all=true ignora el filtro
	{
		env := listAt(t, ts.URL, "/animals?property_id="+pr1+"&all=true")
		if env.Count != 3 {
			t.Fatalf("expected 3 animals with all=true, got %d", env.Count)
		}
	}

	// 5) Pedigree vuelve en el detalle
	{
		st, body := doReq(t, ts.URL, "GET", "/animals/"+an3, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get animal, got %d body=%s", st, string(body))
		}
		var a struct {
			Pedigree struct {
				MotherID *string `json:"motherId"`
			} `json:"pedigree"`
			StatusIndicator struct {
				Label string `json:"label"`
			} `json:"statusIndicator"`
		}
		_ = json.Unmarshal(body, &a)
		if a.Pedigree.MotherID == nil || *a.Pedigree.MotherID != an1 {
			t.Fatalf("expected motherId=%s, body=%s", an1, string(body))
		}
		if a.StatusIndicator.Label != "Ativo" {
			t.Fatalf("expected status label Ativo, got %q", a.StatusIndicator.Label)
		}
	}

	// 6) Vista de tabla
	{
		st, body := doReq(t, ts.URL, "GET", "/animals?all=true&format=table", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"cells"`) {
			t.Fatalf("expected table rows, got %d body=%s", st, string(body))
		}
	}

	// 7) Histórico de locales
	{
		st, body := doReq(t, ts.URL, "POST", "/animals/"+an1+"/locations", userID, map[string]any{
			"locationId": "pasto-1",
			"entryDate":  "2025-01-10T08:00:00Z",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 record location, got %d body=%s", st, string(body))
		}
		st, body = doReq(t, ts.URL, "GET", "/animals/"+an1+"/locations", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), "pasto-1") {
			t.Fatalf("expected location history, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Buyers_SoftDelete(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "owner-1"
	bu := createResource(t, ts.URL, "/buyers", userID, map[string]any{
		"name":       "Frigorífico Boi Bom",
		"document":   "12.345.678/0001-90",
		"propertyId": "PR-1",
		"address":    map[string]any{"city": "Cuiabá", "state": "mt"},
	})

	{
		st, _ := doReq(t, ts.URL, "DELETE", "/buyers/"+bu, "", nil)
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 delete without user, got %d", st)
		}
	}

	for i := 0; i < 2; i++ {
		st, body := doReq(t, ts.URL, "DELETE", "/buyers/"+bu, userID, nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 soft delete (try %d), got %d body=%s", i+1, st, string(body))
		}
	}

	{
		st, _ := doReq(t, ts.URL, "GET", "/buyers/"+bu, "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after soft delete, got %d", st)
		}
		env := listAt(t, ts.URL, "/buyers?all=true")
		if env.Count != 0 {
			t.Fatalf("expected empty buyers list, got %d", env.Count)
		}
	}

	{
		st, _ := doReq(t, ts.URL, "DELETE", "/buyers/BU-404", userID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown buyer, got %d", st)
		}
	}
}

func TestHTTP_Employees(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	em := createResource(t, ts.URL, "/employees", "owner-1", map[string]any{
		"name": "Zé", "role": "cowboy", "salary": 2500, "propertyId": "PR-1", "hiredAt": "2023-04-01",
	})
	if !strings.HasPrefix(em, "EM-") {
		t.Fatalf("expected EM- id, got %s", em)
	}

	st, body := doReq(t, ts.URL, "POST", "/employees", "owner-1", map[string]any{
		"name": "Zé", "role": "chef", "propertyId": "PR-1",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 unknown role, got %d body=%s", st, string(body))
	}

	{
		st, _ := doReqAs(t, ts.URL, "DELETE", "/employees/"+em, "emp-7", "employee", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 delete as employee, got %d", st)
		}
		st, _ = doReqAs(t, ts.URL, "DELETE", "/employees/"+em, "mgr-1", "manager", nil)
		if st != http.StatusNoContent {
			t.Fatalf("expected 204 delete as manager, got %d", st)
		}
	}
}

func TestHTTP_Mutations_RequireUser(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	for _, path := range []string{"/animals", "/buyers", "/employees", "/properties"} {
		st, _ := doReq(t, ts.URL, "POST", path, "", map[string]any{"name": "x"})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 POST %s without user, got %d", path, st)
		}
	}

	st, _ := doReq(t, ts.URL, "GET", "/animals?all=maybe", "", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 bad all flag, got %d", st)
	}
}

func TestHTTP_Plans(t *testing.T) {
	popular := true
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Plans: fakePlans{items: []plans.Plan{
			{ID: "basic", Name: "Básico", Price: 49.9, Features: []string{"rebanho"}},
			{ID: "pro", Name: "Pro", Price: 99.9, Features: []string{"rebanho", "financeiro"}, IsPopular: &popular},
		}},
	}))
	defer ts.Close()

	{
		env := listAt(t, ts.URL, "/plans")
		if !env.Success || env.Count != 2 {
			t.Fatalf("expected 2 plans, got %+v", env)
		}
		if !strings.Contains(string(env.Data[0]), `"basic"`) {
			t.Fatalf("expected upstream order, got %s", string(env.Data[0]))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/plans/pro/features/financeiro", "", nil)
		if st != http.StatusOK || !strings.Contains(string(body), `"enabled":true`) {
			t.Fatalf("expected feature enabled, got %d body=%s", st, string(body))
		}
		st, _ = doReq(t, ts.URL, "GET", "/plans/gold/features/financeiro", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown plan, got %d", st)
		}
	}
}

func TestHTTP_Plans_UpstreamErrors(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Plans: fakePlans{err: &plans.FetchError{StatusCode: http.StatusServiceUnavailable}},
	}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/plans", "", nil)
	if st != http.StatusBadGateway || !strings.Contains(string(body), "503") {
		t.Fatalf("expected 502 with upstream status, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Ambient(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected health ok, got %d %s", st, string(body))
	}

	doReq(t, ts.URL, "GET", "/display/animal-statuses", "", nil)
	doReq(t, ts.URL, "GET", "/no-such-route/xyz", "", nil)
	st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `path="/display/animal-statuses"`) {
		t.Fatalf("expected request counter in /metrics, got %d", st)
	}
	if !strings.Contains(string(body), `path="unmatched"`) || strings.Contains(string(body), "/no-such-route/xyz") {
		t.Fatalf("expected 404s under a single label, got %s", string(body))
	}

	if st, _ := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil); st != http.StatusOK {
		t.Fatalf("expected swagger doc, got %d", st)
	}
}

func TestHTTP_SwaggerListsEveryRoute(t *testing.T) {
	h := router.NewRouter(router.Options{Plans: fakePlans{}})
	ts := httptest.NewServer(h)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected swagger doc, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("invalid swagger doc: %v", err)
	}

	routes, ok := h.(chi.Routes)
	if !ok {
		t.Fatalf("router is not a chi.Routes")
	}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		switch {
		case route == "/health", route == "/metrics", strings.HasPrefix(route, "/swagger"):
			return nil
		}
		route = strings.TrimSuffix(route, "/")
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("route %s %s missing from swagger doc", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}
}

func createResource(t *testing.T, baseURL, path, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &out); err != nil || out.ID == "" {
		t.Fatalf("invalid create response: %s", string(body))
	}
	return out.ID
}

func listAt(t *testing.T, baseURL, path string) listEnvelope {
	t.Helper()

	st, body := doReq(t, baseURL, "GET", path, "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 GET %s, got %d body=%s", path, st, string(body))
	}
	var env listEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("invalid list response: %v body=%s", err, string(body))
	}
	return env
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()
	return doReqAs(t, baseURL, method, path, debugUserID, "", body)
}

func doReqAs(t *testing.T, baseURL, method, path, debugUserID, role string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if role != "" {
		req.Header.Set("X-Debug-User-Role", role)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
