package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"boi-na-nuvem/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeVerifier struct {
	token string
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	if token != f.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return auth.Claims{UserID: "user-1"}, nil
}

func whoAmI(w http.ResponseWriter, r *http.Request) {
	c, ok := GetClaims(r.Context())
	if !ok {
		_, _ = w.Write([]byte("anon"))
		return
	}
	_, _ = w.Write([]byte(c.UserID))
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuthContext_DevMode(t *testing.T) {
	h := AuthContext(nil, nil)(http.HandlerFunc(whoAmI))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", " dev-1 ")
	assert.Equal(t, "dev-1", serve(h, req).Body.String())

	assert.Equal(t, "anon", serve(h, httptest.NewRequest(http.MethodGet, "/", nil)).Body.String())
}

func TestAuthContext_Verifier(t *testing.T) {
	h := AuthContext(fakeVerifier{token: "good"}, zap.NewNop())(http.HandlerFunc(whoAmI))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	assert.Equal(t, "user-1", serve(h, req).Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad")
	assert.Equal(t, "anon", serve(h, req).Body.String())

	// con verifier, el header de debug se ignora
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Debug-User-ID", "dev-1")
	assert.Equal(t, "anon", serve(h, req).Body.String())
}

func TestRequireUser(t *testing.T) {
	h := AuthContext(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireUser(w, r); !ok {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusUnauthorized, serve(h, httptest.NewRequest(http.MethodPost, "/", nil)).Code)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Debug-User-ID", "u")
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)
}

func TestRequireRole(t *testing.T) {
	h := AuthContext(nil, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := RequireRole(w, r, auth.RoleOwner, auth.RoleManager); !ok {
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))

	assert.Equal(t, http.StatusUnauthorized, serve(h, httptest.NewRequest(http.MethodDelete, "/", nil)).Code)

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("X-Debug-User-ID", "u")
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("X-Debug-User-ID", "u")
	req.Header.Set("X-Debug-User-Role", "Manager")
	assert.Equal(t, http.StatusNoContent, serve(h, req).Code)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("X-Debug-User-ID", "u")
	req.Header.Set("X-Debug-User-Role", "employee")
	assert.Equal(t, http.StatusForbidden, serve(h, req).Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "", bearerToken("Basic abc"))
	assert.Equal(t, "", bearerToken("Bearer"))
	assert.Equal(t, "", bearerToken(""))
}

func TestMetrics_CountsByRoutePattern(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/animals/{animalID}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {})

	serve(r, httptest.NewRequest(http.MethodGet, "/animals/AN-1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/animals/AN-2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing/abc123", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/animals/{animalID}", "200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/missing", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/metrics", "200")))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(AccessLog(zap.New(core)))
	r.Post("/buyers", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	serve(r, httptest.NewRequest(http.MethodPost, "/buyers", bytes.NewReader(nil)))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/buyers", fields["path"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
