package middleware

import (
	"context"
	"net/http"
	"strings"

	"boi-na-nuvem/internal/ports/auth"

	"go.uber.org/zap"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - verifier != nil y Bearer token => Verify() y setea claims.
// - verifier == nil => modo dev: X-Debug-User-ID setea claims; el rol sale de
//   X-Debug-User-Role y por defecto es owner.
// - Sin claims el request sigue; cada handler decide si exige auth.
func AuthContext(verifier auth.AuthVerifier, log *zap.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
					role := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Debug-User-Role")))
					if role == "" {
						role = auth.RoleOwner
					}
					c := auth.Claims{UserID: uid, Role: role}
					next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), c)))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			token := bearerToken(r.Header.Get("Authorization"))
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), token)
			if err != nil {
				// No cortamos aquí; el handler decide 401.
				log.Debug("token verification failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// RequireUser responde 401 si no hay usuario en el contexto.
func RequireUser(w http.ResponseWriter, r *http.Request) (auth.Claims, bool) {
	claims, ok := GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return auth.Claims{}, false
	}
	return claims, true
}

// RequireRole: 401 sin usuario, 403 si su rol no está en roles.
func RequireRole(w http.ResponseWriter, r *http.Request, roles ...string) (auth.Claims, bool) {
	claims, ok := RequireUser(w, r)
	if !ok {
		return auth.Claims{}, false
	}
	for _, role := range roles {
		if strings.EqualFold(claims.Role, role) {
			return claims, true
		}
	}
	http.Error(w, "forbidden", http.StatusForbidden)
	return auth.Claims{}, false
}

func bearerToken(authHeader string) string {
	parts := strings.SplitN(strings.TrimSpace(authHeader), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
