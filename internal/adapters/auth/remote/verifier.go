package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"boi-na-nuvem/internal/platform/httpclient"
	"boi-na-nuvem/internal/ports/auth"
)

const verifyPath = "/auth/verify"

var (
	ErrNotConfigured = errors.New("auth verifier not configured")
	ErrTokenEmpty    = errors.New("token is empty")
	ErrUnauthorized  = errors.New("token rejected")
)

// Verifier implementa auth.AuthVerifier contra el backend REST
// (POST {API_BASE_URL}/auth/verify).
type Verifier struct {
	client       *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

var _ auth.AuthVerifier = (*Verifier)(nil)

func NewVerifier(client *httpclient.Client, apiKey string) *Verifier {
	return &Verifier{
		client:       client,
		apiKey:       strings.TrimSpace(apiKey),
		apiKeyHeader: "X-Api-Key",
	}
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	Success bool `json:"success"`
	Data    struct {
		UserID string `json:"userId"`
		Role   string `json:"role"`
	} `json:"data"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
	}
	if v.apiKey != "" {
		headers[v.apiKeyHeader] = v.apiKey
	}

	var out verifyResponse
	err := v.client.DoJSON(ctx, http.MethodPost, verifyPath, headers, verifyRequest{Token: token}, &out)
	if err != nil {
		if code, ok := httpclient.StatusCode(err); ok && (code == http.StatusUnauthorized || code == http.StatusForbidden) {
			return auth.Claims{}, ErrUnauthorized
		}
		return auth.Claims{}, fmt.Errorf("verify token: %w", err)
	}
	if !out.Success {
		return auth.Claims{}, ErrUnauthorized
	}

	uid := strings.TrimSpace(out.Data.UserID)
	if uid == "" {
		return auth.Claims{}, errors.New("verify token: response missing userId")
	}

	return auth.Claims{
		UserID: uid,
		Role:   strings.ToLower(strings.TrimSpace(out.Data.Role)),
	}, nil
}
