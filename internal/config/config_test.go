package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "API_BASE_URL", "API_TIMEOUT_SEC", "DB_DSN", "TOKEN_STORE", "TOKEN_STORE_PATH", "AUTH_VERIFY", "API_TOKEN"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "http://localhost:3000", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, "", cfg.DBDSN)
	assert.Equal(t, "memory", cfg.TokenStore.Kind)
	assert.False(t, cfg.Auth.Enabled)
	assert.Empty(t, cfg.APIToken)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.boinanuvem.com.br/v1/")
	t.Setenv("API_TIMEOUT_SEC", "3")
	t.Setenv("TOKEN_STORE", "SQLite")
	t.Setenv("TOKEN_STORE_PATH", "")
	t.Setenv("AUTH_VERIFY", "true")
	t.Setenv("API_TOKEN", "tok-123")

	cfg := Load()

	assert.Equal(t, "https://api.boinanuvem.com.br/v1", cfg.APIBaseURL)
	assert.Equal(t, 3*time.Second, cfg.APITimeout)
	assert.Equal(t, "sqlite", cfg.TokenStore.Kind)
	assert.Equal(t, "./data/client.db", cfg.TokenStore.Path)
	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "tok-123", cfg.APIToken)
}

func TestNormalizeBaseURL(t *testing.T) {
	assert.Equal(t, "http://x:3000", NormalizeBaseURL("http://x:3000///"))
	assert.Equal(t, "http://x:3000", NormalizeBaseURL("  http://x:3000  "))
	assert.Equal(t, DefaultAPIBaseURL, NormalizeBaseURL(""))
	assert.Equal(t, DefaultAPIBaseURL, NormalizeBaseURL("/"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	t.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	t.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	t.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	t.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	t.Setenv(key, "")
	assert.False(t, getEnvBool(key, false))
}
