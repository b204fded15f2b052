package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAPIBaseURL = "http://localhost:3000"
	DefaultPort       = "8080"
)

// TokenStoreConfig define dónde vive el token del cliente.
type TokenStoreConfig struct {
	Kind string // memory | file | sqlite
	Path string
}

// LogConfig se pasa tal cual a logger.Options.
type LogConfig struct {
	Level  string
	Format string
	App    string
}

// AppConfig centraliza la configuración leída de env.
// Un .env se carga automáticamente desde cmd/api (godotenv/autoload);
// las variables reales del entorno tienen prioridad.
type AppConfig struct {
	Port string

	// APIBaseURL es el backend REST de planes, sin "/" final.
	APIBaseURL string
	APITimeout time.Duration
	// APIToken, si viene, se guarda en el token store al arrancar.
	APIToken string

	// DBDSN vacío => repos in-memory.
	DBDSN string

	TokenStore TokenStoreConfig
	Log        LogConfig
	Auth       AuthConfig
}

// AuthConfig: si Enabled, los Bearer tokens se verifican contra el backend.
// Si no, modo dev (X-Debug-User-ID).
type AuthConfig struct {
	Enabled bool
	APIKey  string
}

func Load() *AppConfig {
	kind := strings.ToLower(getEnv("TOKEN_STORE", "memory"))

	return &AppConfig{
		Port:       getEnv("PORT", DefaultPort),
		APIBaseURL: NormalizeBaseURL(getEnv("API_BASE_URL", DefaultAPIBaseURL)),
		APITimeout: time.Duration(getEnvInt("API_TIMEOUT_SEC", 10)) * time.Second,
		APIToken:   getEnv("API_TOKEN", ""),
		DBDSN:      getEnv("DB_DSN", ""),
		TokenStore: TokenStoreConfig{
			Kind: kind,
			Path: getEnv("TOKEN_STORE_PATH", defaultTokenPath(kind)),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
			App:    getEnv("APP_NAME", "boi-na-nuvem"),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_VERIFY", false),
			APIKey:  getEnv("AUTH_API_KEY", ""),
		},
	}
}

// NormalizeBaseURL quita espacios y "/" finales; vacío => default local.
func NormalizeBaseURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	if u == "" {
		return DefaultAPIBaseURL
	}
	return u
}

func defaultTokenPath(kind string) string {
	switch kind {
	case "sqlite":
		return "./data/client.db"
	case "file":
		return "./data/token.json"
	default:
		return ""
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
