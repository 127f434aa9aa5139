// Package config reads the site's settings from the environment. main
// autoloads a .env file first, so values can live there during development.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/Zachkp/folio/internal/tenant"
)

type Auth struct {
	Enabled  bool
	Type     string // "token" or "basic"
	Token    string
	Username string
	Password string
}

type OTel struct {
	Enabled  bool
	Endpoint string
	Insecure bool
}

type Config struct {
	Port          string
	BaseURL       string
	TenantsFile   string
	DefaultTenant string
	// DatabasePath is the sqlite file for visitor tracking. Empty disables
	// tracking.
	DatabasePath string
	TrackingSalt string
	TrackHeight  int
	Auth         Auth
	OTel         OTel
}

// Load reads the configuration, filling in development defaults.
func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		BaseURL:       getenv("BASE_URL", "/"),
		TenantsFile:   os.Getenv("TENANTS_FILE"),
		DefaultTenant: getenv("DEFAULT_TENANT", tenant.DefaultID),
		DatabasePath:  databasePath(),
		TrackingSalt:  os.Getenv("TRACKING_SALT"),
		TrackHeight:   getint("TIMELINE_HEIGHT", 800),
		Auth: Auth{
			Enabled:  getbool("AUTH_ENABLED"),
			Type:     strings.ToLower(getenv("AUTH_TYPE", "token")),
			Token:    os.Getenv("AUTH_TOKEN"),
			Username: os.Getenv("AUTH_USERNAME"),
			Password: os.Getenv("AUTH_PASSWORD"),
		},
		OTel: OTel{
			Enabled:  getbool("FOLIO_OTEL_ENABLED"),
			Endpoint: os.Getenv("FOLIO_OTEL_ENDPOINT"),
			Insecure: getbool("FOLIO_OTEL_INSECURE"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// databasePath distinguishes an unset DATABASE_PATH (use the default file)
// from one set to empty (tracking off).
func databasePath() string {
	if v, ok := os.LookupEnv("DATABASE_PATH"); ok {
		return v
	}
	return "folio.db"
}

func getbool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
