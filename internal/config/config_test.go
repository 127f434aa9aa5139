package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "TENANTS_FILE", "DEFAULT_TENANT", "DATABASE_PATH",
		"TIMELINE_HEIGHT", "AUTH_ENABLED", "AUTH_TYPE", "FOLIO_OTEL_ENABLED"} {
		t.Setenv(key, "")
	}
	// t.Setenv cannot unset; an empty DATABASE_PATH turns tracking off.
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/", cfg.BaseURL)
	assert.Equal(t, "default", cfg.DefaultTenant)
	assert.Equal(t, "token", cfg.Auth.Type)
	assert.Equal(t, 800, cfg.TrackHeight)
	assert.False(t, cfg.Auth.Enabled)
	assert.False(t, cfg.OTel.Enabled)
	assert.Empty(t, cfg.DatabasePath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("BASE_URL", "/cv/")
	t.Setenv("DEFAULT_TENANT", "acme")
	t.Setenv("TIMELINE_HEIGHT", "1200")
	t.Setenv("AUTH_ENABLED", "true")
	t.Setenv("AUTH_TYPE", "Basic")
	t.Setenv("AUTH_USERNAME", "admin")
	t.Setenv("AUTH_PASSWORD", "secret")
	t.Setenv("AUTH_TOKEN", "")
	t.Setenv("FOLIO_OTEL_ENABLED", "1")
	t.Setenv("FOLIO_OTEL_ENDPOINT", "localhost:4317")

	cfg := Load()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "/cv/", cfg.BaseURL)
	assert.Equal(t, "acme", cfg.DefaultTenant)
	assert.Equal(t, 1200, cfg.TrackHeight)
	assert.Equal(t, Auth{Enabled: true, Type: "basic", Username: "admin", Password: "secret"}, cfg.Auth)
	assert.True(t, cfg.OTel.Enabled)
	assert.Equal(t, "localhost:4317", cfg.OTel.Endpoint)
}

func TestGetintRejectsGarbage(t *testing.T) {
	t.Setenv("TIMELINE_HEIGHT", "tall")
	assert.Equal(t, 800, Load().TrackHeight)

	t.Setenv("TIMELINE_HEIGHT", "-5")
	assert.Equal(t, 800, Load().TrackHeight)
}
