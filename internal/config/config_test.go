package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DB_PATH", "SERVER_PORT", "LOG_LEVEL", "CATALOG_PATH", "CATALOG_URL",
		"CATALOG_REFRESH_INTERVAL", "LINEUP_ENFORCE_MAX", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "roster.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CatalogPath)
	assert.Empty(t, cfg.CatalogURL)
	assert.Zero(t, cfg.CatalogRefreshInterval)
	assert.False(t, cfg.LineupEnforceMax)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PATH", "/tmp/x.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_URL", "https://example.com/players.json")
	t.Setenv("CATALOG_REFRESH_INTERVAL", "15m")
	t.Setenv("LINEUP_ENFORCE_MAX", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.CatalogRefreshInterval)
	assert.True(t, cfg.LineupEnforceMax)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad duration", map[string]string{"CATALOG_REFRESH_INTERVAL": "soon"}},
		{"negative duration", map[string]string{"CATALOG_REFRESH_INTERVAL": "-1m", "CATALOG_URL": "http://x"}},
		{"bad bool", map[string]string{"LINEUP_ENFORCE_MAX": "maybe"}},
		{"refresh without url", map[string]string{"CATALOG_REFRESH_INTERVAL": "1m"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(zerolog.Nop())
			assert.Error(t, err)
		})
	}
}
