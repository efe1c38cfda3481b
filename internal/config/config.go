package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath     string
	ServerPort string
	LogLevel   string

	CatalogPath            string
	CatalogURL             string
	CatalogRefreshInterval time.Duration

	LineupEnforceMax   bool
	CORSAllowedOrigins []string
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	refresh, err := time.ParseDuration(getEnv("CATALOG_REFRESH_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid CATALOG_REFRESH_INTERVAL: %w", err)
	}
	if refresh < 0 {
		return nil, fmt.Errorf("CATALOG_REFRESH_INTERVAL must not be negative")
	}

	enforceMax, err := strconv.ParseBool(getEnv("LINEUP_ENFORCE_MAX", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid LINEUP_ENFORCE_MAX: %w", err)
	}

	cfg := &Config{
		DBPath:                 getEnv("DB_PATH", "roster.db"),
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		CatalogPath:            getEnv("CATALOG_PATH", ""),
		CatalogURL:             getEnv("CATALOG_URL", ""),
		CatalogRefreshInterval: refresh,
		LineupEnforceMax:       enforceMax,
		CORSAllowedOrigins:     splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.CatalogRefreshInterval > 0 && cfg.CatalogURL == "" {
		return nil, fmt.Errorf("CATALOG_REFRESH_INTERVAL requires CATALOG_URL")
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Str("catalog_path", cfg.CatalogPath).
		Str("catalog_url", cfg.CatalogURL).
		Dur("catalog_refresh_interval", cfg.CatalogRefreshInterval).
		Bool("lineup_enforce_max", cfg.LineupEnforceMax).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var Module = fx.Provide(Load)
