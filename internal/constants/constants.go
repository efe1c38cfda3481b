package constants

import "time"

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	CatalogLoadTimeout = 30 * time.Second
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
	DBBatchSize       = 100
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// MaxCatalogBytes bounds a remote catalog download.
	MaxCatalogBytes = 8 << 20
	// SelectionSessionTTL is how long an idle compare selection is kept.
	SelectionSessionTTL = 30 * time.Minute
	ImportHistoryLimit  = 10
)
