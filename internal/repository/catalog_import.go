package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-roster/internal/db"
	"cricket-roster/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

type CatalogImportRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewCatalogImportRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *CatalogImportRepository {
	return &CatalogImportRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

func (r *CatalogImportRepository) Record(ctx context.Context, source string, playerCount int) (*domain.CatalogImport, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate nanoid: %w", err)
	}

	rec := &domain.CatalogImport{
		ID:          id,
		Source:      source,
		PlayerCount: playerCount,
		ImportedAt:  time.Now().UTC(),
	}

	err = r.queries.InsertCatalogImport(ctx, db.InsertCatalogImportParams{
		ID:          rec.ID,
		Source:      rec.Source,
		PlayerCount: int64(rec.PlayerCount),
		ImportedAt:  rec.ImportedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record catalog import: %w", err)
	}

	r.logger.Debug().Str("id", rec.ID).Str("source", source).Int("player_count", playerCount).Msg("catalog import recorded")
	return rec, nil
}

// Recent returns the latest imports, newest first.
func (r *CatalogImportRepository) Recent(ctx context.Context, limit int) ([]domain.CatalogImport, error) {
	records, err := r.queries.ListCatalogImports(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	result := make([]domain.CatalogImport, len(records))
	for i, rec := range records {
		result[i] = domain.CatalogImport{
			ID:          rec.ID,
			Source:      rec.Source,
			PlayerCount: int(rec.PlayerCount),
			ImportedAt:  rec.ImportedAt,
		}
	}
	return result, nil
}
