package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"cricket-roster/internal/constants"
	"cricket-roster/internal/db"
	"cricket-roster/internal/domain"

	"github.com/rs/zerolog"
)

type PlayerRepository struct {
	queries *db.Queries
	db      *sql.DB
	logger  zerolog.Logger
}

func NewPlayerRepository(sqlDB *sql.DB, queries *db.Queries, logger zerolog.Logger) *PlayerRepository {
	return &PlayerRepository{
		queries: queries,
		db:      sqlDB,
		logger:  logger,
	}
}

// ReplaceAll swaps the stored catalog for players in one transaction. The
// slice index becomes the stored position so catalog order survives.
func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []domain.Player) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if err := qtx.DeleteAllPlayers(ctx); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	now := time.Now()
	for i := 0; i < len(players); i += constants.DBBatchSize {
		end := i + constants.DBBatchSize
		if end > len(players) {
			end = len(players)
		}

		for j, player := range players[i:end] {
			err := qtx.UpsertPlayer(ctx, db.UpsertPlayerParams{
				Name:      player.Name,
				Position:  int64(i + j),
				Country:   player.Country,
				Role:      string(player.Role),
				Image:     player.Image,
				CreatedAt: now,
				UpdatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("failed to upsert player %s: %w", player.Name, err)
			}

			for format, stats := range player.Stats {
				err := qtx.UpsertPlayerStats(ctx, db.UpsertPlayerStatsParams{
					PlayerName: player.Name,
					Format:     string(format),
					Matches:    int64(stats.Matches),
					Runs:       int64(stats.Runs),
					Wickets:    int64(stats.Wickets),
				})
				if err != nil {
					return fmt.Errorf("failed to upsert %s stats for %s: %w", format, player.Name, err)
				}
			}
		}

		r.logger.Debug().Int("from", i).Int("to", end).Msg("player batch written")
	}

	return tx.Commit()
}

// List returns the stored catalog in catalog order.
func (r *PlayerRepository) List(ctx context.Context) ([]domain.Player, error) {
	rows, err := r.queries.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}

	statRows, err := r.queries.ListPlayerStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make(map[string]map[domain.Format]domain.FormatStats)
	for _, s := range statRows {
		if stats[s.PlayerName] == nil {
			stats[s.PlayerName] = make(map[domain.Format]domain.FormatStats)
		}
		stats[s.PlayerName][domain.Format(s.Format)] = domain.FormatStats{
			Matches: int(s.Matches),
			Runs:    int(s.Runs),
			Wickets: int(s.Wickets),
		}
	}

	result := make([]domain.Player, len(rows))
	for i, p := range rows {
		result[i] = domain.Player{
			Name:    p.Name,
			Country: p.Country,
			Role:    domain.Role(p.Role),
			Image:   p.Image,
			Stats:   stats[p.Name],
		}
	}

	r.logger.Debug().Int("count", len(result)).Msg("players loaded")
	return result, nil
}

func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	n, err := r.queries.CountPlayers(ctx)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
