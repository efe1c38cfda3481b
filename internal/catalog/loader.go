package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"cricket-roster/internal/api"
	"cricket-roster/internal/config"
	"cricket-roster/internal/constants"
	"cricket-roster/internal/domain"
	"cricket-roster/internal/repository"

	"github.com/rs/zerolog"
)

const (
	SourceURL      = "url"
	SourceFile     = "file"
	SourceEmbedded = "embedded"
	SourceDatabase = "database"
)

//go:embed data/players.json
var defaultCatalog []byte

type Loader struct {
	cfg     *config.Config
	client  *api.CatalogClient
	players *repository.PlayerRepository
	imports *repository.CatalogImportRepository
	store   *Store
	logger  zerolog.Logger
}

func NewLoader(
	cfg *config.Config,
	client *api.CatalogClient,
	players *repository.PlayerRepository,
	imports *repository.CatalogImportRepository,
	store *Store,
	logger zerolog.Logger,
) *Loader {
	return &Loader{
		cfg:     cfg,
		client:  client,
		players: players,
		imports: imports,
		store:   store,
		logger:  logger,
	}
}

// Load imports the configured source and publishes the stored catalog. When
// the import fails but an earlier catalog is stored, that one is served.
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.CatalogLoadTimeout)
	defer cancel()

	source, err := l.importConfigured(ctx)
	if err != nil {
		stored, countErr := l.players.Count(ctx)
		if countErr != nil || stored == 0 {
			return nil, err
		}
		l.logger.Warn().Err(err).Int("stored", stored).Msg("catalog import failed, serving stored catalog")
		source = SourceDatabase
	}

	return l.publish(ctx, source)
}

// Refresh re-imports the remote catalog. It reports false when the server
// says the catalog has not changed.
func (l *Loader) Refresh(ctx context.Context) (bool, error) {
	if l.cfg.CatalogURL == "" {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, constants.CatalogLoadTimeout)
	defer cancel()

	source, err := l.importURL(ctx)
	if err != nil {
		return false, err
	}
	if source == SourceDatabase {
		l.logger.Debug().Str("url", l.cfg.CatalogURL).Msg("catalog not modified")
		return false, nil
	}

	if _, err := l.publish(ctx, source); err != nil {
		return false, err
	}
	return true, nil
}

// Run refreshes the catalog every interval until ctx is done.
func (l *Loader) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.Info().Dur("interval", interval).Msg("catalog refresher started")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info().Msg("catalog refresher stopped")
			return
		case <-ticker.C:
			changed, err := l.Refresh(ctx)
			if err != nil {
				l.logger.Error().Err(err).Msg("catalog refresh failed")
				continue
			}
			if changed {
				l.logger.Info().Int("players", l.store.Current().Len()).Msg("catalog refreshed")
			}
		}
	}
}

func (l *Loader) History(ctx context.Context) ([]domain.CatalogImport, error) {
	return l.imports.Recent(ctx, constants.ImportHistoryLimit)
}

func (l *Loader) importConfigured(ctx context.Context) (string, error) {
	switch {
	case l.cfg.CatalogURL != "":
		return l.importURL(ctx)
	case l.cfg.CatalogPath != "":
		body, err := os.ReadFile(l.cfg.CatalogPath)
		if err != nil {
			return "", fmt.Errorf("failed to read catalog file: %w", err)
		}
		return SourceFile, l.importBytes(ctx, SourceFile, body)
	default:
		stored, err := l.players.Count(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to count stored players: %w", err)
		}
		if stored > 0 {
			return SourceDatabase, nil
		}
		return SourceEmbedded, l.importBytes(ctx, SourceEmbedded, defaultCatalog)
	}
}

func (l *Loader) importURL(ctx context.Context) (string, error) {
	body, err := l.client.FetchCatalog(ctx, l.cfg.CatalogURL)
	if errors.Is(err, api.ErrNotModified) {
		return SourceDatabase, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch catalog: %w", err)
	}
	return SourceURL, l.importBytes(ctx, SourceURL, body)
}

func (l *Loader) importBytes(ctx context.Context, source string, body []byte) error {
	players, err := Decode(bytes.NewReader(body))
	if err != nil {
		return err
	}

	players, dropped := Dedupe(players)
	if len(dropped) > 0 {
		l.logger.Warn().Strs("names", dropped).Str("source", source).Msg("duplicate players dropped from catalog")
	}

	if err := l.players.ReplaceAll(ctx, players); err != nil {
		return fmt.Errorf("failed to store catalog: %w", err)
	}

	if _, err := l.imports.Record(ctx, source, len(players)); err != nil {
		// the catalog itself is stored
		l.logger.Warn().Err(err).Msg("failed to record catalog import")
	}

	l.logger.Info().Str("source", source).Int("players", len(players)).Msg("catalog imported")
	return nil
}

func (l *Loader) publish(ctx context.Context, source string) (*Snapshot, error) {
	players, err := l.players.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored players: %w", err)
	}

	snap := NewSnapshot(source, players)
	l.store.Swap(snap)
	return snap, nil
}
