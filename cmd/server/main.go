package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"cricket-roster/internal/catalog"
	"cricket-roster/internal/config"
	"cricket-roster/internal/constants"
	fxmodules "cricket-roster/internal/fx"
	"cricket-roster/internal/middleware"
	"cricket-roster/internal/server"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func main() {
	fx.New(
		fxmodules.Module,
		fx.Invoke(loadCatalog),
		fx.Invoke(runServer),
	).Run()
}

func loadCatalog(lc fx.Lifecycle, loader *catalog.Loader, cfg *config.Config, logger zerolog.Logger) {
	refreshCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snap, err := loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			logger.Info().Str("source", snap.Source).Int("players", snap.Len()).Msg("catalog ready")

			if cfg.CatalogRefreshInterval <= 0 {
				close(done)
				return nil
			}
			go func() {
				defer close(done)
				loader.Run(refreshCtx, cfg.CatalogRefreshInterval)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}

func runServer(
	lc fx.Lifecycle,
	rosterServer *server.RosterServer,
	cfg *config.Config,
	db *sql.DB,
	logger zerolog.Logger,
) {
	mux := http.NewServeMux()

	path, handler := server.NewRosterServiceHandler(rosterServer)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader, server.SessionHeader},
		AllowCredentials: true,
	})

	mux.Handle(path, middleware.RequestID(logger)(c.Handler(handler)))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.ServerPort),
		Handler: mux,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info().Str("addr", srv.Addr).Str("path", path).Msg("server starting")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Fatal().Err(err).Msg("server failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("server shutdown failed")
				return err
			}

			if err := db.Close(); err != nil {
				logger.Warn().Err(err).Msg("error closing database connection")
			}

			logger.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}
