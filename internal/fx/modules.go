package fx

import (
	"database/sql"

	"cricket-roster/internal/api"
	"cricket-roster/internal/catalog"
	"cricket-roster/internal/config"
	"cricket-roster/internal/database"
	"cricket-roster/internal/db"
	"cricket-roster/internal/logger"
	"cricket-roster/internal/repository"
	"cricket-roster/internal/server"
	"cricket-roster/internal/service"

	"go.uber.org/fx"
)

func ProvideQueries(sqlDB *sql.DB) *db.Queries {
	return db.New(sqlDB)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	fx.Provide(ProvideQueries),
	// repos
	fx.Provide(repository.NewPlayerRepository),
	fx.Provide(repository.NewCatalogImportRepository),
	// catalog
	fx.Provide(api.NewCatalogClient),
	fx.Provide(catalog.NewStore),
	fx.Provide(catalog.NewLoader),
	// svc
	fx.Provide(service.NewRosterService),
	fx.Provide(service.NewLineupService),
	fx.Provide(service.NewCompareService),
	// server
	fx.Provide(server.NewRosterServer),
)
