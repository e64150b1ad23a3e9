package postgres

import (
	"context"
	"log/slog"

	"nomnom/config"
	"nomnom/internal/domain/lifecycle"
	"nomnom/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// the catalog issues a handful of sequential reads at startup
const catalogMaxOpenConns = 2

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the catalog database. The catalog is loaded while the fx graph is
// being built, before any OnStart hook runs, so the connection is checked here.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	logger := params.Logger.With(slog.String("component", "catalog-db"))
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
		Logger:                 newGormSlogLogger(logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	sqlDB.SetMaxOpenConns(catalogMaxOpenConns)
	sqlDB.SetMaxIdleConns(0)

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, errors.Wrap(err, "failed to ping PostgreSQL")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing catalog database")

			return sqlDB.Close()
		},
	})

	return db, nil
}
