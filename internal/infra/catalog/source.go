package catalog

import (
	"log/slog"

	"nomnom/config"
	"nomnom/internal/domain/repository"
	"nomnom/internal/errors"
	"nomnom/internal/infra/persistence/postgres"
)

// NewSource picks the catalog source named by catalog.source. The database is
// only opened for the postgres source.
func NewSource(params postgres.Params) (repository.CatalogSource, error) {
	switch source := params.Config.Catalog.Source; source {
	case "", config.CatalogSourceBuiltin:
		return NewBuiltinSource(), nil
	case config.CatalogSourcePostgres:
		db, err := postgres.New(params)
		if err != nil {
			return nil, err
		}

		params.Logger.Info("Loading catalog from PostgreSQL", slog.String("source", source))

		return postgres.NewCatalogSource(db), nil
	default:
		return nil, errors.Errorf("unknown catalog source %q", source)
	}
}
