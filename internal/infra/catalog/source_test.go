package catalog

import (
	"io"
	"log/slog"
	"testing"

	"nomnom/config"
	"nomnom/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantErr bool
	}{
		{name: "empty defaults to builtin", source: ""},
		{name: "builtin", source: config.CatalogSourceBuiltin},
		{name: "unknown", source: "sqlite", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Catalog: &config.CatalogConfig{Source: tt.source}}

			src, err := NewSource(postgres.Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    cfg,
				Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "sqlite")

				return
			}

			require.NoError(t, err)
			assert.IsType(t, &BuiltinSource{}, src)
		})
	}
}

func TestNewSource_PostgresWithoutConfig(t *testing.T) {
	cfg := &config.Config{Catalog: &config.CatalogConfig{Source: config.CatalogSourcePostgres}}

	_, err := NewSource(postgres.Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres configuration is missing")
}
