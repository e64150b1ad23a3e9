package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"cache": map[string]any{
			"weatherTtl": "10m",
		},
		"redis": map[string]any{
			"addr": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "CACHE_WEATHERTTL", want: "cache.weatherTtl"},
		{envKey: "REDIS_ADDR", want: "redis.addr"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: nomnom
http:
  port: 8000
redis:
  enabled: false
  addr: localhost:6379
cache:
  weatherTtl: 5m
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("HTTP_PORT", "9000")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "nomnom", cfg.Env.ServiceName)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	require.NotNil(t, cfg.Redis)
	assert.Equal(t, "cache.internal:6380", cfg.Redis.Addr)
	require.NotNil(t, cfg.Cache)
	assert.Equal(t, 5*time.Minute, cfg.Cache.WeatherTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, CatalogSourceBuiltin, cfg.Catalog.Source)
	assert.Equal(t, "copenhagen", cfg.Catalog.DefaultCityID)
	assert.Equal(t, 10*time.Minute, cfg.Cache.WeatherTTL)
	assert.Equal(t, 6*time.Hour, cfg.Cache.CompetitorTTL)
	assert.Equal(t, 24*time.Hour, cfg.Cache.EventTTL)
	assert.Equal(t, 15*time.Minute, cfg.Cache.BusynessTTL)
	assert.Equal(t, "cafe", cfg.Overpass.Amenity)
	assert.Equal(t, 4, cfg.Busyness.Workers)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.Refresh)
}
