package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultCityID             = "copenhagen"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// StaticDir holds the built web client; empty disables static serving
		StaticDir string `json:"staticDir" yaml:"staticDir"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Catalog selects where the reference tables come from
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Postgres is only required when Catalog.Source is "postgres"
	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the shared provider snapshot cache
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Cache TTLs per provider
	Cache *CacheConfig `json:"cache" yaml:"cache"`

	Weather *WeatherConfig `json:"weather" yaml:"weather"`

	Overpass *OverpassConfig `json:"overpass" yaml:"overpass"`

	Busyness *BusynessConfig `json:"busyness" yaml:"busyness"`

	Scoring *ScoringConfig `json:"scoring" yaml:"scoring"`

	// PubSub configuration for refresh events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for hotspot share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Refresh configures the push worker
	Refresh *RefreshConfig `json:"refresh" yaml:"refresh"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Catalog sources
const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourcePostgres = "postgres"
)

type CatalogConfig struct {
	Source        string `json:"source" yaml:"source"`
	DefaultCityID string `json:"defaultCityId" yaml:"defaultCityId"`
}

type RedisConfig struct {
	Enabled  bool   `json:"enabled" yaml:"enabled"`
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

type CacheConfig struct {
	WeatherTTL    time.Duration `json:"weatherTtl" yaml:"weatherTtl"`
	CompetitorTTL time.Duration `json:"competitorTtl" yaml:"competitorTtl"`
	EventTTL      time.Duration `json:"eventTtl" yaml:"eventTtl"`
	BusynessTTL   time.Duration `json:"busynessTtl" yaml:"busynessTtl"`
}

// WeatherConfig defines the Open-Meteo client
type WeatherConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// OverpassConfig defines the OpenStreetMap Overpass client used to locate competitors
type OverpassConfig struct {
	Endpoint    string        `json:"endpoint" yaml:"endpoint"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
	MaxParallel int           `json:"maxParallel" yaml:"maxParallel"`
	// Amenity is the OSM amenity tag value treated as a competitor
	Amenity string `json:"amenity" yaml:"amenity"`
}

// BusynessConfig defines the headless-browser live busyness scraper
type BusynessConfig struct {
	Enabled      bool          `json:"enabled" yaml:"enabled"`
	SearchURL    string        `json:"searchUrl" yaml:"searchUrl"`
	PageLoadWait time.Duration `json:"pageLoadWait" yaml:"pageLoadWait"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout"`
	// Workers bounds concurrent scrapes for a single request
	Workers int `json:"workers" yaml:"workers"`
}

type ScoringConfig struct {
	DensityRadiusMeters float64 `json:"densityRadiusMeters" yaml:"densityRadiusMeters"`
}

// PubSubConfig defines Pub/Sub configuration for refresh events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "google" for Google Pub/Sub, "noop" to disable
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// RefreshConfig defines the refresher worker
type RefreshConfig struct {
	// Port of the refresher HTTP server; 0 reuses http.port
	Port int `json:"port" yaml:"port"`
	// VerifyPushAuth enables OIDC verification of Pub/Sub push requests
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`
	// Audience expected in the push OIDC token
	Audience string `json:"audience" yaml:"audience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if cfg.Catalog.Source == CatalogSourcePostgres {
		if cfg.Postgres == nil {
			return nil, errors.New("postgres catalog source requires a postgres section")
		}
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceBuiltin
	}
	if cfg.Catalog.DefaultCityID == "" {
		cfg.Catalog.DefaultCityID = defaultCityID
	}

	if cfg.Redis == nil {
		cfg.Redis = &RedisConfig{}
	}

	if cfg.Cache == nil {
		cfg.Cache = &CacheConfig{}
	}
	cfg.Cache.WeatherTTL = durationOr(cfg.Cache.WeatherTTL, 10*time.Minute)
	cfg.Cache.CompetitorTTL = durationOr(cfg.Cache.CompetitorTTL, 6*time.Hour)
	cfg.Cache.EventTTL = durationOr(cfg.Cache.EventTTL, 24*time.Hour)
	cfg.Cache.BusynessTTL = durationOr(cfg.Cache.BusynessTTL, 15*time.Minute)

	if cfg.Weather == nil {
		cfg.Weather = &WeatherConfig{}
	}
	if cfg.Weather.BaseURL == "" {
		cfg.Weather.BaseURL = "https://api.open-meteo.com/v1/forecast"
	}
	cfg.Weather.Timeout = durationOr(cfg.Weather.Timeout, 10*time.Second)

	if cfg.Overpass == nil {
		cfg.Overpass = &OverpassConfig{}
	}
	if cfg.Overpass.Endpoint == "" {
		cfg.Overpass.Endpoint = "https://overpass-api.de/api/interpreter"
	}
	if cfg.Overpass.Amenity == "" {
		cfg.Overpass.Amenity = "cafe"
	}
	if cfg.Overpass.MaxParallel <= 0 {
		cfg.Overpass.MaxParallel = 1
	}
	cfg.Overpass.Timeout = durationOr(cfg.Overpass.Timeout, 30*time.Second)

	if cfg.Busyness == nil {
		cfg.Busyness = &BusynessConfig{}
	}
	if cfg.Busyness.SearchURL == "" {
		cfg.Busyness.SearchURL = "https://www.google.com/maps/search/"
	}
	if cfg.Busyness.Workers <= 0 {
		cfg.Busyness.Workers = 4
	}
	cfg.Busyness.PageLoadWait = durationOr(cfg.Busyness.PageLoadWait, 5*time.Second)
	cfg.Busyness.Timeout = durationOr(cfg.Busyness.Timeout, 30*time.Second)

	if cfg.Scoring == nil {
		cfg.Scoring = &ScoringConfig{}
	}

	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}

	if cfg.Refresh == nil {
		cfg.Refresh = &RefreshConfig{}
	}
}

func durationOr(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}

	return v
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
