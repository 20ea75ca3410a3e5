package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"repse-simulator/internal/catalog"
	"repse-simulator/internal/kvstore"
)

// EnvPrefix prefixes every environment override, e.g. REPSE_STORAGE_BACKEND.
const EnvPrefix = "REPSE"

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
	File        string `mapstructure:"file"`
}

// StorageConfig selects the key-value backend for history and diagnostics.
type StorageConfig struct {
	Backend  string         `mapstructure:"backend"`
	File     FileConfig     `mapstructure:"file"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

type FileConfig struct {
	Dir string `mapstructure:"dir"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type PostgresConfig struct {
	URL   string `mapstructure:"url"`
	Table string `mapstructure:"table"`
}

// CatalogConfig points at an alternative rule catalog. Path wins over URL.
type CatalogConfig struct {
	Path    string        `mapstructure:"path"`
	URL     string        `mapstructure:"url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Load reads configuration from path (optional, YAML) and REPSE_*
// environment variables on top of the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers every key, which also lets AutomaticEnv see them
// during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("log.file", "")

	v.SetDefault("storage.backend", BackendFile)
	v.SetDefault("storage.file.dir", defaultDataDir())
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.password", "")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.redis.prefix", "repse:")
	v.SetDefault("storage.postgres.url", "")
	v.SetDefault("storage.postgres.table", "kv_store")

	v.SetDefault("catalog.path", "")
	v.SetDefault("catalog.url", "")
	v.SetDefault("catalog.timeout", "2s")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".repse-sim"
	}
	return filepath.Join(home, ".repse-sim")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := zap.ParseAtomicLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Storage.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Storage.File.Dir == "" {
			return errors.New("storage.file.dir is required for the file backend")
		}
	case BackendRedis:
		if c.Storage.Redis.Addr == "" {
			return errors.New("storage.redis.addr is required for the redis backend")
		}
	case BackendPostgres:
		if c.Storage.Postgres.URL == "" {
			return errors.New("storage.postgres.url is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("invalid catalog timeout %s", c.Catalog.Timeout)
	}
	return nil
}

// NewLogger builds the zap logger. Logs go to log.file when set, stderr
// otherwise.
func (c *Config) NewLogger() (*zap.Logger, error) {
	var zc zap.Config
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	level, err := zap.ParseAtomicLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zc.Level = level
	if c.Log.File != "" {
		zc.OutputPaths = []string{c.Log.File}
		zc.ErrorOutputPaths = []string{c.Log.File}
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// OpenStore connects the configured key-value backend.
func (c *Config) OpenStore(ctx context.Context) (kvstore.Store, error) {
	s := c.Storage
	switch s.Backend {
	case BackendMemory:
		return kvstore.NewMemory(), nil
	case BackendFile:
		return kvstore.NewFile(s.File.Dir)
	case BackendRedis:
		return kvstore.NewRedis(ctx, kvstore.RedisOptions{
			Addr:     s.Redis.Addr,
			Password: s.Redis.Password,
			DB:       s.Redis.DB,
			Prefix:   s.Redis.Prefix,
		})
	case BackendPostgres:
		return kvstore.NewPostgres(ctx, s.Postgres.URL, s.Postgres.Table)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", s.Backend)
	}
}

// CatalogSource maps the catalog section onto a catalog.Source.
func (c *Config) CatalogSource() catalog.Source {
	return catalog.Source{
		Path:    c.Catalog.Path,
		URL:     c.Catalog.URL,
		Timeout: c.Catalog.Timeout,
	}
}
