package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repse-simulator/internal/kvstore"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".repse-sim"), cfg.Storage.File.Dir)
	assert.Equal(t, "localhost:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "repse:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, "kv_store", cfg.Storage.Postgres.Table)
	assert.Equal(t, 2*time.Second, cfg.Catalog.Timeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "repse.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
storage:
  backend: redis
  redis:
    addr: cache:6379
    db: 2
catalog:
  url: http://rules.internal/catalog.yaml
  timeout: 500ms
`), 0o644))
	t.Setenv("REPSE_STORAGE_REDIS_PREFIX", "sim:")
	t.Setenv("REPSE_LOG_DEVELOPMENT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
	assert.Equal(t, BackendRedis, cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.Equal(t, "sim:", cfg.Storage.Redis.Prefix)

	src := cfg.CatalogSource()
	assert.Equal(t, "http://rules.internal/catalog.yaml", src.URL)
	assert.Equal(t, 500*time.Millisecond, src.Timeout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "sqlite" }},
		{"postgres without url", func(c *Config) { c.Storage.Backend = BackendPostgres }},
		{"file without dir", func(c *Config) { c.Storage.File.Dir = "" }},
		{"negative timeout", func(c *Config) { c.Catalog.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Log:     LogConfig{Level: "info"},
				Storage: StorageConfig{Backend: BackendFile, File: FileConfig{Dir: "x"}},
			}
			require.NoError(t, cfg.Validate())
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestEnvSelectsBackend(t *testing.T) {
	t.Setenv("REPSE_STORAGE_BACKEND", "postgres")
	_, err := Load("")
	assert.ErrorContains(t, err, "storage.postgres.url")
}

func TestNewLoggerToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")
	cfg := &Config{Log: LogConfig{Level: "debug", File: path}}
	logger, err := cfg.NewLogger()
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	mem, err := (&Config{Storage: StorageConfig{Backend: BackendMemory}}).OpenStore(ctx)
	require.NoError(t, err)
	assert.IsType(t, &kvstore.Memory{}, mem)

	file, err := (&Config{Storage: StorageConfig{Backend: BackendFile, File: FileConfig{Dir: t.TempDir()}}}).OpenStore(ctx)
	require.NoError(t, err)
	assert.IsType(t, &kvstore.File{}, file)
	require.NoError(t, file.Close())

	mr := miniredis.RunT(t)
	rs, err := (&Config{Storage: StorageConfig{Backend: BackendRedis, Redis: RedisConfig{Addr: mr.Addr()}}}).OpenStore(ctx)
	require.NoError(t, err)
	defer rs.Close()
	assert.IsType(t, &kvstore.Redis{}, rs)

	_, err = (&Config{Storage: StorageConfig{Backend: "tape"}}).OpenStore(ctx)
	assert.Error(t, err)
}
