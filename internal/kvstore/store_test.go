package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore checks the behaviour every backend shares.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "simulator_history", `[{"id":"a"}]`))
	v, err := s.Get(ctx, "simulator_history")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, v)

	require.NoError(t, s.Set(ctx, "simulator_history", `[]`))
	v, err = s.Get(ctx, "simulator_history")
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)

	require.NoError(t, s.Set(ctx, "empty", ""))
	v, err = s.Get(ctx, "empty")
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestFile(t *testing.T) {
	s, err := NewFile(filepath.Join(t.TempDir(), "nested", "store"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "../escape", "x"))
	require.NoError(t, s.Close())

	s, err = NewFile(dir)
	require.NoError(t, err)
	defer s.Close()
	v, err := s.Get(ctx, "../escape")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
	_, err = os.Stat(filepath.Join(filepath.Dir(dir), "escape"))
	assert.True(t, os.IsNotExist(err))
}

func TestFileHonoursCancelledContext(t *testing.T) {
	s, err := NewFile(t.TempDir())
	require.NoError(t, err)
	defer s.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Set(ctx, "k", "v"), context.Canceled)
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	s, err := NewRedis(context.Background(), RedisOptions{Addr: mr.Addr(), Prefix: "repse:"})
	require.NoError(t, err)
	defer s.Close()

	exerciseStore(t, s)
	assert.True(t, mr.Exists("repse:simulator_history"))
}

func TestRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err := NewRedis(context.Background(), RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestPostgres(t *testing.T) {
	url := os.Getenv("REPSE_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("REPSE_TEST_DATABASE_URL not set")
	}
	s, err := NewPostgres(context.Background(), url, "kv_store_test")
	require.NoError(t, err)
	defer s.Close()
	_, err = s.pool.Exec(context.Background(), `TRUNCATE `+s.table)
	require.NoError(t, err)

	exerciseStore(t, s)
}

func TestPostgresRequiresURL(t *testing.T) {
	_, err := NewPostgres(context.Background(), "", "")
	assert.Error(t, err)
}
