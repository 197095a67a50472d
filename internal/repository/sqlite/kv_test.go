package sqlite

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate-catalog/internal/repository"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	require.NoError(t, kv.Init(context.Background()))
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	in := []string{"a", "b", "c"}
	require.NoError(t, kv.Save(ctx, "ids", in))

	var out []string
	found, err := kv.Load(ctx, "ids", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)

	// overwrite replaces the previous value
	require.NoError(t, kv.Save(ctx, "ids", []string{"z"}))
	found, err = kv.Load(ctx, "ids", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"z"}, out)
}

func TestKVMissingKey(t *testing.T) {
	kv := newTestKV(t)

	var out []string
	found, err := kv.Load(context.Background(), "absent", &out)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLoadFallsBackOnMissingAndCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	logger := newTestLogger()

	def := []string{"seed"}
	assert.Equal(t, def, repository.Load(ctx, logger, kv, "absent", def))

	// corrupt the stored document behind the binding's back
	_, err := kv.db.ExecContext(ctx, `INSERT INTO kv (key, value) VALUES ('broken', '{not json')`)
	require.NoError(t, err)
	assert.Equal(t, def, repository.Load(ctx, logger, kv, "broken", def))
}

func TestSaveThenLoadThroughHelpers(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)
	logger := newTestLogger()

	type point struct {
		X, Y int
	}
	repository.Save(ctx, logger, kv, "p", point{X: 3, Y: 7})
	assert.Equal(t, point{X: 3, Y: 7}, repository.Load(ctx, logger, kv, "p", point{}))
}
