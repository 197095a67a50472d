package service

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"estate-catalog/internal/repository/sqlite"
)

func newTestBinding(t *testing.T) *sqlite.KV {
	t.Helper()
	kv, err := sqlite.Open(filepath.Join(t.TempDir(), "catalog.db"))
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
