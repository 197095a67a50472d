package repository

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Binding persists named JSON-serializable values to durable local storage.
type Binding interface {
	// Load reads the value stored under key into out, reporting whether the
	// key existed. Decode and read faults surface as errors.
	Load(ctx context.Context, key string, out any) (bool, error)
	// Save serializes value and writes it under key, replacing any previous
	// value.
	Save(ctx context.Context, key string, value any) error
}

// Load reads the value under key, falling back to def on a missing key, a
// corrupt payload or any read fault. Persisted state must never crash the
// application, so faults are logged and recovered locally.
func Load[T any](ctx context.Context, logger *logrus.Logger, b Binding, key string, def T) T {
	var v T
	found, err := b.Load(ctx, key, &v)
	if err != nil {
		logger.WithError(err).Warnf("load %q: falling back to default", key)
		return def
	}
	if !found {
		return def
	}
	return v
}

// Save writes value under key. Persistence is best-effort: a rejected write is
// logged and swallowed, leaving the in-memory state authoritative until the
// next successful write.
func Save(ctx context.Context, logger *logrus.Logger, b Binding, key string, value any) {
	if err := b.Save(ctx, key, value); err != nil {
		logger.WithError(err).Warnf("save %q: keeping in-memory state only", key)
	}
}
