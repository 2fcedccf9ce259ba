// Package cache keeps encoded catalog records for a bounded revalidation
// window, in process or in Redis.
package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Cache stores encoded records by key. Entries disappear once their TTL has
// passed or when the cache is full. Backend failures are logged and behave
// like misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
	// Delete drops an entry, typically one that could not be decoded.
	Delete(ctx context.Context, key string)
	// Len counts live entries.
	Len() int
	Close() error
}

// Logger receives errors from cache backends that cannot return them to the caller.
type Logger interface {
	Error(msg string, err error)
}

type zerologAdapter struct {
	logger zerolog.Logger
}

// NewLogger adapts a zerolog logger to the cache Logger interface.
func NewLogger(logger zerolog.Logger) Logger {
	return zerologAdapter{logger: logger}
}

func (z zerologAdapter) Error(msg string, err error) {
	z.logger.Error().Err(err).Msg(msg)
}

// Key builds a cache key namespaced by entity kind. Game IDs and genre slugs
// come from separate remote namespaces and must never collide in the cache.
func Key(kind string, id any) string {
	return fmt.Sprintf("%s:%v", kind, id)
}
