package port

import (
	"context"
	"time"
)

// Cache is a short-lived key/value store for read-heavy results such as
// dashboard statistics. Values are JSON encoded by implementations.
type Cache interface {
	// Get decodes the value stored under key into dst. It reports false on
	// a miss or an expired entry.
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
