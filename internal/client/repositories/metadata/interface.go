// Package metadata is the client's small key/value store. The session
// credential and role tag live here; implementations exist for SQLite
// (default, survives restarts), process memory and Redis (shared between
// several front-ends on one host).
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store.
//
// Get returns (nil, nil) when the key is absent. Delete removes all given
// keys at once or none of them. Delete and Clear succeed on missing keys, so
// a second call after a successful one is a no-op.
// Implementations must be safe for concurrent use.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
