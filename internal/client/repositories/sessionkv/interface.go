// Package sessionkv persists the session's key-value state (token, active
// flag, cached profile, seal material) in the local SQLite database.
package sessionkv

import "context"

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
