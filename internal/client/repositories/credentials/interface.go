// Package credentials persists the session's bearer token in the client's
// local sqlite database, keyed by a fixed name. This is the only state the
// client keeps across restarts.
package credentials

import "context"

type Repository interface {
	// Get returns the value stored under key, or "" when absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
