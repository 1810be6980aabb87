// Package kv stores the client's auth slots (token, user, saved name,
// register token) as key/value rows in the local SQLite database.
package kv

import "context"

// Repository is a string key/value store. Get returns ("", false, nil) for a
// missing key.
type Repository interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
	// Clear removes every key.
	Clear(ctx context.Context) error
}
