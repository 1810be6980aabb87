package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/redis/go-redis/v9"
)

const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Options selects and configures a backend.
type Options struct {
	Backend       string
	DSN           string
	RedisAddr     string
	RedisPassword string
	RedisPrefix   string
	// Secret enables SealedStorage when non-empty.
	Secret string
}

// Open builds the configured Storage. The returned close function releases
// the backend's resources and is never nil.
func Open(ctx context.Context, opts Options, log logging.Logger) (Storage, func() error, error) {
	var (
		st      Storage
		closeFn = func() error { return nil }
	)

	switch strings.ToLower(opts.Backend) {
	case "", BackendSQLite:
		db, err := OpenDatabase(ctx, opts.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		st, closeFn = NewSQLiteStorage(db, log), db.Close
	case BackendRedis:
		rdb := redis.NewClient(&redis.Options{Addr: opts.RedisAddr, Password: opts.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn(ctx, "redis storage unreachable, continuing best effort", "addr", opts.RedisAddr, "err", err)
		}
		st, closeFn = NewRedisStorage(rdb, opts.RedisPrefix, log), rdb.Close
	case BackendMemory:
		st = NewMemoryStorage()
	case BackendNone:
		return NopStorage{}, closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}

	if opts.Secret != "" {
		sealed, err := NewSealedStorage(st, opts.Secret, log)
		if err != nil {
			_ = closeFn()
			return nil, nil, fmt.Errorf("enable storage sealing: %w", err)
		}
		st = sealed
	}
	return st, closeFn, nil
}
