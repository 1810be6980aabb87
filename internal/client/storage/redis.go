package storage

import (
	"context"
	"errors"

	"github.com/dpbr/dpbr-client/internal/logging"
	"github.com/redis/go-redis/v9"
)

// RedisStorage keeps slots under "<prefix><slot>" keys. Update runs inside
// MULTI/EXEC, so other clients never observe half of a batch.
type RedisStorage struct {
	rdb    redis.Cmdable
	prefix string
	log    logging.Logger
}

func NewRedisStorage(rdb redis.Cmdable, prefix string, log logging.Logger) *RedisStorage {
	return &RedisStorage{rdb: rdb, prefix: prefix, log: log.With("storage", "redis")}
}

func (s *RedisStorage) key(slot Slot) string {
	return s.prefix + string(slot)
}

func (s *RedisStorage) keys(slots []Slot) []string {
	keys := make([]string, len(slots))
	for i, slot := range slots {
		keys[i] = s.key(slot)
	}
	return keys
}

func (s *RedisStorage) Get(ctx context.Context, slot Slot) (string, bool) {
	v, err := s.rdb.Get(ctx, s.key(slot)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false
	}
	if err != nil {
		s.log.Warn(ctx, "storage read failed", "slot", slot, "err", err)
		return "", false
	}
	return v, true
}

func (s *RedisStorage) Set(ctx context.Context, slot Slot, value string) {
	if err := s.rdb.Set(ctx, s.key(slot), value, 0).Err(); err != nil {
		s.log.Warn(ctx, "storage write failed", "slot", slot, "err", err)
	}
}

func (s *RedisStorage) Remove(ctx context.Context, slots ...Slot) {
	if len(slots) == 0 {
		return
	}
	if err := s.rdb.Del(ctx, s.keys(slots)...).Err(); err != nil {
		s.log.Warn(ctx, "storage remove failed", "slots", slots, "err", err)
	}
}

func (s *RedisStorage) Update(ctx context.Context, changes Changes) {
	_, err := s.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for slot, v := range changes.Set {
			p.Set(ctx, s.key(slot), v, 0)
		}
		if len(changes.Remove) > 0 {
			p.Del(ctx, s.keys(changes.Remove)...)
		}
		return nil
	})
	if err != nil {
		s.log.Warn(ctx, "storage update failed", "err", err)
	}
}
