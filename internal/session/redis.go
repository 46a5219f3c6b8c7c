package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trainease/internal/cache"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps sessions as JSON values that expire through key TTLs.
type RedisStore struct {
	c cache.Cache
}

func NewRedisStore(c cache.Cache) *RedisStore {
	return &RedisStore{c: c}
}

func redisKey(sid string) string {
	return redisKeyPrefix + sid
}

func (s *RedisStore) Save(ctx context.Context, sid string, d Data, ttl time.Duration) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := s.c.Set(ctx, redisKey(sid), raw, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *RedisStore) Load(ctx context.Context, sid string) (Data, error) {
	raw, err := s.c.Get(ctx, redisKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Data{}, ErrNotFound
	}
	if err != nil {
		return Data{}, fmt.Errorf("load session: %w", err)
	}
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("decode session: %w", err)
	}
	return d, nil
}

func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.c.Del(ctx, redisKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
