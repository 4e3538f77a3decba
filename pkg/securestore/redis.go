package securestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "haladesk:"

// RedisBackend shares entries between desk agents through Redis.
type RedisBackend struct {
	client *redis.Client
}

func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (r *RedisBackend) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	return v, nil
}

func (r *RedisBackend) Set(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, redisKeyPrefix+key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

func (r *RedisBackend) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, redisKeyPrefix+key).Err()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}

	return nil
}
