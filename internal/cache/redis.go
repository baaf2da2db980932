package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const liveURLKey = "courtside:live_url"

// Redis persists the live URL so it survives restarts and can be shared by
// multiple server instances.
type Redis struct {
	rdb *redis.Client
}

var _ LiveURL = (*Redis)(nil)

func NewRedis(address, username, password string) *Redis {
	return &Redis{
		rdb: redis.NewClient(&redis.Options{
			Addr:     address,
			Username: username,
			Password: password,
			DB:       0,
		}),
	}
}

func (r *Redis) Set(ctx context.Context, url string) error {
	if err := r.rdb.Set(ctx, liveURLKey, url, 0).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context) (string, error) {
	url, err := r.rdb.Get(ctx, liveURLKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return url, nil
}

func (r *Redis) Clear(ctx context.Context) error {
	return r.Set(ctx, "")
}
