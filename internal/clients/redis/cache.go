package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/lyrahhq/lyrah-backend/internal/logger"
	"github.com/lyrahhq/lyrah-backend/internal/utils"
)

// Cache is a thin JSON read-through layer over Redis. A nil *Cache is valid
// and behaves as a permanent miss, so callers never branch on whether Redis
// is configured.
type Cache struct {
	client *goredis.Client
	log    *logger.Logger
}

// NewCache connects using REDIS_ADDR. When the variable is unset it returns
// (nil, nil) and caching is disabled.
func NewCache(ctx context.Context, log *logger.Logger) (*Cache, error) {
	clientLog := log.With("client", "RedisCache")

	addr := utils.GetEnv("REDIS_ADDR", "", log)
	if addr == "" {
		clientLog.Info("REDIS_ADDR unset, reference cache disabled")
		return nil, nil
	}
	password := utils.GetEnv("REDIS_PASSWORD", "", log)

	client := goredis.NewClient(&goredis.Options{Addr: addr, Password: password})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	clientLog.Info("Connected to Redis", "addr", addr)
	return &Cache{client: client, log: clientLog}, nil
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
