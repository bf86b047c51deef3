// Package redis provides the JSON cache adapter used for content-metadata
// lookups.  Cache misses and cache failures are equivalent to the caller:
// the application falls through to the source of truth either way.
package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CrawlValue-Intelligence/pkg/errors"
)

// CacheConfig holds client construction parameters.
type CacheConfig struct {
	Addr       string
	Password   string
	DB         int
	KeyPrefix  string
	DefaultTTL time.Duration
}

// Cache is a JSON-serialising cache over a Redis client.  Safe for
// concurrent use.
type Cache struct {
	client     *goredis.Client
	prefix     string
	defaultTTL time.Duration
	logger     logging.Logger
}

// NewCache constructs a Cache and verifies connectivity with a ping.
func NewCache(ctx context.Context, cfg CacheConfig, logger logging.Logger) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeValidation, "redis cache requires an address")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.DefaultTTL <= 0 {
		cfg.DefaultTTL = 15 * time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "crawlvalue"
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeCacheError, "failed to connect to redis").
			WithDetail(cfg.Addr)
	}

	return &Cache{
		client:     client,
		prefix:     cfg.KeyPrefix,
		defaultTTL: cfg.DefaultTTL,
		logger:     logger.Named("redis"),
	}, nil
}

func (c *Cache) key(k string) string {
	return c.prefix + ":" + k
}

// Get unmarshals the cached value at key into dest.  The bool result reports
// whether the key was present; a missing key is not an error.
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, errors.ErrCodeCacheError, "cache get failed").WithDetail(key)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten on
		// the next Set.
		c.logger.Warn("discarding corrupt cache entry", logging.String("key", key), logging.Err(err))
		return false, nil
	}
	return true, nil
}

// Set stores value at key with the given TTL; ttl ≤ 0 uses the default.
// A jitter of up to ±10% spreads expirations so hot keys do not stampede.
func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "failed to marshal cache value").WithDetail(key)
	}
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	ttl = jitter(ttl)
	if err := c.client.Set(ctx, c.key(key), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache set failed").WithDetail(key)
	}
	return nil
}

// Delete removes the entry at key.  Deleting a missing key is not an error.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return errors.Wrap(err, errors.ErrCodeCacheError, "cache delete failed").WithDetail(key)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func jitter(ttl time.Duration) time.Duration {
	delta := int64(float64(ttl) * 0.1)
	if delta <= 0 {
		return ttl
	}
	return ttl + time.Duration(rand.Int63n(2*delta)-delta)
}

//Personal.AI order the ending
