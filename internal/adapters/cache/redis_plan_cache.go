package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mail-train-service/internal/domain"
	"mail-train-service/internal/platform/obs"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "trains:plan:"

// Redis-backed cache for solved plans. Keys are prefixed so the cache can
// share a Redis database with other data.
type RedisPlanCache struct {
	RDB *redis.Client
	Log *zap.SugaredLogger
}

func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})
}

func NewRedisPlanCache(rdb *redis.Client, log *zap.SugaredLogger) *RedisPlanCache {
	return &RedisPlanCache{RDB: rdb, Log: log}
}

// Fetch a cached plan. A missing key is a miss, not an error.
func (c *RedisPlanCache) Get(ctx context.Context, key string) (_ *domain.DeliveryPlan, ok bool, err error) {
	defer obs.Time(ctx, c.Log, "plan.cache.Get")(&err)

	if c.RDB == nil {
		return nil, false, errors.New("plan cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return nil, false, errors.New("get plan cache: key must not be empty")
	}

	b, err := c.RDB.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get plan cache: %w", err)
	}

	var plan domain.DeliveryPlan
	if err := json.Unmarshal(b, &plan); err != nil {
		return nil, false, fmt.Errorf("get plan cache: decode %q: %w", key, err)
	}
	return &plan, true, nil
}

// Store a plan for ttl. A zero ttl keeps it until evicted.
func (c *RedisPlanCache) Set(ctx context.Context, key string, plan *domain.DeliveryPlan, ttl time.Duration) error {
	if c.RDB == nil {
		return errors.New("plan cache: redis client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("set plan cache: key must not be empty")
	}

	b, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("set plan cache: encode %q: %w", key, err)
	}
	if err := c.RDB.Set(ctx, keyPrefix+key, b, ttl).Err(); err != nil {
		return fmt.Errorf("set plan cache %q: %w", key, err)
	}
	return nil
}
