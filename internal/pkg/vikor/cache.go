package vikor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// ResultCache stores complete calculation results keyed by a hash of the
// input, so identical problems are computed once per expiration window.
type ResultCache struct {
	redis RedisClient
}

func NewResultCache(redis RedisClient) *ResultCache {
	return &ResultCache{
		redis: redis,
	}
}

// InputHash is the hex SHA-256 of the JSON encoding of in. Map keys are
// encoded sorted, so equal inputs hash equally.
func InputHash(in Input) string {
	data, err := json.Marshal(in)
	if err != nil {
		// Input holds only strings, numbers and bools
		panic(fmt.Sprintf("vikor: marshal input: %v", err))
	}

	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (c *ResultCache) GetLockKey(in Input) string {
	return fmt.Sprintf("vikor:lock:%s", InputHash(in))
}

func (c *ResultCache) GetCacheKey(in Input) string {
	return fmt.Sprintf("vikor:cache:%s", InputHash(in))
}

func (c *ResultCache) AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error) {
	return c.redis.SetNX(ctx, key, "1", timeout).Result()
}

func (c *ResultCache) ReleaseLock(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}

func (c *ResultCache) SetResult(ctx context.Context,
	key string,
	results Results,
	expiration time.Duration,
) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := c.redis.Set(ctx, key, data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set results: %w", err)
	}

	return nil
}

func (c *ResultCache) GetResult(ctx context.Context, key string) (Results, error) {
	data, err := c.redis.Get(ctx, key).Bytes()
	if err != nil {
		return Results{}, err
	}

	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return Results{}, fmt.Errorf("failed to unmarshal results: %w", err)
	}

	return results, nil
}
