// Package cache adds an optional Redis-backed cache of rendered data URLs in
// front of a fetch.Converter.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

var RedisPrefix = "get-data-url:"
var RedisPrefixRenderedDataUrl = RedisPrefix + "rendered:"
var RedisExpiryRenderedDataUrl = time.Duration(1 * time.Hour)

// RedisKeyRenderedDataUrl hashes the source URL so that arbitrarily long
// URLs map to fixed-size keys.
func RedisKeyRenderedDataUrl(url string) string {
	return fmt.Sprintf("%s%d", RedisPrefixRenderedDataUrl, xxhash.Sum64String(url))
}

type RedisCache struct {
	RedisClient *redis.Client
}

func NewRedisCache(redisUrl string) (*RedisCache, error) {
	redisClient := redis.NewClient(&redis.Options{Addr: redisUrl})

	// Try to get a key to see if there's an error with the connection
	if err := redisClient.Get(context.Background(), "somekey").Err(); err != nil && err != redis.Nil {
		return nil, errors.Wrap(err, "redis init error")
	}

	return &RedisCache{
		RedisClient: redisClient,
	}, nil
}

func (s *RedisCache) SetRenderedDataUrl(ctx context.Context, url, rendered string) error {
	key := RedisKeyRenderedDataUrl(url)
	err := s.RedisClient.Set(ctx, key, rendered, RedisExpiryRenderedDataUrl).Err()
	return err
}

func (s *RedisCache) GetRenderedDataUrl(ctx context.Context, url string) (val string, found bool, err error) {
	key := RedisKeyRenderedDataUrl(url)
	val, err = s.RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil // just not found
	} else if err != nil {
		return "", true, err // found but error
	}

	return val, true, nil
}
