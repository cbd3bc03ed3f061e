package cache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis"
	"github.com/stretchr/testify/require"

	"github.com/getdataurl/go-dataurl/fetch"
)

var redisServer *miniredis.Miniredis
var redisCache *RedisCache

func resetRedis() {
	var err error
	if redisServer != nil {
		redisServer.Close()
	}

	redisServer, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	redisCache, err = NewRedisCache(redisServer.Addr())
	if err != nil {
		panic(err)
	}
}

func TestRedisCacheSetup(t *testing.T) {
	_, err := NewRedisCache("localhost:18279")
	require.NotNil(t, err, err)
}

func TestRenderedDataUrl(t *testing.T) {
	resetRedis()
	ctx := context.Background()

	url := "https://example.com/some/image.png?size=large"
	rendered := "data:image/png;base64,aW1hZ2UtYnl0ZXM"

	// Get before set: should return not found
	val, found, err := redisCache.GetRenderedDataUrl(ctx, url)
	require.Nil(t, err, err)
	require.False(t, found)
	require.Equal(t, "", val)

	err = redisCache.SetRenderedDataUrl(ctx, url, rendered)
	require.Nil(t, err, err)

	val, found, err = redisCache.GetRenderedDataUrl(ctx, url)
	require.Nil(t, err, err)
	require.True(t, found)
	require.Equal(t, rendered, val)

	// Keys are derived from the URL hash, not the URL itself
	require.True(t, strings.HasPrefix(RedisKeyRenderedDataUrl(url), RedisPrefixRenderedDataUrl))
	require.NotContains(t, RedisKeyRenderedDataUrl(url), url)

	// After resetting redis, we shouldn't be able to find the key
	resetRedis()
	_, found, err = redisCache.GetRenderedDataUrl(ctx, url)
	require.Nil(t, err, err)
	require.False(t, found)
}

func TestCachingConverter(t *testing.T) {
	resetRedis()
	ctx := context.Background()

	var numRequests int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&numRequests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	converter := NewCachingConverter(fetch.NewConverter(), redisCache)

	first, err := converter.UrlToDataUrl(ctx, srv.URL)
	require.Nil(t, err, err)
	require.True(t, strings.HasPrefix(first, "data:application/json;base64,"), first)
	require.Equal(t, int64(1), atomic.LoadInt64(&numRequests))

	// second call is served from the cache, the backend sees no request
	second, err := converter.UrlToDataUrl(ctx, srv.URL)
	require.Nil(t, err, err)
	require.Equal(t, first, second)
	require.Equal(t, int64(1), atomic.LoadInt64(&numRequests))

	// a different URL misses the cache
	_, err = converter.UrlToDataUrl(ctx, srv.URL+"/other")
	require.Nil(t, err, err)
	require.Equal(t, int64(2), atomic.LoadInt64(&numRequests))
}
