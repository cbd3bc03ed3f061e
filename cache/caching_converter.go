package cache

import (
	"context"

	"github.com/getdataurl/go-dataurl/fetch"
)

// CachingConverter serves rendered data URLs out of Redis and falls through
// to the wrapped converter on a miss. The converter itself stays cache-free.
type CachingConverter struct {
	Converter *fetch.Converter
	State     *RedisCache
}

func NewCachingConverter(converter *fetch.Converter, state *RedisCache) *CachingConverter {
	return &CachingConverter{Converter: converter, State: state}
}

// UrlToDataUrl returns the cached rendering of url when present, fetching
// and caching it otherwise. A failing cache read falls through to a fetch; a
// failing cache write is returned because the next call would fetch again
// silently.
func (c *CachingConverter) UrlToDataUrl(ctx context.Context, url string) (string, error) {
	val, found, err := c.State.GetRenderedDataUrl(ctx, url)
	if err == nil && found {
		return val, nil
	}

	res, err := c.Converter.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	rendered := res.String()
	if err := c.State.SetRenderedDataUrl(ctx, url, rendered); err != nil {
		return "", err
	}
	return rendered, nil
}
