// Package fetch - cached.go wraps posting fetches with an in-process LRU cache.
package fetch

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultPageCacheSize bounds the number of cached postings.
const DefaultPageCacheSize = 64

// DefaultPageCacheTTL is how long a cached posting stays fresh.
const DefaultPageCacheTTL = 1 * time.Hour

// CachedFetcher wraps posting fetches with an in-memory LRU cache so a
// cv run followed by a letter run for the same URL fetches once.
type CachedFetcher struct {
	cache     *lru.Cache[string, *cachedPage]
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
	now       func() time.Time
}

type cachedPage struct {
	result    *Result
	fetchedAt time.Time
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheSize int
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// DefaultCachedFetcherConfig returns sensible defaults.
func DefaultCachedFetcherConfig() *CachedFetcherConfig {
	return &CachedFetcherConfig{
		CacheSize: DefaultPageCacheSize,
		CacheTTL:  DefaultPageCacheTTL,
		Options:   DefaultOptions(),
	}
}

// NewCachedFetcher creates a new cached fetcher.
func NewCachedFetcher(config *CachedFetcherConfig) (*CachedFetcher, error) {
	if config == nil {
		config = DefaultCachedFetcherConfig()
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheSize == 0 {
		config.CacheSize = DefaultPageCacheSize
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = DefaultPageCacheTTL
	}

	cache, err := lru.New[string, *cachedPage](config.CacheSize)
	if err != nil {
		return nil, err
	}

	return &CachedFetcher{
		cache:     cache,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
		now:       time.Now,
	}, nil
}

// CachedResult extends Result with cache metadata.
type CachedResult struct {
	*Result
	FromCache bool
}

// Fetch retrieves a posting URL, returning cached content when fresh.
func (f *CachedFetcher) Fetch(ctx context.Context, urlStr string) (*CachedResult, error) {
	if !f.skipCache {
		if page, ok := f.cache.Get(urlStr); ok {
			if f.now().Sub(page.fetchedAt) < f.cacheTTL {
				return &CachedResult{Result: page.result, FromCache: true}, nil
			}
			f.cache.Remove(urlStr)
		}
	}

	result, err := JobText(ctx, urlStr, f.options)
	if err != nil {
		return nil, err
	}

	f.cache.Add(urlStr, &cachedPage{result: result, fetchedAt: f.now()})

	return &CachedResult{Result: result}, nil
}

// Invalidate drops a cached posting, forcing a re-fetch on next request.
func (f *CachedFetcher) Invalidate(urlStr string) {
	f.cache.Remove(urlStr)
}
