// Package adapt - cache.go provides the bounded in-process cache for
// adaptation results. Fallback results are cached too so a failing model
// is not retried on every regeneration of the same posting.
package adapt

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of cached adaptation results.
const DefaultCacheSize = 256

// Cache stores adaptation results keyed by a digest of the source text
// and its role/language context. Safe for concurrent use.
type Cache struct {
	bullets *lru.Cache[string, []string]
	strings *lru.Cache[string, string]
}

// NewCache creates a cache with the given capacity per result kind.
// Zero capacity uses DefaultCacheSize.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}

	bullets, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	strings, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}

	return &Cache{bullets: bullets, strings: strings}, nil
}

// Key derives a stable cache key from the source text and a context
// string (role, language, leading keywords).
func Key(text, context string) string {
	sum := sha256.Sum256([]byte(text + "|" + context))
	return hex.EncodeToString(sum[:])
}

// GetBullets returns a cached bullet list.
func (c *Cache) GetBullets(key string) ([]string, bool) {
	return c.bullets.Get(key)
}

// PutBullets stores a bullet list.
func (c *Cache) PutBullets(key string, value []string) {
	c.bullets.Add(key, value)
}

// GetString returns a cached string result.
func (c *Cache) GetString(key string) (string, bool) {
	return c.strings.Get(key)
}

// PutString stores a string result.
func (c *Cache) PutString(key, value string) {
	c.strings.Add(key, value)
}
