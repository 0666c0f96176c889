// Package cache memoizes cook() results by ordered material signature, so
// a server answering the same request repeatedly (a common pattern for
// recipe-planning UIs probing small variations) skips the pipeline.
package cache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rsned/totk-cooking-server/pkg/cooking"
)

// Cache memoizes CookResult by (ordered material display names, language).
// cook() is a pure function of its inputs (spec.md §5), so memoization
// never observes stale results as long as the catalog doesn't change
// underneath it — callers that re-import a catalog should construct a
// fresh Cache.
type Cache struct {
	lru *lru.Cache[string, cooking.CookResult]
}

// New creates a Cache holding up to size entries. size must be positive.
func New(size int) (*Cache, error) {
	l, err := lru.New[string, cooking.CookResult](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Signature builds the cache key for an ordered list of material display
// names, as supplied by a cook request, and a display language.
func Signature(materialNames []string, lang string) string {
	return lang + "|" + strings.Join(materialNames, ",")
}

// Get returns a cached result for key, if present.
func (c *Cache) Get(key string) (cooking.CookResult, bool) {
	return c.lru.Get(key)
}

// Put stores a result under key.
func (c *Cache) Put(key string, result cooking.CookResult) {
	c.lru.Add(key, result)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
