// Package cache implements component C: a path -> evaluated-value cache
// shared across every sub-evaluator spawned during one run. Grounded on
// the teacher's Loader.LoadedModules map[string]*Module cache-by-absolute-
// path pattern (_examples/funvibe-funxy/internal/modules/loader.go),
// simplified since UCG's cache has no package/export bookkeeping.
package cache

import (
	"sync"

	"github.com/jfranklin9000/ucg/internal/value"
)

// Cache maps canonical absolute paths to their evaluated output value.
// Safe for concurrent use, though the evaluator itself is single-threaded
// (spec §5); the lock exists only to satisfy the "borrow to read, release,
// compute, borrow to write" protocol §5 describes, never held across a
// sub-evaluation.
type Cache struct {
	mu    sync.Mutex
	store map[string]value.Value
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{store: make(map[string]value.Value)}
}

// Get returns the cached value for path, if any.
func (c *Cache) Get(path string) (value.Value, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.store[path]
	return v, ok
}

// Stash records v for path. Idempotent: storing the same value object
// twice is a no-op. Storing a different value for a path that already has
// one is undefined by spec §4.C (should not occur because the cache is
// always consulted before re-evaluation) — Stash simply overwrites rather
// than panicking, since the spec explicitly disclaims this case.
func (c *Cache) Stash(path string, v value.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.store[path]; ok && existing == v {
		return
	}
	c.store[path] = v
}
