package cache

import (
	"sync"

	"github.com/skylinepath/skyroute/graph"
)

// SearchFunc computes the shortest path between two nodes. It matches the
// signature of astar.ShortestPath; the cache stays agnostic of the engine.
type SearchFunc func(a, b string) (graph.Path, error)

// pairKey is the canonical, order-independent identity of a node pair.
type pairKey struct {
	lo, hi string
}

// keyOf normalizes (a, b) so both orderings address the same entry.
func keyOf(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}

	return pairKey{lo: a, hi: b}
}

// entry is one cached computation. The Once guarantees the search function
// runs at most once per pair regardless of concurrent callers; done flips
// under the cache mutex once the result is in place, so Get never observes
// a half-filled entry.
type entry struct {
	once sync.Once
	path graph.Path
	err  error
	done bool
}

// Cache maps unordered node pairs to their optimal paths for the duration
// of a single route-computation request.
//
// The zero value is not usable; construct with New.
type Cache struct {
	mu      sync.Mutex
	entries map[pairKey]*entry
}

// New returns an empty Cache.
func New() *Cache {
	return &Cache{entries: make(map[pairKey]*entry)}
}

// Get returns the cached path oriented a→b, checking both orderings of the
// pair. The boolean reports presence; an entry whose computation is still
// in flight (or ended in an error) reads as absent.
//
// Complexity: O(1) lookup, O(n) when the stored orientation must be
// reversed (the returned path is always a safe copy in that case).
func (c *Cache) Get(a, b string) (graph.Path, bool) {
	c.mu.Lock()
	e, ok := c.entries[keyOf(a, b)]
	if !ok || !e.done || e.err != nil {
		c.mu.Unlock()

		return graph.Path{}, false
	}
	p := e.path
	c.mu.Unlock()

	return orient(p, a), true
}

// Put inserts the path for pair (a, b) if absent. Re-insertion for an
// existing pair is a no-op: entries are final within a request, so the
// first path wins and later calls are ignored.
//
// Complexity: O(1).
func (c *Cache) Put(a, b string, p graph.Path) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := keyOf(a, b)
	if _, ok := c.entries[key]; ok {
		return
	}
	e := &entry{path: p, done: true}
	e.once.Do(func() {}) // burn the once so GetOrCompute won't recompute
	c.entries[key] = e
}

// GetOrCompute returns the path for pair (a, b), invoking search to fill
// the entry on first request. The search function runs at most once per
// unordered pair: concurrent callers for the same key block on its Once,
// callers for different keys proceed independently.
//
// A failed computation is cached too: retrying cannot change the outcome
// on an immutable graph, so the first error is final for the request.
func (c *Cache) GetOrCompute(a, b string, search SearchFunc) (graph.Path, error) {
	c.mu.Lock()
	key := keyOf(a, b)
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.path, e.err = search(key.lo, key.hi)
		c.mu.Lock()
		e.done = true
		c.mu.Unlock()
	})
	if e.err != nil {
		return graph.Path{}, e.err
	}

	return orient(e.path, a), nil
}

// Len returns the number of cached pairs, failed computations included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// orient returns p walked so that it starts at from, reversing the stored
// copy when the pair was cached in the opposite orientation.
func orient(p graph.Path, from string) graph.Path {
	if p.Start() == from {
		return p
	}

	return p.Reverse()
}
