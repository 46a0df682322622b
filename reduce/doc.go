// Package reduce builds the complete graph over a request's critical nodes.
//
// For every unordered pair of distinct critical nodes it obtains the
// shortest path through the full building graph (via the request's path
// cache, computing and storing misses with the search engine) and emits an
// edge whose weight is that path's cost. Given k critical nodes the result
// has exactly k·(k−1)/2 edges; the tour solver then works on this small
// complete instance instead of the full layout.
//
// The reduced graph is derived: it is freshly constructed per request and
// the original graph is never mutated.
//
// Pairwise searches are independent (each reads the immutable original
// graph and fills a distinct cache entry), so WithWorkers(n) may shard
// them across n goroutines. The partition is deterministic, results land
// in pre-assigned slots, and the first error wins, so parallel runs are
// byte-for-byte identical to serial ones.
//
// A single disconnected critical pair makes the whole request infeasible:
// Reduce propagates the engine's ErrUnreachable naming the pair.
package reduce
