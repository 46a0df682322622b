// Package cache stores every shortest path computed during one route
// request, keyed by unordered node pair.
//
// The cache exists for two reasons: the graph reducer must not search the
// same pair twice, and the route expander later needs the exact paths that
// backed the reduced graph's edge weights. Both consumers see one Cache
// value that is created at the start of a request, threaded explicitly
// through the pipeline stages, and discarded when the expander has finished
// with it. Nothing here is global, and a Cache must never be reused across
// requests (the paths are only valid against the graph they were computed
// on).
//
// Entries are insert-once: the underlying graph never changes within a
// request, so a path computed for a pair is final. Put for an existing pair
// is a no-op and GetOrCompute runs its search function at most once per
// unordered pair, even when reducer workers race on the same key (each key
// owns a sync.Once).
package cache
