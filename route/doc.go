// Package route turns an abstract tour back into a concrete walk and hosts
// the single entry point that chains the whole pipeline.
//
// Expand rewrites a tour (a cycle over critical nodes) into a Route over
// the original building graph by splicing in the cached shortest paths
// between consecutive tour nodes, dropping the duplicated junction node at
// each boundary. Because every reduced-graph edge weight was defined as its
// cached path's cost, the route's total cost equals the tour's cost
// exactly, not merely within floating-point tolerance: both are the same
// additions in the same order.
//
// Compute is the solve interface handed to external callers:
//
//	r, err := route.Compute(g, "R101",
//	    route.WithStrategy(tour.Greedy),
//	    route.WithWorkers(4),
//	)
//
// It owns the per-request path cache (created, threaded through reduction
// and expansion, then dropped, never shared across requests), visits every
// critical node by default or an explicit WithStops subset, and always
// includes the start in the visiting set. The pipeline short-circuits on
// the first failure; no stage retries, because every input is deterministic
// and in-memory.
package route
