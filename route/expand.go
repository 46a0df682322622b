package route

import (
	"errors"
	"fmt"

	"github.com/skylinepath/skyroute/cache"
	"github.com/skylinepath/skyroute/tour"
)

// Sentinel errors for expansion.
var (
	// ErrEmptyTour indicates a tour with no nodes at all.
	ErrEmptyTour = errors.New("route: empty tour")

	// ErrInconsistentCache indicates a tour edge whose path is missing
	// from the cache. The reducer guarantees every tour edge was backed by
	// a cached path, so hitting this means a pipeline bug, not bad input.
	ErrInconsistentCache = errors.New("route: cached path missing for tour edge")
)

// Route is the final output artifact: an ordered walk over the original
// building graph (every hop a real edge, no gaps) plus its total cost.
//
// Stops is the size of the visiting set the tour covered. It counts each
// destination once; corridor and junction nodes the walk merely passes
// through do not contribute, however often they are traversed.
type Route struct {
	Nodes []string
	Cost  float64
	Stops int
}

// Expand splices the cached shortest paths between consecutive tour nodes
// into one continuous walk. At each boundary the junction node would appear
// twice (as one path's end and the next path's start); the duplicate is
// skipped.
//
// The route cost sums the cached paths' costs in tour order, the same
// float64 additions that produced the tour's cost, so
// Expand(t, c).Cost == t.Cost holds exactly. Stops is taken from the tour
// length, not the expanded walk, so transit nodes never count as
// destinations.
//
// Errors: ErrEmptyTour for a nodeless tour, ErrInconsistentCache (naming
// the pair) if a required path is absent.
//
// Complexity: O(total route length).
func Expand(t tour.Tour, c *cache.Cache) (Route, error) {
	if len(t.Nodes) == 0 {
		return Route{}, ErrEmptyTour
	}
	if len(t.Nodes) == 1 {
		// Degenerate single-stop tour: the walk is standing still.
		return Route{Nodes: []string{t.Nodes[0]}, Cost: 0, Stops: 1}, nil
	}

	nodes := []string{t.Nodes[0]}
	cost := 0.0
	for i := 0; i+1 < len(t.Nodes); i++ {
		u, v := t.Nodes[i], t.Nodes[i+1]
		p, ok := c.Get(u, v)
		if !ok {
			return Route{}, fmt.Errorf("%w: %s–%s", ErrInconsistentCache, u, v)
		}
		// p starts at u; skip it, the walk is already there.
		nodes = append(nodes, p.Nodes[1:]...)
		cost += p.Cost
	}

	// A closed k-stop tour lists k+1 nodes (the anchor twice).
	return Route{Nodes: nodes, Cost: cost, Stops: len(t.Nodes) - 1}, nil
}
