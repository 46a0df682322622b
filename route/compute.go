package route

import (
	"errors"

	"golang.org/x/exp/slices"

	"github.com/skylinepath/skyroute/cache"
	"github.com/skylinepath/skyroute/graph"
	"github.com/skylinepath/skyroute/reduce"
	"github.com/skylinepath/skyroute/tour"
)

// ErrNilGraph indicates a nil building graph passed to Compute.
var ErrNilGraph = errors.New("route: graph is nil")

// Options configures one Compute call.
type Options struct {
	// Strategy picks the tour solver; Exact is the default.
	Strategy tour.Strategy

	// Workers shards both the pairwise reduction searches and Exact's
	// permutation branches. 1 keeps the pipeline fully serial.
	Workers int

	// TwoOpt enables the 2-opt polish on Greedy tours.
	TwoOpt bool

	// Stops, when non-empty, overrides the visiting set: only these nodes
	// (plus the start) are toured instead of every critical node.
	Stops []string
}

// Option is a functional option for Compute.
type Option func(*Options)

// WithStrategy selects the tour-solving algorithm.
func WithStrategy(s tour.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers parallelizes the reduction's pairwise searches and Exact's
// permutation branches across n goroutines. Results are identical to the
// serial run. n must be positive (the underlying stages panic otherwise).
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTwoOpt enables the local-search polish on Greedy tours.
func WithTwoOpt() Option {
	return func(o *Options) { o.TwoOpt = true }
}

// WithStops restricts the route to an explicit set of locations instead of
// every critical node in the graph. The start is always included.
func WithStops(ids ...string) Option {
	return func(o *Options) { o.Stops = ids }
}

// Compute is the solve interface: it chains shortest-path reduction, tour
// solving, and expansion into the final Route.
//
// The visiting set defaults to every critical node of g and can be
// narrowed with WithStops; the start node is always part of it, critical
// or not. A fresh path cache is created for the request, threaded through
// reduction and expansion, and discarded with the return.
//
// Errors, first failure wins, no retries:
//   - ErrNilGraph on a nil graph.
//   - graph.ErrUnknownNode if the start or a stop is absent from g.
//   - tour.ErrEmptyCriticalSet if there is nothing to visit (no critical
//     nodes, no stops, and an empty start).
//   - astar.ErrUnreachable if any pair of the visiting set is disconnected;
//     the request fails as a whole rather than producing a partial route.
//
// Complexity: reduction O(k²) A* searches + solver cost (see tour); k is
// the visiting-set size.
func Compute(g *graph.Graph, start string, opts ...Option) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGraph
	}

	cfg := Options{Strategy: tour.Exact, Workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	stops := cfg.Stops
	if len(stops) == 0 {
		stops = g.CriticalIDs()
	}
	if start != "" && !slices.Contains(stops, start) {
		stops = append(slices.Clone(stops), start)
	}
	if len(stops) == 0 {
		return Route{}, tour.ErrEmptyCriticalSet
	}

	c := cache.New()
	rg, err := reduce.Reduce(g, stops, c, reduce.WithWorkers(max(1, cfg.Workers)))
	if err != nil {
		return Route{}, err
	}

	tourOpts := []tour.Option{
		tour.WithStrategy(cfg.Strategy),
		tour.WithWorkers(max(1, cfg.Workers)),
	}
	if cfg.TwoOpt {
		tourOpts = append(tourOpts, tour.WithTwoOpt())
	}
	t, err := tour.Solve(rg, start, tourOpts...)
	if err != nil {
		return Route{}, err
	}

	return Expand(t, c)
}
