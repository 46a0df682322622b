package tour

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGraph indicates a nil reduced graph.
	ErrNilGraph = errors.New("tour: reduced graph is nil")

	// ErrEmptyCriticalSet indicates a reduced graph with zero nodes;
	// there is nothing to visit and no meaningful tour to return.
	ErrEmptyCriticalSet = errors.New("tour: empty critical set")

	// ErrStartNotFound indicates the anchor node is not part of the
	// reduced graph.
	ErrStartNotFound = errors.New("tour: start node not in reduced graph")

	// ErrIncompleteGraph indicates a missing edge in the reduced graph;
	// a correctly built reduction is always complete, so this signals a
	// malformed input rather than an infeasible instance.
	ErrIncompleteGraph = errors.New("tour: reduced graph is not complete")

	// ErrUnsupportedStrategy indicates an unknown Strategy value.
	ErrUnsupportedStrategy = errors.New("tour: unsupported strategy")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("tour: worker count must be positive")
)

// Strategy selects the solving algorithm.
type Strategy int

const (
	// Exact enumerates every permutation and returns the optimum.
	Exact Strategy = iota

	// Greedy extends the tour to the nearest unvisited node each step.
	Greedy
)

// String returns the lowercase name of the strategy.
func (s Strategy) String() string {
	switch s {
	case Exact:
		return "exact"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps a case-insensitive name to its Strategy.
// Returns ErrUnsupportedStrategy for anything else.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "exact":
		return Exact, nil
	case "greedy":
		return Greedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedStrategy, name)
	}
}

// Tour is a closed cycle over the reduced graph: Nodes starts and ends at
// the anchor (except the single-node degenerate case), and Cost is the sum
// of reduced-graph edge weights along it.
type Tour struct {
	Nodes []string
	Cost  float64
}

// Options configures a single Solve call.
type Options struct {
	// Strategy picks the algorithm; Exact is the default.
	Strategy Strategy

	// Workers shards Exact's permutation branches. 1 keeps it serial.
	// Greedy ignores it.
	Workers int

	// TwoOpt enables the local-search polish after Greedy.
	TwoOpt bool
}

// Option is a functional option for Solve.
type Option func(*Options)

// WithStrategy selects the solving algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithWorkers shards Exact's top-level permutation branches across n
// goroutines. n must be positive; invalid values panic early, treating
// option misuse as a programming error.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// WithTwoOpt enables a deterministic 2-opt refinement pass on the Greedy
// tour. Exact tours are already optimal and skip it.
func WithTwoOpt() Option {
	return func(o *Options) { o.TwoOpt = true }
}
