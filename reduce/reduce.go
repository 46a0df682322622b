package reduce

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/skylinepath/skyroute/astar"
	"github.com/skylinepath/skyroute/cache"
	"github.com/skylinepath/skyroute/graph"
)

// Sentinel errors for reducer input validation.
var (
	// ErrNilGraph indicates a nil original graph.
	ErrNilGraph = errors.New("reduce: graph is nil")

	// ErrNilCache indicates a nil path cache.
	ErrNilCache = errors.New("reduce: cache is nil")

	// ErrBadWorkers indicates a worker count below one.
	ErrBadWorkers = errors.New("reduce: worker count must be positive")
)

// Options configures a single Reduce call.
type Options struct {
	// Workers is the number of goroutines sharding the pairwise searches.
	// 1 (the default) keeps the reduction fully serial.
	Workers int
}

// Option is a functional option for Reduce.
type Option func(*Options)

// WithWorkers shards the pairwise shortest-path searches across n
// goroutines. n must be positive; invalid values panic early, mirroring
// option misuse as a programming error rather than a runtime condition.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		o.Workers = n
	}
}

// pair is one unordered critical-node pair with its deterministic slot.
type pair struct {
	a, b string
}

// Reduce builds the complete reduced graph over criticalIDs.
//
// Every pair's path is obtained through c (computed with astar.ShortestPath
// on a miss); edge weights equal path costs. Duplicate IDs are collapsed.
// Node positions and flags carry over from the original graph so the
// reduced graph is a self-sufficient instance for the tour solver.
//
// Errors:
//   - ErrNilGraph / ErrNilCache on nil inputs.
//   - graph.ErrUnknownNode if a critical ID is absent from g.
//   - astar.ErrUnreachable (wrapped, naming the pair) if any pair is
//     disconnected; the request is infeasible as a whole.
//
// Complexity: O(k²) searches of O((V+E) log V) each, across opts.Workers
// goroutines; cache hits short-circuit repeated pairs.
func Reduce(g *graph.Graph, criticalIDs []string, c *cache.Cache, opts ...Option) (*graph.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if c == nil {
		return nil, ErrNilCache
	}

	cfg := Options{Workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Canonical working set: sorted, deduplicated.
	ids := slices.Clone(criticalIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	rg := graph.New()
	for _, id := range ids {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("%w: critical node %q", graph.ErrUnknownNode, id)
		}
		if err := rg.AddNode(n.ID, n.At, n.Critical); err != nil {
			return nil, err
		}
	}

	// Enumerate the k·(k−1)/2 unordered pairs in deterministic order.
	pairs := make([]pair, 0, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			pairs = append(pairs, pair{a: ids[i], b: ids[j]})
		}
	}

	costs := make([]float64, len(pairs))
	search := func(a, b string) (graph.Path, error) {
		return astar.ShortestPath(g, a, b)
	}

	if err := runPairs(pairs, costs, c, search, cfg.Workers); err != nil {
		return nil, err
	}

	for i, pr := range pairs {
		if err := rg.AddEdge(pr.a, pr.b, costs[i]); err != nil {
			return nil, err
		}
	}

	return rg, nil
}

// runPairs resolves every pair's path cost into its pre-assigned slot,
// serially or across workers. Workers own disjoint contiguous slices of the
// pair list; the first error (by completion, any worker) aborts the result.
func runPairs(pairs []pair, costs []float64, c *cache.Cache, search cache.SearchFunc, workers int) error {
	if workers > len(pairs) {
		workers = len(pairs)
	}
	if workers <= 1 {
		for i, pr := range pairs {
			p, err := c.GetOrCompute(pr.a, pr.b, search)
			if err != nil {
				return fmt.Errorf("reduce: pair %s–%s: %w", pr.a, pr.b, err)
			}
			costs[i] = p.Cost
		}

		return nil
	}

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	chunk := (len(pairs) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(pairs) {
			hi = len(pairs)
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				pr := pairs[i]
				p, err := c.GetOrCompute(pr.a, pr.b, search)
				if err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = fmt.Errorf("reduce: pair %s–%s: %w", pr.a, pr.b, err)
					}
					errMu.Unlock()

					return
				}
				costs[i] = p.Cost
			}
		}(lo, hi)
	}
	wg.Wait()

	return firstErr
}
