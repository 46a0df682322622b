package tour

import (
	"errors"
	"fmt"

	"github.com/skylinepath/skyroute/graph"
)

// Solve computes a closed tour over the reduced graph rg, anchored at
// start.
//
// Contract:
//   - rg must be non-nil and complete over its node set (the reducer's
//     output always is); a missing edge surfaces as ErrIncompleteGraph.
//   - start must be one of rg's nodes (ErrStartNotFound).
//   - Zero nodes ⇒ ErrEmptyCriticalSet; exactly one node ⇒ the trivial
//     Tour{[start], 0}.
//
// The returned Tour is closed (Nodes[0] == Nodes[len-1] == start for two or
// more critical nodes) and its Cost is re-summed edge by edge along the
// final cycle, so the expander reproduces it exactly.
//
// Complexity: Exact O((k−1)!) permutation costs of O(k) each, shardable
// via WithWorkers; Greedy O(k²), plus O(k²) per 2-opt pass when enabled.
func Solve(rg *graph.Graph, start string, opts ...Option) (Tour, error) {
	if rg == nil {
		return Tour{}, ErrNilGraph
	}

	cfg := Options{Strategy: Exact, Workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	ids := rg.NodeIDs()
	if len(ids) == 0 {
		return Tour{}, ErrEmptyCriticalSet
	}
	if !rg.HasNode(start) {
		return Tour{}, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if len(ids) == 1 {
		return Tour{Nodes: []string{start}, Cost: 0}, nil
	}

	inst, err := newInstance(rg, start, ids)
	if err != nil {
		return Tour{}, err
	}

	var order []int // visiting order as instance indices, anchor excluded
	switch cfg.Strategy {
	case Exact:
		order, err = solveExact(inst, cfg.Workers)
	case Greedy:
		order, err = solveGreedy(inst)
		if err == nil && cfg.TwoOpt {
			order = twoOpt(inst, order)
		}
	default:
		return Tour{}, fmt.Errorf("%w: %v", ErrUnsupportedStrategy, cfg.Strategy)
	}
	if err != nil {
		return Tour{}, err
	}

	return inst.tour(order)
}

// instance is a dense snapshot of one solve: node IDs indexed 0..k-1 with
// the anchor at index 0, and the full weight matrix. Both solvers work on
// indices; IDs only reappear in the final Tour.
type instance struct {
	ids []string // ids[0] is the anchor; the rest keep sorted ID order
	w   [][]float64
}

// newInstance indexes the reduced graph and materializes its weight
// matrix. A missing off-diagonal entry means the reduction is broken and
// maps to ErrIncompleteGraph.
//
// Complexity: O(k²).
func newInstance(rg *graph.Graph, start string, sortedIDs []string) (*instance, error) {
	ids := make([]string, 0, len(sortedIDs))
	ids = append(ids, start)
	for _, id := range sortedIDs {
		if id != start {
			ids = append(ids, id)
		}
	}

	k := len(ids)
	w := make([][]float64, k)
	for i := range w {
		w[i] = make([]float64, k)
		for j := range w[i] {
			if i == j {
				continue
			}
			wt, err := rg.Weight(ids[i], ids[j])
			if err != nil {
				if errors.Is(err, graph.ErrEdgeNotFound) {
					return nil, fmt.Errorf("%w: missing %s–%s", ErrIncompleteGraph, ids[i], ids[j])
				}

				return nil, err
			}
			w[i][j] = wt
		}
	}

	return &instance{ids: ids, w: w}, nil
}

// cycleCost sums the closed-cycle cost anchor → order… → anchor.
// The summation order is fixed (cycle order), which is what lets the
// expander reproduce the cost exactly.
func (in *instance) cycleCost(order []int) float64 {
	cost := 0.0
	at := 0
	for _, next := range order {
		cost += in.w[at][next]
		at = next
	}
	cost += in.w[at][0]

	return cost
}

// tour converts a visiting order into the exported closed Tour.
func (in *instance) tour(order []int) (Tour, error) {
	nodes := make([]string, 0, len(order)+2)
	nodes = append(nodes, in.ids[0])
	for _, idx := range order {
		nodes = append(nodes, in.ids[idx])
	}
	nodes = append(nodes, in.ids[0])

	return Tour{Nodes: nodes, Cost: in.cycleCost(order)}, nil
}
