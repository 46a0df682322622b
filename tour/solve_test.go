package tour_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/skylinepath/skyroute/euclid"
	"github.com/skylinepath/skyroute/graph"
	"github.com/skylinepath/skyroute/tour"
	"github.com/stretchr/testify/require"
)

// complete builds a reduced-style complete graph from an explicit weight
// table. Keys are "A|B" with A < B.
func complete(t *testing.T, ids []string, w map[string]float64) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, id := range ids {
		require.NoError(t, g.AddNode(id, euclid.Point{}, true))
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := ids[i], ids[j]
			if b < a {
				a, b = b, a
			}
			wt, ok := w[a+"|"+b]
			require.True(t, ok, "missing weight %s|%s", a, b)
			require.NoError(t, g.AddEdge(ids[i], ids[j], wt))
		}
	}

	return g
}

// diamond is a 4-cycle with expensive diagonals whose
// unique optimum closed tour is A-B-C-D-A at cost 4.
func diamond(t *testing.T) *graph.Graph {
	t.Helper()

	return complete(t, []string{"A", "B", "C", "D"}, map[string]float64{
		"A|B": 1, "B|C": 1, "C|D": 1, "A|D": 1, "A|C": 2, "B|D": 2,
	})
}

// exhaustiveBest returns the optimal closed-cycle cost by trying every
// permutation recursively. Test-side oracle, small k only.
func exhaustiveBest(t *testing.T, g *graph.Graph, start string) float64 {
	t.Helper()
	rest := []string{}
	for _, id := range g.NodeIDs() {
		if id != start {
			rest = append(rest, id)
		}
	}

	best := math.Inf(1)
	var rec func(at string, remaining []string, cost float64)
	rec = func(at string, remaining []string, cost float64) {
		if len(remaining) == 0 {
			back, err := g.Weight(at, start)
			require.NoError(t, err)
			if cost+back < best {
				best = cost + back
			}

			return
		}
		for i, next := range remaining {
			w, err := g.Weight(at, next)
			require.NoError(t, err)
			rem := append(append([]string{}, remaining[:i]...), remaining[i+1:]...)
			rec(next, rem, cost+w)
		}
	}
	rec(start, rest, 0)

	return best
}

func TestSolve_Validation(t *testing.T) {
	_, err := tour.Solve(nil, "A")
	require.ErrorIs(t, err, tour.ErrNilGraph)

	_, err = tour.Solve(graph.New(), "A")
	require.ErrorIs(t, err, tour.ErrEmptyCriticalSet)

	g := diamond(t)
	_, err = tour.Solve(g, "Z")
	require.ErrorIs(t, err, tour.ErrStartNotFound)

	_, err = tour.Solve(g, "A", tour.WithStrategy(tour.Strategy(99)))
	require.ErrorIs(t, err, tour.ErrUnsupportedStrategy)

	require.Panics(t, func() { tour.WithWorkers(0) })
}

func TestSolve_IncompleteReduction(t *testing.T) {
	g := graph.New()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddNode(id, euclid.Point{}, true))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	// A–C missing: not a complete reduction.

	_, err := tour.Solve(g, "A")
	require.ErrorIs(t, err, tour.ErrIncompleteGraph)
}

func TestSolve_SingleNode(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A", euclid.Point{}, true))

	for _, s := range []tour.Strategy{tour.Exact, tour.Greedy} {
		got, err := tour.Solve(g, "A", tour.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, []string{"A"}, got.Nodes)
		require.Equal(t, 0.0, got.Cost)
	}
}

func TestSolve_TwoNodes(t *testing.T) {
	g := complete(t, []string{"A", "B"}, map[string]float64{"A|B": 3})

	for _, s := range []tour.Strategy{tour.Exact, tour.Greedy} {
		got, err := tour.Solve(g, "A", tour.WithStrategy(s))
		require.NoError(t, err)
		require.Equal(t, []string{"A", "B", "A"}, got.Nodes)
		require.Equal(t, 6.0, got.Cost)
	}
}

func TestSolve_DiamondScenario(t *testing.T) {
	g := diamond(t)

	exact, err := tour.Solve(g, "A", tour.WithStrategy(tour.Exact))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, exact.Nodes)
	require.Equal(t, 4.0, exact.Cost)

	greedy, err := tour.Solve(g, "A", tour.WithStrategy(tour.Greedy))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, greedy.Nodes)
	require.Equal(t, 4.0, greedy.Cost)
}

func TestSolve_ExactIsOptimal(t *testing.T) {
	// Random complete instances up to 8 nodes, checked against the
	// exhaustive oracle. Fixed seed for reproducibility.
	rng := rand.New(rand.NewSource(7))

	for k := 3; k <= 8; k++ {
		ids := make([]string, k)
		for i := range ids {
			ids[i] = fmt.Sprintf("N%02d", i)
		}
		w := make(map[string]float64)
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				w[ids[i]+"|"+ids[j]] = 1 + rng.Float64()*9
			}
		}
		g := complete(t, ids, w)

		got, err := tour.Solve(g, ids[0], tour.WithStrategy(tour.Exact))
		require.NoError(t, err)
		require.Equal(t, exhaustiveBest(t, g, ids[0]), got.Cost, "k=%d", k)
	}
}

func TestSolve_ExactParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ids := make([]string, 9)
	for i := range ids {
		ids[i] = fmt.Sprintf("N%02d", i)
	}
	w := make(map[string]float64)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			w[ids[i]+"|"+ids[j]] = 1 + rng.Float64()*9
		}
	}
	g := complete(t, ids, w)

	serial, err := tour.Solve(g, "N00", tour.WithStrategy(tour.Exact))
	require.NoError(t, err)
	parallel, err := tour.Solve(g, "N00", tour.WithStrategy(tour.Exact), tour.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, serial.Nodes, parallel.Nodes)
	require.Equal(t, serial.Cost, parallel.Cost)
}

func TestSolve_ExactDeterministicTieBreak(t *testing.T) {
	// All weights equal: every permutation costs the same, so the first in
	// generation order (ascending ID order) must win.
	g := complete(t, []string{"A", "B", "C", "D"}, map[string]float64{
		"A|B": 1, "A|C": 1, "A|D": 1, "B|C": 1, "B|D": 1, "C|D": 1,
	})

	got, err := tour.Solve(g, "A", tour.WithStrategy(tour.Exact))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C", "D", "A"}, got.Nodes)
	require.Equal(t, 4.0, got.Cost)
}

func TestSolve_GreedyFeasibleAndBoundedByExact(t *testing.T) {
	rng := rand.New(rand.NewSource(23))

	for trial := 0; trial < 10; trial++ {
		k := 4 + rng.Intn(4)
		ids := make([]string, k)
		for i := range ids {
			ids[i] = fmt.Sprintf("N%02d", i)
		}
		w := make(map[string]float64)
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				w[ids[i]+"|"+ids[j]] = 1 + rng.Float64()*9
			}
		}
		g := complete(t, ids, w)

		greedy, err := tour.Solve(g, ids[0], tour.WithStrategy(tour.Greedy))
		require.NoError(t, err)
		exact, err := tour.Solve(g, ids[0], tour.WithStrategy(tour.Exact))
		require.NoError(t, err)

		// Closed cycle visiting every node exactly once.
		require.Len(t, greedy.Nodes, k+1)
		require.Equal(t, ids[0], greedy.Nodes[0])
		require.Equal(t, ids[0], greedy.Nodes[k])
		seen := map[string]int{}
		for _, id := range greedy.Nodes[:k] {
			seen[id]++
		}
		for _, id := range ids {
			require.Equal(t, 1, seen[id], "trial %d: %s visited once", trial, id)
		}

		require.GreaterOrEqual(t, greedy.Cost, exact.Cost, "trial %d", trial)
	}
}

func TestSolve_GreedyTieBreakByID(t *testing.T) {
	// B and D are equally near A; the lower ID must be chosen first.
	g := complete(t, []string{"A", "B", "D"}, map[string]float64{
		"A|B": 2, "A|D": 2, "B|D": 1,
	})

	got, err := tour.Solve(g, "A", tour.WithStrategy(tour.Greedy))
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D", "A"}, got.Nodes)
}

func TestSolve_TwoOptImprovesGreedy(t *testing.T) {
	// Nearest-neighbor from A walks A→B→C and is then stuck paying the
	// expensive C–D edge (total 14); the optimum A→C→B→D→A (10) skips it.
	// One 2-opt move, swapping edges A-B and C-D for A-C and B-D, turns
	// the greedy tour into the optimum.
	g := complete(t, []string{"A", "B", "C", "D"}, map[string]float64{
		"A|B": 1, "B|C": 2, "C|D": 9, "A|D": 2, "A|C": 3, "B|D": 3,
	})

	plain, err := tour.Solve(g, "A", tour.WithStrategy(tour.Greedy))
	require.NoError(t, err)
	polished, err := tour.Solve(g, "A", tour.WithStrategy(tour.Greedy), tour.WithTwoOpt())
	require.NoError(t, err)
	exact, err := tour.Solve(g, "A", tour.WithStrategy(tour.Exact))
	require.NoError(t, err)

	require.Equal(t, 14.0, plain.Cost)
	require.Less(t, polished.Cost, plain.Cost)
	require.Equal(t, exact.Cost, polished.Cost)
	require.Equal(t, "A", polished.Nodes[0])
	require.Equal(t, "A", polished.Nodes[len(polished.Nodes)-1])
}

func TestParseStrategy(t *testing.T) {
	s, err := tour.ParseStrategy("Exact")
	require.NoError(t, err)
	require.Equal(t, tour.Exact, s)

	s, err = tour.ParseStrategy(" greedy ")
	require.NoError(t, err)
	require.Equal(t, tour.Greedy, s)

	_, err = tour.ParseStrategy("simulated-annealing")
	require.ErrorIs(t, err, tour.ErrUnsupportedStrategy)

	require.Equal(t, "exact", tour.Exact.String())
	require.Equal(t, "greedy", tour.Greedy.String())
}

func BenchmarkSolve_Exact9(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	ids := make([]string, 9)
	g := graph.New()
	for i := range ids {
		ids[i] = fmt.Sprintf("N%02d", i)
		if err := g.AddNode(ids[i], euclid.Point{}, true); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := g.AddEdge(ids[i], ids[j], 1+rng.Float64()*9); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tour.Solve(g, ids[0], tour.WithStrategy(tour.Exact)); err != nil {
			b.Fatal(err)
		}
	}
}
