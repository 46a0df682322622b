package tour

import (
	"math"
	"sync"
)

// solveExact enumerates every permutation of the non-anchor nodes and
// returns the visiting order of minimum closed-cycle cost.
//
// Enumeration is branch-major: for each first hop f (ascending instance
// index) all permutations of the remaining nodes are generated with an
// iterative Heap's algorithm. That grouping fixes one global generation
// order (the first permutation achieving the minimum wins) and makes the
// branches independent, so workers > 1 shards them across goroutines and
// merges the per-branch minima in branch order, reproducing the serial
// result exactly.
//
// Complexity: O((k−1)!) permutations, O(k) cost evaluation each (with a
// running-sum cutoff against the branch minimum). Practical ceiling is
// around a dozen critical nodes; larger instances belong to Greedy.
func solveExact(in *instance, workers int) ([]int, error) {
	k := len(in.ids)
	// k == 2: the only cycle is anchor → 1 → anchor.
	if k == 2 {
		return []int{1}, nil
	}

	branches := k - 1 // candidate first hops: indices 1..k-1
	results := make([]branchResult, branches)

	if workers > branches {
		workers = branches
	}
	if workers <= 1 {
		for b := 0; b < branches; b++ {
			results[b] = exploreBranch(in, b+1)
		}
	} else {
		var wg sync.WaitGroup
		next := make(chan int)
		wg.Add(workers)
		for wkr := 0; wkr < workers; wkr++ {
			go func() {
				defer wg.Done()
				for b := range next {
					results[b] = exploreBranch(in, b+1)
				}
			}()
		}
		for b := 0; b < branches; b++ {
			next <- b
		}
		close(next)
		wg.Wait()
	}

	// Merge in branch order with a strict comparison: the earliest branch
	// holding the global minimum supplies the tour.
	best := branchResult{cost: math.Inf(1)}
	for _, r := range results {
		if r.order != nil && r.cost < best.cost {
			best = r
		}
	}

	return best.order, nil
}

// branchResult is the minimum found within one first-hop branch.
type branchResult struct {
	order []int
	cost  float64
}

// exploreBranch fixes first as the tour's first hop and enumerates all
// permutations of the remaining non-anchor nodes via Heap's algorithm
// (iterative, constant auxiliary state, no recursion).
func exploreBranch(in *instance, first int) branchResult {
	k := len(in.ids)

	// Remaining nodes after the anchor and the fixed first hop, ascending.
	rest := make([]int, 0, k-2)
	for idx := 1; idx < k; idx++ {
		if idx != first {
			rest = append(rest, idx)
		}
	}

	best := branchResult{cost: math.Inf(1)}
	consider := func(perm []int) {
		cost, ok := in.branchCost(first, perm, best.cost)
		if !ok {
			return
		}
		best.cost = cost
		best.order = make([]int, 0, len(perm)+1)
		best.order = append(best.order, first)
		best.order = append(best.order, perm...)
	}

	// Heap's algorithm over rest.
	n := len(rest)
	if n == 0 {
		consider(nil)

		return best
	}
	c := make([]int, n)
	consider(rest)
	i := 0
	for i < n {
		if c[i] < i {
			if i%2 == 0 {
				rest[0], rest[i] = rest[i], rest[0]
			} else {
				rest[c[i]], rest[i] = rest[i], rest[c[i]]
			}
			consider(rest)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}

	return best
}

// branchCost evaluates anchor → first → perm… → anchor, aborting as soon
// as the running sum reaches limit (a candidate can only win with a
// strictly smaller cost, so equal-or-worse partials are dead).
func (in *instance) branchCost(first int, perm []int, limit float64) (float64, bool) {
	cost := in.w[0][first]
	at := first
	for _, next := range perm {
		cost += in.w[at][next]
		if cost >= limit {
			return 0, false
		}
		at = next
	}
	cost += in.w[at][0]
	if cost >= limit {
		return 0, false
	}

	return cost, true
}
