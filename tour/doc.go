// Package tour solves the Traveling-Salesman instance posed by a reduced
// complete graph over critical nodes.
//
// A Tour is a closed cycle: it starts at the caller's anchor node, visits
// every other critical node exactly once, and returns to the anchor (for a
// single critical node the tour degenerates to that node alone, cost 0).
// The closed-cycle contract holds across every strategy and is what the
// route expander assumes when splicing cached paths.
//
// Two strategies are offered, selected via WithStrategy:
//
//   - Exact: brute-force enumeration of all permutations of the non-anchor
//     nodes, generated iteratively (Heap's algorithm, no recursion) and
//     grouped by first hop so that serial and WithWorkers-sharded runs share
//     one deterministic generation order. The first permutation achieving
//     the minimum wins. Factorial cost: keep the critical count at or below
//     roughly a dozen nodes; callers above that ceiling should pick Greedy.
//
//   - Greedy: nearest-neighbor extension from the current tail, ties
//     broken by node ID order, then the closing edge back to the anchor.
//     Near-linear in reduced edges, feasible but not necessarily optimal,
//     no backtracking.
//
// WithTwoOpt adds a deterministic first-improvement 2-opt polish after
// Greedy, keeping the anchor fixed; it never worsens the tour and frequently
// repairs the classic nearest-neighbor endgame mistakes.
//
// Whatever the strategy, the returned Cost is re-summed edge by edge along
// the final cycle, so downstream expansion reproduces it exactly.
package tour
