package tour

// twoOptEps is the minimum improvement a move must deliver. Filtering out
// sub-epsilon deltas keeps the pass from chasing floating-point noise.
const twoOptEps = 1e-12

// twoOpt refines a visiting order with first-improvement 2-opt: it
// repeatedly looks for a pair of cycle edges whose endpoints, when the
// segment between them is reversed, strictly shorten the cycle, applies
// the first such move found and rescans, until a full scan finds none.
//
// The scan order is fixed (i ascending, then j), so the result is
// deterministic. The anchor stays pinned at position 0 of the cycle, and
// since every move strictly improves the cost, the pass terminates and
// never returns a worse order than its input.
//
// Complexity: O(k²) per scan; the number of scans is bounded by the number
// of strictly improving moves.
func twoOpt(in *instance, order []int) []int {
	if len(order) < 3 {
		return order
	}

	// cycle[0] is the anchor; cycle[1..m] the visiting order.
	cycle := make([]int, 0, len(order)+1)
	cycle = append(cycle, 0)
	cycle = append(cycle, order...)
	m := len(cycle)

	succ := func(i int) int { return cycle[(i+1)%m] }

	improved := true
	for improved {
		improved = false
		for i := 0; i < m-1 && !improved; i++ {
			for j := i + 1; j < m; j++ {
				// Skip the pair sharing the wrap-around edge with i==0.
				if i == 0 && j == m-1 {
					continue
				}
				a, b := cycle[i], succ(i)
				c, d := cycle[j], succ(j)

				delta := in.w[a][c] + in.w[b][d] - in.w[a][b] - in.w[c][d]
				if delta < -twoOptEps {
					// Reverse the segment between the two edges.
					for lo, hi := i+1, j; lo < hi; lo, hi = lo+1, hi-1 {
						cycle[lo], cycle[hi] = cycle[hi], cycle[lo]
					}
					improved = true

					break
				}
			}
		}
	}

	return cycle[1:]
}
