package tour

import "math"

// solveGreedy builds the visiting order by repeatedly hopping to the
// nearest unvisited node from the current tail. Candidates are scanned in
// ascending instance index, which is ascending node ID order, and only a
// strictly smaller weight displaces the incumbent, so equal-distance ties
// resolve to the lowest ID deterministically. Choices are never revisited;
// the closing edge back to the anchor is implicit in the cycle cost.
//
// Complexity: O(k²) time, O(k) space.
func solveGreedy(in *instance) ([]int, error) {
	k := len(in.ids)
	order := make([]int, 0, k-1)
	visited := make([]bool, k)
	visited[0] = true

	at := 0
	for len(order) < k-1 {
		nearest := -1
		nearestW := math.Inf(1)
		for idx := 1; idx < k; idx++ {
			if visited[idx] {
				continue
			}
			if w := in.w[at][idx]; w < nearestW {
				nearest = idx
				nearestW = w
			}
		}
		visited[nearest] = true
		order = append(order, nearest)
		at = nearest
	}

	return order, nil
}
