package euclid

import "math"

// Point is a position in building-local 3D space.
// X and Y are floor-plan coordinates; Z is the floor index.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Dist returns the straight-line (Euclidean) distance between a and b.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	dz := a.Z - b.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PlanarDist returns the Euclidean distance between a and b ignoring the
// floor component. Used when linking a detached room to hallway nodes that
// are known to share its floor.
//
// Complexity: O(1).
func PlanarDist(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// ProjectOntoSegment returns the orthogonal projection of pt onto the
// segment p→q, clamped to the segment. If the perpendicular foot falls
// outside the segment, the nearest endpoint is returned. The projection is
// planar: the result keeps pt's floor (Z) untouched on the assumption that
// p, q and pt lie on the same floor.
//
// Degenerate segments (p == q in the plane) project onto p.
//
// Complexity: O(1).
func ProjectOntoSegment(p, q, pt Point) Point {
	vx := q.X - p.X
	vy := q.Y - p.Y

	segLenSq := vx*vx + vy*vy
	if segLenSq == 0 {
		return Point{X: p.X, Y: p.Y, Z: pt.Z}
	}

	// Parameter of the perpendicular foot along p→q, clamped to [0,1].
	t := ((pt.X-p.X)*vx + (pt.Y-p.Y)*vy) / segLenSq
	t = math.Max(0, math.Min(1, t))

	return Point{
		X: p.X + t*vx,
		Y: p.Y + t*vy,
		Z: pt.Z,
	}
}
