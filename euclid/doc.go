// Package euclid provides the small set of 3D geometric primitives the rest
// of skyroute is built on: points, straight-line distance, and orthogonal
// projection onto a segment.
//
// Points live in a building-local coordinate system: X and Y are floor-plan
// units, Z is the floor index. Straight-line distance over these coordinates
// is what makes the A* heuristic admissible (triangle inequality on physical
// positions), so every distance in the module funnels through Dist.
//
// All functions are pure, deterministic, and allocation-free.
package euclid
