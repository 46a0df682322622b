// Package skyroute computes delivery routes through multi-floor buildings.
//
// A building is an undirected weighted graph whose nodes carry 3D
// positions (floor as Z) and a critical flag marking delivery stops. The
// pipeline reduces the building to a complete graph over the critical
// nodes via A* shortest paths, solves the travelling tour on it (exact or
// greedy), and expands the tour back into a node-by-node walk.
//
// The subpackages, bottom up:
//
//	euclid/  — 3D points, distances, segment projection
//	graph/   — the building graph and Path primitives
//	astar/   — A* shortest path with Euclidean heuristic
//	cache/   — per-request unordered-pair path cache
//	reduce/  — complete reduced graph over the critical set
//	tour/    — exact and greedy closed-tour solvers, 2-opt polish
//	route/   — tour expansion and the Compute facade
//	ingest/  — CSV layout loading and corridor attachment
//	render/  — GeoJSON export of graphs and routes
//	server/  — HTTP surface over a loaded building
//
// Most callers want route.Compute:
//
//	g, _ := ingest.LoadFile("school.csv")
//	_ = ingest.ConnectAll(g)
//	r, err := route.Compute(g, "R101", route.WithStrategy(tour.Greedy))
package skyroute
