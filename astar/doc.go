// Package astar implements informed best-first shortest-path search (A*)
// between two nodes of a building graph.
//
// The heuristic is the straight-line 3D Euclidean distance from a candidate
// node to the destination. Because node coordinates are physical positions
// and edge weights are physical distances, the heuristic never exceeds the
// true remaining graph distance (triangle inequality) and is consistent, so
// the first time the destination leaves the frontier its accumulated cost
// is optimal.
//
// Mechanics follow the classic lazy-decrease-key arrangement:
//
//   - the frontier is a container/heap min-heap ordered by f = g + h,
//     with ties broken by insertion sequence (first enqueued wins) so the
//     returned path is deterministic,
//   - a strictly better accumulated cost re-pushes a node; stale heap
//     entries are discarded when popped,
//   - search terminates when the destination is popped (success) or the
//     frontier empties (ErrUnreachable).
//
// ShortestPath has no side effects: all bookkeeping is local to the call,
// and the input graph is only read, so concurrent searches over the same
// graph are safe.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case; typically far less, as the
//     heuristic steers expansion toward the destination.
//   - Space: O(V + E).
package astar
