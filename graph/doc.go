// Package graph defines the building graph every other skyroute package
// operates on: immutable-after-construction nodes with 3D coordinates, a
// critical flag partitioning the node set into must-visit and transit-only
// locations, and undirected non-negative-weight edges.
//
// Construction is the only mutation phase. AddNode and AddEdge validate
// their inputs and return sentinel errors; once the ingestion collaborator
// has finished building, the graph is treated as read-only for the lifetime
// of a route computation and may be shared freely across concurrent
// shortest-path workers (reads take an internal RWMutex read lock).
//
// Shape constraints:
//
//   - edges are undirected; at most one edge per unordered node pair
//     (a second declaration is rejected with ErrDuplicateEdge),
//   - no self-loops (ErrLoopNotAllowed),
//   - weights must be non-negative (ErrNegativeWeight),
//   - both endpoints must already exist (ErrUnknownNode).
//
// All query methods return deterministically ordered results: NodeIDs,
// CriticalIDs and Neighbors sort lexicographically by node ID.
//
// The package also declares Path, the ordered walk type produced by the
// search engine and consumed by the cache, reducer, and expander.
package graph
