package graph

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/skylinepath/skyroute/euclid"
)

// AddNode inserts a new node with the given ID, position, and critical flag.
// Returns ErrEmptyNodeID for an empty ID and ErrDuplicateNode if the ID
// already exists.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, at euclid.Point, critical bool) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, id)
	}
	g.nodes[id] = Node{ID: id, At: at, Critical: critical}
	g.adjacency[id] = make(map[string]float64)

	return nil
}

// AddEdge connects nodes a and b with an undirected edge of the given
// non-negative weight.
//
// Returns ErrEmptyNodeID, ErrUnknownNode (either endpoint absent),
// ErrNegativeWeight, ErrLoopNotAllowed (a == b), or ErrDuplicateEdge
// (second declaration for the same unordered pair).
//
// Complexity: O(1).
func (g *Graph) AddEdge(a, b string, weight float64) error {
	if a == "" || b == "" {
		return ErrEmptyNodeID
	}
	if a == b {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s–%s weight=%v", ErrNegativeWeight, a, b, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[a]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}
	if _, ok := g.adjacency[a][b]; ok {
		return fmt.Errorf("%w: %s–%s", ErrDuplicateEdge, a, b)
	}

	// Mirror both directions so Neighbors is a single map read.
	g.adjacency[a][b] = weight
	g.adjacency[b][a] = weight
	g.edgeCount++

	return nil
}

// Node returns the node with the given ID and whether it exists.
//
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether a node with the given ID exists.
//
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// HasEdge reports whether an edge connects a and b.
//
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Weight returns the weight of the edge between a and b.
// Returns ErrUnknownNode if either endpoint is absent and ErrEdgeNotFound
// if the nodes exist but are not adjacent.
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[a]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, a)
	}
	if _, ok := g.nodes[b]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, b)
	}
	w, ok := g.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %s–%s", ErrEdgeNotFound, a, b)
	}

	return w, nil
}

// Neighbors returns the adjacency of node id as (neighbor, weight) pairs,
// sorted by neighbor ID for deterministic iteration.
// Returns ErrUnknownNode if the node does not exist.
//
// The returned slice is freshly allocated; callers may range over it any
// number of times or retain it without aliasing graph internals.
//
// Complexity: O(d log d), where d is the node's degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	out := make([]Neighbor, 0, len(g.adjacency[id]))
	for to, w := range g.adjacency[id] {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	slices.SortFunc(out, func(x, y Neighbor) int {
		switch {
		case x.ID < y.ID:
			return -1
		case x.ID > y.ID:
			return 1
		default:
			return 0
		}
	})

	return out, nil
}

// Degree returns the number of edges incident to node id.
// Returns ErrUnknownNode if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNode, id)
	}

	return len(g.adjacency[id]), nil
}

// NodeIDs returns all node IDs in lexicographic order.
//
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// CriticalIDs returns the IDs of all critical (must-visit) nodes in
// lexicographic order.
//
// Complexity: O(V log V).
func (g *Graph) CriticalIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.Critical {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	return ids
}

// NodeCount returns the total number of nodes.
//
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the total number of (undirected) edges.
//
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
