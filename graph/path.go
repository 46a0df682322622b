package graph

// Path is an ordered walk from Start to End over the original graph, where
// each consecutive node pair is connected by an edge, plus the total cost
// (sum of traversed edge weights).
//
// A Path is a value: Reverse returns a new Path and never mutates the
// receiver, so the same instance can be cached and handed to multiple
// consumers.
type Path struct {
	// Nodes holds the node IDs in walk order, endpoints included.
	Nodes []string

	// Cost is the sum of traversed edge weights.
	Cost float64
}

// Start returns the first node of the path, or "" for an empty path.
func (p Path) Start() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[0]
}

// End returns the last node of the path, or "" for an empty path.
func (p Path) End() string {
	if len(p.Nodes) == 0 {
		return ""
	}

	return p.Nodes[len(p.Nodes)-1]
}

// Len returns the number of nodes on the path.
func (p Path) Len() int { return len(p.Nodes) }

// Reverse returns a copy of the path walked End→Start. The cost is
// unchanged: the graph is undirected, so a path and its reversal describe
// the same walk.
//
// Complexity: O(n).
func (p Path) Reverse() Path {
	rev := make([]string, len(p.Nodes))
	for i, id := range p.Nodes {
		rev[len(p.Nodes)-1-i] = id
	}

	return Path{Nodes: rev, Cost: p.Cost}
}
