package astar

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/skylinepath/skyroute/euclid"
	"github.com/skylinepath/skyroute/graph"
)

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrEmptyEndpoint indicates an empty source or destination ID.
	ErrEmptyEndpoint = errors.New("astar: endpoint node ID is empty")

	// ErrNodeNotFound indicates that the source or destination does not
	// exist in the graph.
	ErrNodeNotFound = errors.New("astar: endpoint not found in graph")

	// ErrUnreachable indicates that no path connects source and destination.
	ErrUnreachable = errors.New("astar: destination unreachable")
)

// ShortestPath returns the minimum-cost path from source to destination.
//
// Preconditions, validated in order:
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be non-empty (ErrEmptyEndpoint).
//  3. Both endpoints must exist in g (ErrNodeNotFound).
//
// If source == destination, the trivial single-node path with cost 0 is
// returned. If the frontier empties before the destination is reached,
// ErrUnreachable is returned.
//
// The search reads the graph and nothing else; it never mutates shared
// state, so any number of calls may run concurrently over one graph.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *graph.Graph, source, destination string) (graph.Path, error) {
	if g == nil {
		return graph.Path{}, ErrNilGraph
	}
	if source == "" || destination == "" {
		return graph.Path{}, ErrEmptyEndpoint
	}
	if !g.HasNode(source) {
		return graph.Path{}, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}
	goal, ok := g.Node(destination)
	if !ok {
		return graph.Path{}, fmt.Errorf("%w: %q", ErrNodeNotFound, destination)
	}

	if source == destination {
		return graph.Path{Nodes: []string{source}, Cost: 0}, nil
	}

	r := &runner{
		g:       g,
		goal:    goal.At,
		target:  destination,
		dist:    map[string]float64{source: 0},
		prev:    make(map[string]string),
		visited: make(map[string]bool),
	}

	return r.run(source)
}

// runner holds the mutable state of a single search. All of it is local to
// one ShortestPath call.
type runner struct {
	g      *graph.Graph
	goal   euclid.Point // destination coordinates, for the heuristic
	target string

	dist    map[string]float64 // best-known accumulated cost per node
	prev    map[string]string  // predecessor on the best path
	visited map[string]bool    // nodes whose cost is final
	pq      frontier
	seq     uint64 // insertion counter for deterministic tie-breaks
}

// heuristic returns the straight-line distance from node id to the goal.
func (r *runner) heuristic(id string) float64 {
	n, _ := r.g.Node(id)

	return euclid.Dist(n.At, r.goal)
}

// run executes the main loop: pop the lowest-f frontier entry, finish when
// the destination surfaces, otherwise relax its neighborhood.
func (r *runner) run(source string) (graph.Path, error) {
	heap.Init(&r.pq)
	r.push(source, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.id

		// Stale entry from lazy decrease-key; the node is already final.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// The heuristic is consistent, so the first expansion of the
		// destination carries its optimal cost.
		if u == r.target {
			return r.reconstruct(source), nil
		}

		if err := r.relax(u); err != nil {
			return graph.Path{}, err
		}
	}

	return graph.Path{}, fmt.Errorf("%w: %s→%s", ErrUnreachable, source, r.target)
}

// relax attempts to improve the accumulated cost of every neighbor of u.
// A neighbor is (re-)enqueued only when a strictly better cost is found.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", u, err)
	}

	base := r.dist[u]
	for _, nb := range neighbors {
		if r.visited[nb.ID] {
			continue
		}
		candidate := base + nb.Weight
		if best, seen := r.dist[nb.ID]; seen && candidate >= best {
			continue
		}
		r.dist[nb.ID] = candidate
		r.prev[nb.ID] = u
		r.push(nb.ID, candidate)
	}

	return nil
}

// push enqueues id with accumulated cost g and priority f = g + h(id).
func (r *runner) push(id string, g float64) {
	r.seq++
	heap.Push(&r.pq, &frontierItem{
		id:  id,
		f:   g + r.heuristic(id),
		seq: r.seq,
	})
}

// reconstruct walks the predecessor chain from the destination back to
// source and returns the forward path with its final cost.
func (r *runner) reconstruct(source string) graph.Path {
	// Count hops first to allocate exactly once.
	hops := 1
	for at := r.target; at != source; at = r.prev[at] {
		hops++
	}

	nodes := make([]string, hops)
	at := r.target
	for i := hops - 1; i >= 0; i-- {
		nodes[i] = at
		at = r.prev[at]
	}

	return graph.Path{Nodes: nodes, Cost: r.dist[r.target]}
}

// frontierItem is one frontier entry: a node, its priority f = g + h, and
// the insertion sequence used to break priority ties deterministically.
type frontierItem struct {
	id  string
	f   float64
	seq uint64
}

// frontier is a min-heap of *frontierItem ordered by (f, seq) ascending.
// Stale duplicates are tolerated and skipped on pop (lazy decrease-key).
type frontier []*frontierItem

func (pq frontier) Len() int { return len(pq) }

func (pq frontier) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

