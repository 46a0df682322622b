package graph

import (
	"errors"
	"sync"

	"github.com/skylinepath/skyroute/euclid"
)

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyNodeID indicates that a node ID was the empty string.
	ErrEmptyNodeID = errors.New("graph: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID that already exists.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrUnknownNode indicates an operation referenced a node that does not exist.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrLoopNotAllowed indicates an attempted self-loop.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge declaration for the same
	// unordered node pair.
	ErrDuplicateEdge = errors.New("graph: duplicate edge")

	// ErrEdgeNotFound indicates a weight lookup for a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Node is a single location in the building.
//
// Nodes are immutable once added: the struct is stored and returned by
// value, so callers cannot alias the graph's internal state.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// At is the node's position; Z carries the floor index.
	At euclid.Point

	// Critical marks a location the final route must visit.
	Critical bool
}

// Neighbor is one adjacency entry: the node on the other side of an edge
// and that edge's weight.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is the undirected, Euclidean-weighted building graph.
//
// A single RWMutex guards both the node catalog and the adjacency map:
// mutation happens only during the construction phase, after which every
// access is a read and the lock degenerates to cheap shared acquisitions.
type Graph struct {
	mu sync.RWMutex

	nodes map[string]Node
	// adjacency[a][b] = weight; mirrored for both endpoints.
	adjacency map[string]map[string]float64
	edgeCount int
}

// New creates an empty Graph.
//
// Complexity: O(1).
func New() *Graph {
	return &Graph{
		nodes:     make(map[string]Node),
		adjacency: make(map[string]map[string]float64),
	}
}
