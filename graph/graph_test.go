package graph_test

import (
	"testing"

	"github.com/skylinepath/skyroute/euclid"
	"github.com/skylinepath/skyroute/graph"
	"github.com/stretchr/testify/require"
)

func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A", euclid.Point{X: 0, Y: 0}, true))
	require.NoError(t, g.AddNode("B", euclid.Point{X: 1, Y: 0}, true))
	require.NoError(t, g.AddNode("C", euclid.Point{X: 1, Y: 1}, false))
	require.NoError(t, g.AddNode("D", euclid.Point{X: 0, Y: 1}, true))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 1))

	return g
}

func TestAddNode_Validation(t *testing.T) {
	g := graph.New()
	require.ErrorIs(t, g.AddNode("", euclid.Point{}, false), graph.ErrEmptyNodeID)

	require.NoError(t, g.AddNode("A", euclid.Point{}, false))
	require.ErrorIs(t, g.AddNode("A", euclid.Point{X: 9}, true), graph.ErrDuplicateNode)

	// Original node untouched by the rejected re-declaration.
	n, ok := g.Node("A")
	require.True(t, ok)
	require.Equal(t, 0.0, n.At.X)
	require.False(t, n.Critical)
}

func TestAddEdge_Validation(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A", euclid.Point{}, false))
	require.NoError(t, g.AddNode("B", euclid.Point{X: 1}, false))

	require.ErrorIs(t, g.AddEdge("", "B", 1), graph.ErrEmptyNodeID)
	require.ErrorIs(t, g.AddEdge("A", "A", 1), graph.ErrLoopNotAllowed)
	require.ErrorIs(t, g.AddEdge("A", "Z", 1), graph.ErrUnknownNode)
	require.ErrorIs(t, g.AddEdge("Z", "B", 1), graph.ErrUnknownNode)
	require.ErrorIs(t, g.AddEdge("A", "B", -0.5), graph.ErrNegativeWeight)

	require.NoError(t, g.AddEdge("A", "B", 1))
	// Both orderings hit the same unordered pair.
	require.ErrorIs(t, g.AddEdge("A", "B", 2), graph.ErrDuplicateEdge)
	require.ErrorIs(t, g.AddEdge("B", "A", 2), graph.ErrDuplicateEdge)
	require.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_ZeroWeightAllowed(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A", euclid.Point{}, false))
	require.NoError(t, g.AddNode("B", euclid.Point{}, false))
	require.NoError(t, g.AddEdge("A", "B", 0))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	require.Equal(t, 0.0, w)
}

func TestNeighbors_SortedAndUndirected(t *testing.T) {
	g := buildSquare(t)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []graph.Neighbor{{ID: "B", Weight: 1}, {ID: "D", Weight: 1}}, nbs)

	// Mirrored adjacency: the edge is visible from both endpoints.
	nbs, err = g.Neighbors("D")
	require.NoError(t, err)
	require.Equal(t, []graph.Neighbor{{ID: "A", Weight: 1}, {ID: "C", Weight: 1}}, nbs)

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestNeighbors_Restartable(t *testing.T) {
	g := buildSquare(t)

	first, err := g.Neighbors("B")
	require.NoError(t, err)
	second, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestWeight_Lookups(t *testing.T) {
	g := buildSquare(t)

	w, err := g.Weight("C", "D")
	require.NoError(t, err)
	require.Equal(t, 1.0, w)

	_, err = g.Weight("A", "C")
	require.ErrorIs(t, err, graph.ErrEdgeNotFound)
	_, err = g.Weight("A", "Z")
	require.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestNodeIDs_CriticalIDs_Sorted(t *testing.T) {
	g := buildSquare(t)

	require.Equal(t, []string{"A", "B", "C", "D"}, g.NodeIDs())
	require.Equal(t, []string{"A", "B", "D"}, g.CriticalIDs())
	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, 4, g.EdgeCount())
}

func TestDegree(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddNode("E", euclid.Point{X: 5}, true))

	d, err := g.Degree("A")
	require.NoError(t, err)
	require.Equal(t, 2, d)

	d, err = g.Degree("E")
	require.NoError(t, err)
	require.Equal(t, 0, d)

	_, err = g.Degree("Z")
	require.ErrorIs(t, err, graph.ErrUnknownNode)
}

func TestPath_ReverseAndAccessors(t *testing.T) {
	p := graph.Path{Nodes: []string{"A", "B", "C"}, Cost: 2}
	require.Equal(t, "A", p.Start())
	require.Equal(t, "C", p.End())
	require.Equal(t, 3, p.Len())

	r := p.Reverse()
	require.Equal(t, []string{"C", "B", "A"}, r.Nodes)
	require.Equal(t, p.Cost, r.Cost)
	// Reverse must not mutate the receiver.
	require.Equal(t, []string{"A", "B", "C"}, p.Nodes)

	empty := graph.Path{}
	require.Equal(t, "", empty.Start())
	require.Equal(t, "", empty.End())
	require.Equal(t, 0, empty.Len())
}
