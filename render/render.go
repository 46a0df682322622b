package render

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/skylinepath/skyroute/graph"
	"github.com/skylinepath/skyroute/route"
)

// Sentinel errors for rendering.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("render: graph is nil")

	// ErrEmptyRoute indicates a route without nodes.
	ErrEmptyRoute = errors.New("render: empty route")
)

// GraphCollection renders every node as a Point feature and every edge as
// a LineString feature.
//
// Node properties: "id", "floor", "critical". Edge properties: "from",
// "to", "weight". Each edge appears once, keyed from its lower endpoint.
func GraphCollection(g *graph.Graph) (*geojson.FeatureCollection, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	fc := geojson.NewFeatureCollection()

	ids := g.NodeIDs()
	for _, id := range ids {
		n, _ := g.Node(id)
		f := geojson.NewFeature(orb.Point{n.At.X, n.At.Y})
		f.ID = n.ID
		f.Properties["id"] = n.ID
		f.Properties["floor"] = n.At.Z
		f.Properties["critical"] = n.Critical
		fc.Append(f)
	}

	for _, id := range ids {
		from, _ := g.Node(id)
		neighbors, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if nb.ID < id {
				continue // emitted from the other endpoint
			}
			to, _ := g.Node(nb.ID)
			f := geojson.NewFeature(orb.LineString{
				{from.At.X, from.At.Y},
				{to.At.X, to.At.Y},
			})
			f.Properties["from"] = id
			f.Properties["to"] = nb.ID
			f.Properties["weight"] = nb.Weight
			fc.Append(f)
		}
	}

	return fc, nil
}

// RouteFeature renders a computed route as one LineString following the
// walk node by node. Properties: "cost", "stops" (the node sequence) and
// "floors" (the distinct floors visited, in visit order).
//
// Every route node must exist in g; unknown nodes fail with
// graph.ErrUnknownNode.
func RouteFeature(g *graph.Graph, r route.Route) (*geojson.Feature, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(r.Nodes) == 0 {
		return nil, ErrEmptyRoute
	}

	line := make(orb.LineString, 0, len(r.Nodes))
	var floors []float64
	for _, id := range r.Nodes {
		n, ok := g.Node(id)
		if !ok {
			return nil, fmt.Errorf("route node %q: %w", id, graph.ErrUnknownNode)
		}
		line = append(line, orb.Point{n.At.X, n.At.Y})
		if len(floors) == 0 || floors[len(floors)-1] != n.At.Z {
			floors = append(floors, n.At.Z)
		}
	}

	f := geojson.NewFeature(line)
	f.Properties["cost"] = r.Cost
	f.Properties["stops"] = r.Nodes
	f.Properties["floors"] = floors
	return f, nil
}
