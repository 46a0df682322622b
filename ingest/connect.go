package ingest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/skylinepath/skyroute/euclid"
	"github.com/skylinepath/skyroute/graph"
)

// ErrNoHallway indicates a detached classroom on a floor without any
// hallway node to attach to.
var ErrNoHallway = errors.New("ingest: no hallway on floor for detached classroom")

// JunctionPrefix names the corridor nodes ConnectAll inserts; a classroom
// "R101" gains the junction "T-R101".
const JunctionPrefix = "T-"

// ConnectAll attaches every detached classroom (degree zero, critical) to
// the corridor network of its floor.
//
// The room's two nearest non-critical nodes on the same floor define a
// corridor segment; the room is projected onto it and a junction node
// joins the projection point to both segment ends and to the room. With a
// single corridor node on the floor the room links to it directly.
//
// Classrooms are processed in ID order and nearest-node ties break by ID,
// so repeated runs over equal layouts build equal graphs. Already-attached
// classrooms are left alone.
func ConnectAll(g *graph.Graph) error {
	for _, id := range g.CriticalIDs() {
		deg, err := g.Degree(id)
		if err != nil {
			return err
		}
		if deg > 0 {
			continue
		}
		if err := attach(g, id); err != nil {
			return err
		}
	}
	return nil
}

// attach links one detached classroom to its floor's corridor network.
func attach(g *graph.Graph, id string) error {
	room, _ := g.Node(id)

	hallways := corridorNodes(g, room.At.Z)
	if len(hallways) == 0 {
		return fmt.Errorf("%w: %s (floor %g)", ErrNoHallway, id, room.At.Z)
	}

	// Nearest two by planar distance, ID order on ties.
	sort.SliceStable(hallways, func(i, j int) bool {
		di := euclid.PlanarDist(room.At, hallways[i].At)
		dj := euclid.PlanarDist(room.At, hallways[j].At)
		if di != dj {
			return di < dj
		}
		return hallways[i].ID < hallways[j].ID
	})

	if len(hallways) == 1 {
		h := hallways[0]
		return g.AddEdge(id, h.ID, euclid.Dist(room.At, h.At))
	}

	h1, h2 := hallways[0], hallways[1]
	at := euclid.ProjectOntoSegment(h1.At, h2.At, room.At)
	junction := JunctionPrefix + id

	if err := g.AddNode(junction, at, false); err != nil {
		return err
	}
	if err := g.AddEdge(junction, h1.ID, euclid.Dist(at, h1.At)); err != nil {
		return err
	}
	if err := g.AddEdge(junction, h2.ID, euclid.Dist(at, h2.At)); err != nil {
		return err
	}
	return g.AddEdge(id, junction, euclid.Dist(room.At, at))
}

// corridorNodes returns the non-critical nodes of one floor, ID-sorted
// (NodeIDs already sorts).
func corridorNodes(g *graph.Graph, floor float64) []graph.Node {
	var out []graph.Node
	for _, id := range g.NodeIDs() {
		n, _ := g.Node(id)
		if !n.Critical && n.At.Z == floor {
			out = append(out, n)
		}
	}
	return out
}
