package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/skylinepath/skyroute/euclid"
	"github.com/skylinepath/skyroute/graph"
)

// Sentinel errors for layout parsing.
var (
	// ErrBadHeader indicates a first row other than the expected
	// `type,name,floor,x,y,neighbors`.
	ErrBadHeader = errors.New("ingest: bad layout header")

	// ErrBadRecord indicates a row with an unparsable field.
	ErrBadRecord = errors.New("ingest: bad layout record")

	// ErrUnknownKind indicates a node type other than classroom or hallway.
	ErrUnknownKind = errors.New("ingest: unknown node type")
)

var header = []string{"type", "name", "floor", "x", "y", "neighbors"}

// record is one parsed layout row, held until all nodes exist so neighbor
// references can point forward.
type record struct {
	name      string
	line      int
	neighbors []string
}

// Load parses a CSV layout into a building graph.
//
// Nodes are added in file order; every listed adjacency becomes one
// undirected edge weighted by the straight-line distance between its
// endpoints. Rows may list each other symmetrically; the duplicate is
// ignored. Classrooms are marked critical, hallways are not.
//
// Errors carry the 1-based line number of the offending row; a neighbor
// name with no matching row fails with graph.ErrUnknownNode.
func Load(r io.Reader) (*graph.Graph, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	first, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if len(first) != len(header) {
		return nil, fmt.Errorf("%w: want %d columns, got %d", ErrBadHeader, len(header), len(first))
	}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(first[i]), h) {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, first[i], h)
		}
	}

	g := graph.New()
	var records []record

	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}

		kind := strings.ToLower(strings.TrimSpace(row[0]))
		var critical bool
		switch kind {
		case "classroom":
			critical = true
		case "hallway":
			critical = false
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrUnknownKind, line, row[0])
		}

		name := strings.TrimSpace(row[1])
		floor, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: floor %q", ErrBadRecord, line, row[2])
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(row[3]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: x %q", ErrBadRecord, line, row[3])
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(row[4]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: y %q", ErrBadRecord, line, row[4])
		}

		at := euclid.Point{X: x, Y: y, Z: float64(floor)}
		if err := g.AddNode(name, at, critical); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var neighbors []string
		for _, n := range strings.Split(row[5], ";") {
			if n = strings.TrimSpace(n); n != "" {
				neighbors = append(neighbors, n)
			}
		}
		records = append(records, record{name: name, line: line, neighbors: neighbors})
	}

	// Second pass: all names resolvable now.
	for _, rec := range records {
		from, _ := g.Node(rec.name)
		for _, n := range rec.neighbors {
			to, ok := g.Node(n)
			if !ok {
				return nil, fmt.Errorf("line %d: neighbor %q: %w", rec.line, n, graph.ErrUnknownNode)
			}
			if g.HasEdge(rec.name, n) {
				continue // symmetric listing
			}
			if err := g.AddEdge(rec.name, n, euclid.Dist(from.At, to.At)); err != nil {
				return nil, fmt.Errorf("line %d: %w", rec.line, err)
			}
		}
	}

	return g, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}
	defer f.Close()

	return Load(f)
}
