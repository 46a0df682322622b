// Package ingest builds building graphs from CSV floor-plan layouts.
//
// A layout row is `type,name,floor,x,y,neighbors`: type is "classroom"
// (a delivery stop) or "hallway" (corridor infrastructure), floor becomes
// the node's Z coordinate, and neighbors is a `;`-separated list of node
// names whose edges are weighted by straight-line distance.
//
// Classrooms a layout leaves detached are attached afterwards with
// ConnectAll, which drops a junction node onto the corridor segment
// nearest to the room.
//
// The core packages never parse files; everything entering the pipeline
// goes through this package (or an equivalent builder).
package ingest
