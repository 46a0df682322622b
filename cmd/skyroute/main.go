// Command skyroute computes a delivery route over a building layout CSV
// and prints the walk with its estimated duration.
//
// Usage:
//
//	skyroute -layout school.csv -start R101
//	skyroute -layout school.csv -start R101 -stops R102,R201 -strategy greedy -two-opt
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/skylinepath/skyroute/ingest"
	"github.com/skylinepath/skyroute/render"
	"github.com/skylinepath/skyroute/route"
	"github.com/skylinepath/skyroute/tour"
)

func main() {
	var (
		layoutPath = flag.String("layout", "", "building layout CSV (required)")
		start      = flag.String("start", "", "start node (required)")
		stops      = flag.String("stops", "", "comma-separated stops; empty visits every classroom")
		strategy   = flag.String("strategy", "exact", "tour strategy: exact or greedy")
		twoOpt     = flag.Bool("two-opt", false, "polish greedy tours with 2-opt")
		workers    = flag.Int("workers", 1, "parallel workers for the pipeline")
		asGeoJSON  = flag.Bool("geojson", false, "print the route as GeoJSON instead of text")
	)
	flag.Parse()

	if *layoutPath == "" || *start == "" {
		flag.Usage()
		os.Exit(2)
	}

	s, err := tour.ParseStrategy(*strategy)
	if err != nil {
		log.Fatal(err)
	}

	g, err := ingest.LoadFile(*layoutPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := ingest.ConnectAll(g); err != nil {
		log.Fatal(err)
	}

	opts := []route.Option{
		route.WithStrategy(s),
		route.WithWorkers(*workers),
	}
	if *stops != "" {
		opts = append(opts, route.WithStops(strings.Split(*stops, ",")...))
	}
	if *twoOpt {
		opts = append(opts, route.WithTwoOpt())
	}

	r, err := route.Compute(g, *start, opts...)
	if err != nil {
		log.Fatal(err)
	}

	if *asGeoJSON {
		feature, err := render.RouteFeature(g, r)
		if err != nil {
			log.Fatal(err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(feature); err != nil {
			log.Fatal(err)
		}
		return
	}

	d, err := route.EstimateDuration(r.Cost, r.Stops, route.DefaultUnitsPerSecond, route.DefaultStopOverhead)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("route:", strings.Join(r.Nodes, " -> "))
	fmt.Printf("cost: %.2f\n", r.Cost)
	fmt.Println("estimated time:", d.Round(time.Second))
}
