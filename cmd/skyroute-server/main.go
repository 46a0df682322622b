// Command skyroute-server serves route computation over HTTP.
//
// Configuration comes from a YAML file (see server.Config); a .env file in
// the working directory, when present, seeds the environment first. The
// config path defaults to skyroute.yaml and can be overridden with
// -config or SKYROUTE_CONFIG.
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/skylinepath/skyroute/ingest"
	"github.com/skylinepath/skyroute/server"
	"github.com/skylinepath/skyroute/tour"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env: %v", err)
	}

	defaultPath := os.Getenv("SKYROUTE_CONFIG")
	if defaultPath == "" {
		defaultPath = "skyroute.yaml"
	}
	configPath := flag.String("config", defaultPath, "config file path")
	flag.Parse()

	cfg, err := server.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := ingest.LoadFile(cfg.Layout)
	if err != nil {
		log.Fatal(err)
	}
	if err := ingest.ConnectAll(g); err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s: %d nodes, %d edges, %d classrooms",
		cfg.Layout, g.NodeCount(), g.EdgeCount(), len(g.CriticalIDs()))

	strategy, err := tour.ParseStrategy(cfg.Strategy)
	if err != nil {
		log.Fatal(err)
	}

	h := server.NewHandler(g, strategy, cfg.Workers)
	log.Printf("listening on %s", cfg.Listen)
	log.Fatal(http.ListenAndServe(cfg.Listen, h.Router()))
}
