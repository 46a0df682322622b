package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/paulmach/orb/geojson"

	"github.com/skylinepath/skyroute/astar"
	"github.com/skylinepath/skyroute/graph"
	"github.com/skylinepath/skyroute/render"
	"github.com/skylinepath/skyroute/route"
	"github.com/skylinepath/skyroute/tour"
)

// Handler serves route computations over a building graph loaded at
// startup. The graph is never mutated after construction, so one Handler
// is safe for concurrent requests.
type Handler struct {
	g        *graph.Graph
	strategy tour.Strategy
	workers  int
}

// NewHandler wraps a built building graph with the server's defaults.
func NewHandler(g *graph.Graph, defaultStrategy tour.Strategy, workers int) *Handler {
	return &Handler{g: g, strategy: defaultStrategy, workers: workers}
}

// RegisterRoutes mounts the endpoints on router.
func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/routes", h.ComputeRoute).Methods("POST")
	router.HandleFunc("/graph", h.GetGraph).Methods("GET")
	router.HandleFunc("/health", h.GetHealth).Methods("GET")
}

// Router returns a mux router with all endpoints mounted.
func (h *Handler) Router() *mux.Router {
	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router
}

// RouteRequest is the POST /routes body.
type RouteRequest struct {
	// Start anchors the tour; required.
	Start string `json:"start"`

	// Stops optionally narrows the visit set; empty means every critical
	// node of the building.
	Stops []string `json:"stops,omitempty"`

	// Strategy overrides the server default when non-empty.
	Strategy string `json:"strategy,omitempty"`

	// TwoOpt asks for the greedy polish pass.
	TwoOpt bool `json:"two_opt,omitempty"`
}

// RouteResponse is the POST /routes reply.
type RouteResponse struct {
	Nodes    []string         `json:"nodes"`
	Cost     float64          `json:"cost"`
	Seconds  float64          `json:"estimated_seconds"`
	Strategy string           `json:"strategy"`
	GeoJSON  *geojson.Feature `json:"geojson"`
}

// ComputeRoute runs the full pipeline for one request.
func (h *Handler) ComputeRoute(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Start == "" {
		writeError(w, http.StatusBadRequest, "start is required")
		return
	}

	strategy := h.strategy
	if req.Strategy != "" {
		var err error
		if strategy, err = tour.ParseStrategy(req.Strategy); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	opts := []route.Option{
		route.WithStrategy(strategy),
		route.WithWorkers(h.workers),
	}
	if len(req.Stops) > 0 {
		opts = append(opts, route.WithStops(req.Stops...))
	}
	if req.TwoOpt {
		opts = append(opts, route.WithTwoOpt())
	}

	result, err := route.Compute(h.g, req.Start, opts...)
	if err != nil {
		writeComputeError(w, err)
		return
	}

	feature, err := render.RouteFeature(h.g, result)
	if err != nil {
		log.Printf("render route: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	d, err := route.EstimateDuration(result.Cost, result.Stops, route.DefaultUnitsPerSecond, route.DefaultStopOverhead)
	if err != nil {
		log.Printf("estimate duration: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, RouteResponse{
		Nodes:    result.Nodes,
		Cost:     result.Cost,
		Seconds:  d.Seconds(),
		Strategy: strategy.String(),
		GeoJSON:  feature,
	})
}

// GetGraph returns the building graph as GeoJSON.
func (h *Handler) GetGraph(w http.ResponseWriter, r *http.Request) {
	fc, err := render.GraphCollection(h.g)
	if err != nil {
		log.Printf("render graph: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, fc)
}

// GetHealth reports liveness and the loaded graph's size.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"nodes":  h.g.NodeCount(),
		"edges":  h.g.EdgeCount(),
	})
}

// writeComputeError maps pipeline failures onto HTTP statuses: unknown
// nodes are the client's 404, infeasible buildings a 422, bad parameters
// a 400, the rest a logged 500.
func writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, graph.ErrUnknownNode):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, astar.ErrUnreachable):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, tour.ErrEmptyCriticalSet),
		errors.Is(err, tour.ErrUnsupportedStrategy):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("compute route: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
