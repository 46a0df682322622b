// Package server exposes route computation over HTTP.
//
// The surface is deliberately thin: three endpoints on a gorilla/mux
// router, JSON in and out, GeoJSON for anything geometric. The building
// graph is loaded once at startup and shared read-only across requests;
// each request runs the full pipeline with its own path cache.
//
//	POST /routes  — compute a delivery route
//	GET  /graph   — the building graph as GeoJSON
//	GET  /health  — liveness plus graph size
package server
