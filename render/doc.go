// Package render exports building graphs and computed routes as GeoJSON.
//
// Layout coordinates map straight onto GeoJSON positions (X, Y); the floor
// travels as a feature property since GeoJSON geometry is two-dimensional.
// Feature order is deterministic: nodes by ID, edges by their lower
// endpoint ID.
package render
