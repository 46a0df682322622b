package route

import (
	"errors"
	"time"
)

// ErrBadSpeed indicates a non-positive walking speed.
var ErrBadSpeed = errors.New("route: walking speed must be positive")

// Defaults for EstimateDuration, calibrated for a 200×300-unit campus
// floor plan: walking the full diagonal (≈360.55 units) takes about two
// minutes, and each delivery stop costs a fixed overhead.
const (
	// DefaultUnitsPerSecond is the default walking speed in grid units.
	DefaultUnitsPerSecond = 360.55 / 120

	// DefaultStopOverhead is the default time spent at each stop.
	DefaultStopOverhead = 90 * time.Second
)

// EstimateDuration converts a route's total cost into wall-clock time:
// travel at unitsPerSecond plus a fixed perStop overhead for each of the
// stops visited. Pass the Default constants unless the caller has measured
// better numbers.
//
// Returns ErrBadSpeed if unitsPerSecond is zero or negative.
func EstimateDuration(cost float64, stops int, unitsPerSecond float64, perStop time.Duration) (time.Duration, error) {
	if unitsPerSecond <= 0 {
		return 0, ErrBadSpeed
	}
	if stops < 0 {
		stops = 0
	}

	travel := time.Duration(cost / unitsPerSecond * float64(time.Second))

	return travel + time.Duration(stops)*perStop, nil
}
