package catalogue

import "errors"

var (
	// ErrConflict is returned when an entity is defined twice
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when a stop, a bus or a route does not exist
	ErrNotFound = errors.New("not found")

	// ErrMissingCoordinates is returned when a stub stop takes part in a
	// geographic computation
	ErrMissingCoordinates = errors.New("stop has no coordinates")
)
