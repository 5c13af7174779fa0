// Package formatter builds stat responses and serializes them.
//
// This package is organized into:
// - wrapper.go: response types and constructors from catalogue and routing results
// - json.go: JSON serialization
package formatter
