package catalogue

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// StopID is the handle of a stop; it is also its routing graph vertex id
type StopID int

// BusID is the handle of a bus
type BusID int

// RouteType is the shape of a bus route
type RouteType int

const (
	// Loop routes are traversed once in listed order
	Loop RouteType = iota
	// ThereAndBack routes are traversed forward and then back in reverse
	ThereAndBack
)

func (t RouteType) String() string {
	switch t {
	case Loop:
		return "Loop"
	case ThereAndBack:
		return "ThereAndBack"
	}
	return "Unknown"
}

// Stop is a named point of the network
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Key returns the stop name
func (s Stop) Key() string { return s.Name }

// Stub reports whether the stop was referenced but never defined
func (s Stop) Stub() bool { return !s.Coordinates.Present() }

// Bus is a named route over an ordered list of stops
type Bus struct {
	Name  string
	Type  RouteType
	Route []StopID
}

// Key returns the bus name
func (b Bus) Key() string { return b.Name }

// StopPair is the key of a directed road distance
type StopPair struct {
	From StopID
	To   StopID
}
