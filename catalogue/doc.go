/*
Package catalogue provides the in-memory transit catalogue: named stops with
coordinates, named bus routes over those stops, and a sparse map of directed
road distances between stops.

# Entity Store

Stops and buses live in a Store, an append-only arena that hands out dense
integer handles (StopID, BusID). Handles are never invalidated and double as
vertex ids for the routing graph. Lookup by name is O(1) on average.

# Forward References

A bus may reference a stop before the stop itself is defined. AddStop with nil
coordinates creates a stub; a later AddStop with coordinates fills it in.
Defining a stop twice with coordinates is a conflict:

	cat := catalogue.New()
	b, _ := cat.AddStop("B", nil)                        // stub
	a, _ := cat.AddStop("A", &geo.Coordinates{Lat: 0, Lng: 0})
	_, _ = cat.AddBus("X", catalogue.Loop, []catalogue.StopID{a, b})
	_, _ = cat.AddStop("B", &geo.Coordinates{Lat: 0, Lng: 1}) // fills the stub
	err := cat.Validate()                                // nil: no stubs left on routes

# Distances

RoadDistance returns only an explicitly recorded directed entry. Distance
falls back to the reverse entry and then to the great-circle distance.
Any geographic computation involving a stub fails with ErrMissingCoordinates.

# Lifecycle

The catalogue is built once and read afterwards. It is not safe for
concurrent mutation; concurrent reads after loading are fine.
*/
package catalogue
