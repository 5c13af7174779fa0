package catalogue

import (
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// TransportCatalogue stores stops, buses and road distances in memory
type TransportCatalogue struct {
	stops     *Store[Stop, StopID]
	buses     *Store[Bus, BusID]
	stopBuses map[StopID]map[BusID]struct{} // stop -> buses serving it
	distances map[StopPair]float64          // (from, to) -> meters
}

// New creates an empty catalogue
func New() *TransportCatalogue {
	return &TransportCatalogue{
		stops:     NewStore[Stop, StopID](),
		buses:     NewStore[Bus, BusID](),
		stopBuses: map[StopID]map[BusID]struct{}{},
		distances: map[StopPair]float64{},
	}
}

// AddStop defines a stop. With nil coordinates it only makes sure the stop
// exists, creating a stub if needed. Coordinates fill a stub in; supplying
// them for a stop that already has coordinates is a conflict.
func (c *TransportCatalogue) AddStop(name string, coords *geo.Coordinates) (StopID, error) {
	if id, ok := c.stops.Lookup(name); ok {
		if coords == nil {
			return id, nil
		}
		stop := c.stops.At(id)
		if !stop.Stub() {
			return id, fmt.Errorf("stop %q already exists: %w", name, ErrConflict)
		}
		stop.Coordinates = *coords
		return id, nil
	}
	stop := Stop{Name: name, Coordinates: geo.Absent}
	if coords != nil {
		stop.Coordinates = *coords
	}
	id := c.stops.Insert(stop)
	c.stopBuses[id] = map[BusID]struct{}{}
	return id, nil
}

// AddBus defines a bus over already known stops
func (c *TransportCatalogue) AddBus(name string, kind RouteType, route []StopID) (BusID, error) {
	if _, ok := c.buses.Lookup(name); ok {
		return 0, fmt.Errorf("bus %q already exists: %w", name, ErrConflict)
	}
	for _, id := range route {
		if c.stops.At(id) == nil {
			return 0, fmt.Errorf("bus %q: stop #%d: %w", name, id, ErrNotFound)
		}
	}
	id := c.buses.Insert(Bus{Name: name, Type: kind, Route: slices.Clone(route)})
	for _, stop := range route {
		c.stopBuses[stop][id] = struct{}{}
	}
	return id, nil
}

// AddDistance records or overwrites the directed road distance from -> to
func (c *TransportCatalogue) AddDistance(from, to StopID, meters float64) {
	c.distances[StopPair{From: from, To: to}] = meters
}

// RoadDistance returns the explicitly recorded distance from -> to
func (c *TransportCatalogue) RoadDistance(from, to StopID) (float64, bool) {
	d, ok := c.distances[StopPair{From: from, To: to}]
	return d, ok
}

// Distance resolves the travel distance from -> to: the directed entry,
// then the reverse entry, then the great-circle distance.
func (c *TransportCatalogue) Distance(from, to StopID) (float64, error) {
	if d, ok := c.RoadDistance(from, to); ok {
		return d, nil
	}
	if d, ok := c.RoadDistance(to, from); ok {
		return d, nil
	}
	return c.GeoDistance(from, to)
}

// GeoDistance returns the great-circle distance between two stops
func (c *TransportCatalogue) GeoDistance(from, to StopID) (float64, error) {
	a, b := c.stops.At(from), c.stops.At(to)
	if a == nil || b == nil {
		return 0, fmt.Errorf("distance #%d -> #%d: %w", from, to, ErrNotFound)
	}
	d, err := geo.Distance(a.Coordinates, b.Coordinates)
	if err != nil {
		stub := a.Name
		if !a.Stub() {
			stub = b.Name
		}
		return 0, fmt.Errorf("stop %q: %w", stub, ErrMissingCoordinates)
	}
	return d, nil
}

// Validate checks that every stop served by a bus has coordinates
func (c *TransportCatalogue) Validate() error {
	for _, bus := range c.buses.All() {
		for _, id := range bus.Route {
			if stop := c.stops.At(id); stop.Stub() {
				return fmt.Errorf("bus %q: stop %q: %w", bus.Name, stop.Name, ErrMissingCoordinates)
			}
		}
	}
	return nil
}

// Accessor methods

func (c *TransportCatalogue) Stops() *Store[Stop, StopID] { return c.stops }

func (c *TransportCatalogue) Buses() *Store[Bus, BusID] { return c.buses }

func (c *TransportCatalogue) Stop(id StopID) *Stop { return c.stops.At(id) }

func (c *TransportCatalogue) Bus(id BusID) *Bus { return c.buses.At(id) }

func (c *TransportCatalogue) StopByName(name string) (StopID, bool) { return c.stops.Lookup(name) }

func (c *TransportCatalogue) BusByName(name string) (BusID, bool) { return c.buses.Lookup(name) }

// BusesForStop returns the sorted names of the buses serving a stop
func (c *TransportCatalogue) BusesForStop(id StopID) []string {
	set := c.stopBuses[id]
	names := make([]string, 0, len(set))
	for bus := range set {
		names = append(names, c.buses.At(bus).Name)
	}
	slices.Sort(names)
	return names
}

