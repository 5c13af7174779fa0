package catalogue

import "fmt"

// BusStats describes a bus route
type BusStats struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     float64 // road length in meters
	Curvature       float64 // road length / straight-line length
}

// BusStats computes route statistics for the bus called name
func (c *TransportCatalogue) BusStats(name string) (BusStats, error) {
	id, ok := c.buses.Lookup(name)
	if !ok {
		return BusStats{}, fmt.Errorf("bus %q: %w", name, ErrNotFound)
	}
	bus := c.buses.At(id)

	unique := make(map[string]struct{}, len(bus.Route))
	var geoLength, roadLength float64
	for i, stop := range bus.Route {
		unique[c.stops.At(stop).Name] = struct{}{}
		if i == 0 {
			continue
		}
		prev := bus.Route[i-1]
		g, err := c.GeoDistance(prev, stop)
		if err != nil {
			return BusStats{}, fmt.Errorf("bus %q: %w", name, err)
		}
		geoLength += g

		forward, err := c.Distance(prev, stop)
		if err != nil {
			return BusStats{}, fmt.Errorf("bus %q: %w", name, err)
		}
		roadLength += forward
		if bus.Type == ThereAndBack {
			backward, err := c.Distance(stop, prev)
			if err != nil {
				return BusStats{}, fmt.Errorf("bus %q: %w", name, err)
			}
			roadLength += backward
		}
	}

	stats := BusStats{UniqueStopCount: len(unique)}
	switch bus.Type {
	case ThereAndBack:
		if n := len(bus.Route); n > 0 {
			// turnaround at the terminal, only when recorded explicitly
			if d, ok := c.RoadDistance(bus.Route[n-1], bus.Route[n-1]); ok {
				roadLength += d
			}
			stats.StopCount = 2*n - 1
		}
		geoLength *= 2
	default:
		stats.StopCount = len(bus.Route)
	}
	stats.RouteLength = roadLength
	if geoLength > 0 {
		stats.Curvature = roadLength / geoLength
	}
	return stats, nil
}
