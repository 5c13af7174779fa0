package gtfs

import (
	"fmt"
	"io"
	"log"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
)

// Options tunes the import
type Options struct {
	// DistanceScale converts shape_dist_traveled units to meters; 0 means 1
	DistanceScale float64 `yaml:"distance_scale" validate:"gte=0"`
}

// LoadCatalogue parses a GTFS zip and builds a validated catalogue
func LoadCatalogue(r io.ReaderAt, size int64, opts Options) (*catalogue.TransportCatalogue, error) {
	feed, err := NewFeedFromReader(r, size)
	if err != nil {
		return nil, err
	}
	return feed.Catalogue(opts)
}

// Catalogue builds a validated catalogue from the feed
func (g *Feed) Catalogue(opts Options) (*catalogue.TransportCatalogue, error) {
	scale := opts.DistanceScale
	if scale == 0 {
		scale = 1
	}
	cat := catalogue.New()
	ids := make(map[string]catalogue.StopID, len(g.stopOrder)) // stop_id -> catalogue id
	for _, stopID := range g.stopOrder {
		name := g.stopNames[stopID]
		if id, ok := cat.StopByName(name); ok {
			ids[stopID] = id
			continue
		}
		c := g.stopCoord[stopID]
		id, err := cat.AddStop(name, &geo.Coordinates{Lat: c[0], Lng: c[1]})
		if err != nil {
			return nil, err
		}
		ids[stopID] = id
	}

	trips := g.tripsByRoute()
	buses := 0
	for _, routeID := range g.routeOrder {
		forward, ok := g.longestTrip(trips[routeID][false])
		if !ok {
			continue
		}
		name := g.GetRouteShortName(routeID)
		if _, taken := cat.BusByName(name); name == "" || taken {
			name = routeID
		}
		route := g.tripRoute(forward, ids)
		kind := catalogue.Loop
		backward, reversed := g.reverseTrip(route, trips[routeID][true], ids)
		if route[0] != route[len(route)-1] && reversed {
			kind = catalogue.ThereAndBack
		}
		if _, err := cat.AddBus(name, kind, route); err != nil {
			return nil, fmt.Errorf("gtfs: route %s: %w", routeID, err)
		}
		g.addDistances(cat, forward, ids, scale)
		if kind == catalogue.ThereAndBack {
			g.addDistances(cat, backward, ids, scale)
		}
		buses++
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	log.Printf("GTFS import: %d stops, %d buses", cat.Stops().Len(), buses)
	return cat, nil
}

func (g *Feed) tripRoute(trip string, ids map[string]catalogue.StopID) []catalogue.StopID {
	times := g.tripStopTimes[trip]
	route := make([]catalogue.StopID, 0, len(times))
	for _, st := range times {
		route = append(route, ids[st.stop])
	}
	return route
}

// reverseTrip finds a trip among candidates that visits route backwards
func (g *Feed) reverseTrip(route []catalogue.StopID, candidates []string, ids map[string]catalogue.StopID) (string, bool) {
	want := slices.Clone(route)
	slices.Reverse(want)
	for _, trip := range candidates {
		if slices.Equal(g.tripRoute(trip, ids), want) {
			return trip, true
		}
	}
	return "", false
}

// addDistances records shape_dist_traveled deltas; the first trip to set a pair wins
func (g *Feed) addDistances(cat *catalogue.TransportCatalogue, trip string, ids map[string]catalogue.StopID, scale float64) {
	times := g.tripStopTimes[trip]
	for i := 1; i < len(times); i++ {
		prev, cur := times[i-1], times[i]
		if !prev.hasDist || !cur.hasDist || cur.dist <= prev.dist {
			continue
		}
		from, to := ids[prev.stop], ids[cur.stop]
		if from == to {
			continue
		}
		if _, ok := cat.RoadDistance(from, to); ok {
			continue
		}
		cat.AddDistance(from, to, (cur.dist-prev.dist)*scale)
	}
}
