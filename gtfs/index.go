package gtfs

import (
	"cmp"
	"slices"
)

// stopTime is one row of stop_times.txt
type stopTime struct {
	stop    string
	seq     int
	dist    float64
	hasDist bool
}

// Feed stores the GTFS tables needed to build a catalogue
type Feed struct {
	stopOrder       []string              // stop_id in file order
	stopNames       map[string]string     // stop_id -> name
	stopCoord       map[string][2]float64 // stop_id -> [lat,lon]
	routeOrder      []string              // route_id in file order
	routeShortNames map[string]string     // route_id -> short_name
	tripToRoute     map[string]string     // trip_id -> route_id
	tripDirection   map[string]string     // trip_id -> direction_id ("0"|"1"|"")
	tripStopTimes   map[string][]stopTime // trip_id -> stop times ordered by stop_sequence
}

// NewFeed creates an empty feed
func NewFeed() *Feed {
	return &Feed{
		stopNames:       map[string]string{},
		stopCoord:       map[string][2]float64{},
		routeShortNames: map[string]string{},
		tripToRoute:     map[string]string{},
		tripDirection:   map[string]string{},
		tripStopTimes:   map[string][]stopTime{},
	}
}

// Accessor methods

func (g *Feed) GetStopName(stopID string) string { return g.stopNames[stopID] }

func (g *Feed) GetRouteShortName(routeID string) string { return g.routeShortNames[routeID] }

// GetTripStopNames returns the stop names of a trip in visiting order
func (g *Feed) GetTripStopNames(tripID string) []string {
	times := g.tripStopTimes[tripID]
	names := make([]string, 0, len(times))
	for _, st := range times {
		names = append(names, g.stopNames[st.stop])
	}
	return names
}

// tripsByRoute groups trip ids by route and direction; trips without a
// direction count as direction 0
func (g *Feed) tripsByRoute() map[string]map[bool][]string {
	out := map[string]map[bool][]string{}
	for trip, route := range g.tripToRoute {
		if len(g.tripStopTimes[trip]) == 0 {
			continue
		}
		if out[route] == nil {
			out[route] = map[bool][]string{}
		}
		back := g.tripDirection[trip] == "1"
		out[route][back] = append(out[route][back], trip)
	}
	for _, dirs := range out {
		for _, trips := range dirs {
			slices.Sort(trips)
		}
	}
	return out
}

// longestTrip picks the trip with most stops, the lowest trip_id on ties
func (g *Feed) longestTrip(trips []string) (string, bool) {
	if len(trips) == 0 {
		return "", false
	}
	return slices.MaxFunc(trips, func(a, b string) int {
		if c := cmp.Compare(len(g.tripStopTimes[a]), len(g.tripStopTimes[b])); c != 0 {
			return c
		}
		return cmp.Compare(b, a)
	}), true
}
