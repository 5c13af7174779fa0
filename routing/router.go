package routing

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/graph"
)

// ErrNoRoute is returned when the destination cannot be reached
var ErrNoRoute = fmt.Errorf("no route: %w", catalogue.ErrNotFound)

// ItemType tags an itinerary step
type ItemType string

const (
	Wait ItemType = "Wait"
	Ride ItemType = "Bus"
)

// Item is one itinerary step: a wait at StopName or a ride on BusName
type Item struct {
	Type      ItemType
	StopName  string
	BusName   string
	SpanCount int
	Time      float64 // minutes
}

// Itinerary is the fastest way between two stops
type Itinerary struct {
	TotalTime float64
	Items     []Item
}

// span is the metadata of one graph edge
type span struct {
	boarding catalogue.StopID
	bus      catalogue.BusID
	stops    int
	time     float64 // wait + ride
}

// Router answers itinerary queries over an immutable routing graph
type Router struct {
	settings Settings
	cat      *catalogue.TransportCatalogue
	graph    *graph.DirectedWeightedGraph
	router   *graph.Router
	spans    []span // edge id -> span
}

// New builds the routing graph for cat. cat must be fully loaded.
func New(settings Settings, cat *catalogue.TransportCatalogue) (*Router, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	r := &Router{
		settings: settings,
		cat:      cat,
		graph:    graph.NewDirectedWeightedGraph(cat.Stops().Len()),
	}
	for id, bus := range cat.Buses().All() {
		if err := r.addBus(id, bus); err != nil {
			return nil, fmt.Errorf("bus %q: %w", bus.Name, err)
		}
	}
	r.router = graph.NewRouter(r.graph)
	return r, nil
}

// addBus adds one edge per span of the bus traversal
func (r *Router) addBus(id catalogue.BusID, bus *catalogue.Bus) error {
	route := bus.Route
	for i := 0; i < len(route)-1; i++ {
		forward := r.settings.BusWaitTime
		backward := r.settings.BusWaitTime
		for j := i + 1; j < len(route); j++ {
			d, err := r.cat.Distance(route[j-1], route[j])
			if err != nil {
				return err
			}
			forward += r.settings.travelTime(d)
			if err := r.addSpan(route[i], route[j], span{boarding: route[i], bus: id, stops: j - i, time: forward}); err != nil {
				return err
			}
			if bus.Type != catalogue.ThereAndBack {
				continue
			}
			d, err = r.cat.Distance(route[j], route[j-1])
			if err != nil {
				return err
			}
			backward += r.settings.travelTime(d)
			if err := r.addSpan(route[j], route[i], span{boarding: route[j], bus: id, stops: j - i, time: backward}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) addSpan(from, to catalogue.StopID, s span) error {
	// edge ids are dense, so spans is indexed by them
	if _, err := r.graph.AddEdge(graph.Edge{From: graph.VertexID(from), To: graph.VertexID(to), Weight: s.time}); err != nil {
		return err
	}
	r.spans = append(r.spans, s)
	return nil
}

// BuildRoute returns the fastest itinerary from -> to
func (r *Router) BuildRoute(from, to catalogue.StopID) (Itinerary, error) {
	if from == to {
		return Itinerary{Items: []Item{}}, nil
	}
	info, ok := r.router.BuildRoute(graph.VertexID(from), graph.VertexID(to))
	if !ok {
		return Itinerary{}, ErrNoRoute
	}
	it := Itinerary{TotalTime: info.Weight, Items: make([]Item, 0, 2*len(info.Edges))}
	for _, e := range info.Edges {
		s := r.spans[e]
		it.Items = append(it.Items,
			Item{Type: Wait, StopName: r.cat.Stop(s.boarding).Name, Time: r.settings.BusWaitTime},
			Item{Type: Ride, BusName: r.cat.Bus(s.bus).Name, SpanCount: s.stops, Time: s.time - r.settings.BusWaitTime},
		)
	}
	return it, nil
}

// BuildRouteByName resolves stop names and returns the fastest itinerary
func (r *Router) BuildRouteByName(from, to string) (Itinerary, error) {
	src, ok := r.cat.StopByName(from)
	if !ok {
		return Itinerary{}, fmt.Errorf("stop %q: %w", from, catalogue.ErrNotFound)
	}
	dst, ok := r.cat.StopByName(to)
	if !ok {
		return Itinerary{}, fmt.Errorf("stop %q: %w", to, catalogue.ErrNotFound)
	}
	return r.BuildRoute(src, dst)
}

// Settings returns the settings the graph was built with
func (r *Router) Settings() Settings { return r.settings }

// EdgeCount returns the number of synthesized edges
func (r *Router) EdgeCount() int { return r.graph.EdgeCount() }
