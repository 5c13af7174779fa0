package formatter

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// NotFoundMessage is the error_message of a query about an unknown entity
const NotFoundMessage = "not found"

// Response is any of the response types below
type Response any

// BusResponse answers a Bus query
type BusResponse struct {
	RequestID       int64   `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop query
type StopResponse struct {
	RequestID int64    `json:"request_id"`
	Buses     []string `json:"buses"`
}

// MapResponse answers a Map query with the SVG document
type MapResponse struct {
	RequestID int64  `json:"request_id"`
	Map       string `json:"map"`
}

// RouteResponse answers a Route query
type RouteResponse struct {
	RequestID int64   `json:"request_id"`
	TotalTime float64 `json:"total_time"`
	Items     []any   `json:"items"`
}

// WaitItem is a wait at a stop, in minutes
type WaitItem struct {
	Type     string  `json:"type"`
	StopName string  `json:"stop_name"`
	Time     float64 `json:"time"`
}

// BusItem is a ride over SpanCount stops, in minutes
type BusItem struct {
	Type      string  `json:"type"`
	Bus       string  `json:"bus"`
	SpanCount int     `json:"span_count"`
	Time      float64 `json:"time"`
}

// ErrorResponse reports a query that could not be answered
type ErrorResponse struct {
	RequestID    int64  `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// Bus builds the response for route statistics
func Bus(id int64, stats catalogue.BusStats) BusResponse {
	return BusResponse{
		RequestID:       id,
		Curvature:       stats.Curvature,
		RouteLength:     stats.RouteLength,
		StopCount:       stats.StopCount,
		UniqueStopCount: stats.UniqueStopCount,
	}
}

// Stop builds the response listing the buses of a stop
func Stop(id int64, buses []string) StopResponse {
	if buses == nil {
		buses = []string{}
	}
	return StopResponse{RequestID: id, Buses: buses}
}

// Map builds the response carrying a rendered map
func Map(id int64, svg string) MapResponse {
	return MapResponse{RequestID: id, Map: svg}
}

// Route builds the response for an itinerary
func Route(id int64, it routing.Itinerary) RouteResponse {
	items := make([]any, 0, len(it.Items))
	for _, item := range it.Items {
		switch item.Type {
		case routing.Wait:
			items = append(items, WaitItem{Type: string(item.Type), StopName: item.StopName, Time: item.Time})
		case routing.Ride:
			items = append(items, BusItem{Type: string(item.Type), Bus: item.BusName, SpanCount: item.SpanCount, Time: item.Time})
		}
	}
	return RouteResponse{RequestID: id, TotalTime: it.TotalTime, Items: items}
}

// NotFound builds the response for an unknown bus, stop or unreachable route
func NotFound(id int64) ErrorResponse {
	return ErrorResponse{RequestID: id, ErrorMessage: NotFoundMessage}
}
