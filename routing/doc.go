// Package routing turns a loaded catalogue into a routing graph and answers
// fastest-itinerary queries between stops.
//
// Every stop is a vertex. For every bus and every pair of stops i < j along
// its one-way traversal there is an edge stop[i] -> stop[j] whose weight is
// the boarding wait plus the ride time over the span. ThereAndBack buses get
// the mirrored spans as well. The wait is therefore paid exactly once per
// boarding however many stops are ridden.
//
// A Router is immutable once built and must be rebuilt if the catalogue
// changes.
package routing
