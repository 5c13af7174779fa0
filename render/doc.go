// Package render draws the bus network as an SVG map.
//
// The map is built from four layers painted in order: route polylines, bus
// labels, stop circles and stop labels. Buses and stops are drawn sorted by
// name so the output is stable for a given catalogue.
package render
