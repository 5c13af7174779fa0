// Package geo provides geographic coordinates and great-circle distances
// used by the catalogue, the router and the map renderer.
//
// Distances are returned in meters. Coordinates are expressed in degrees.
package geo
