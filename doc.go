// Package transportcatalogue wires the catalogue, router and renderer into
// the batch pipelines and the HTTP API.
//
// ProcessJSON and ProcessText run one request document end to end.
// StartServer loads nothing itself: it serves an Engine built by the caller
// until HandleGracefulShutdown sees SIGINT or SIGTERM.
package transportcatalogue
