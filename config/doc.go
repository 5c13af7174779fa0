// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and TC_* environment variables override file values. Routing
// and render sections supply the defaults used when a request document
// carries no settings of its own. Several GTFS feeds may be listed and
// selected by name.
package config
