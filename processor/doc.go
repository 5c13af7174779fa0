// Package processor answers stat queries against a loaded catalogue.
//
// A Processor ties together the catalogue, the router and the map renderer
// and turns each request.StatRecord into a formatter response.
//
// # Usage
//
//	cat := catalogue.New()
//	_ = loader.Load(cat, base)
//
//	router, _ := routing.New(routingSettings, cat)
//	renderer, _ := render.New(renderSettings)
//
//	p := processor.New(cat, router, renderer)
//	responses, err := p.ProcessAll(stats)
//
// # Errors
//
// A query about an unknown bus or stop, or a route with no path, produces a
// "not found" response and processing continues. Any other error, such as a
// Map query without render settings, aborts the batch.
//
// # Thread Safety
//
// The catalogue must not change once a Processor is built. Under that rule a
// Processor may be shared by concurrent callers; the map is rendered at most
// once and reused.
package processor
