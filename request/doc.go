// Package request decodes the JSON request document.
//
// A document is parsed once into a protobuf Struct tree and then read
// through typed accessors:
//
//	doc, err := request.Decode(data)
//	base, err := doc.BaseRequests()
//	stats, err := doc.StatRequests()
//	routingSettings, ok, err := doc.RoutingSettings()
//	renderSettings, ok, err := doc.RenderSettings()
//
// Any missing or ill-typed required field is reported as ErrMalformed.
package request
