// Package loader applies entity definitions to a catalogue
package loader

import (
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
)

// Load applies records in order. Stops referenced before their definition
// are created as stubs; the catalogue is validated once all records are in.
func Load(cat *catalogue.TransportCatalogue, records []request.BaseRecord) error {
	for i, rec := range records {
		var err error
		switch rec := rec.(type) {
		case *request.StopRecord:
			err = loadStop(cat, rec)
		case *request.BusRecord:
			err = loadBus(cat, rec)
		default:
			err = fmt.Errorf("%w: unsupported record %T", request.ErrMalformed, rec)
		}
		if err != nil {
			return fmt.Errorf("base record %d: %w", i, err)
		}
	}
	return cat.Validate()
}

func loadStop(cat *catalogue.TransportCatalogue, rec *request.StopRecord) error {
	coords := rec.Coordinates
	from, err := cat.AddStop(rec.Name, &coords)
	if err != nil {
		return err
	}
	// sorted so stub ids do not depend on map order
	targets := make([]string, 0, len(rec.RoadDistances))
	for name := range rec.RoadDistances {
		targets = append(targets, name)
	}
	slices.Sort(targets)
	for _, name := range targets {
		to, err := cat.AddStop(name, nil)
		if err != nil {
			return err
		}
		cat.AddDistance(from, to, rec.RoadDistances[name])
	}
	return nil
}

func loadBus(cat *catalogue.TransportCatalogue, rec *request.BusRecord) error {
	route := make([]catalogue.StopID, 0, len(rec.Stops))
	for _, name := range rec.Stops {
		id, err := cat.AddStop(name, nil)
		if err != nil {
			return err
		}
		route = append(route, id)
	}
	kind := catalogue.ThereAndBack
	if rec.Roundtrip {
		kind = catalogue.Loop
	}
	_, err := cat.AddBus(rec.Name, kind, route)
	return err
}
