package processor

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// ErrUnavailable is returned for a query whose engine was not configured
var ErrUnavailable = errors.New("query type not configured")

// Processor answers stat queries
type Processor struct {
	Cat      *catalogue.TransportCatalogue
	Router   *routing.Router  // nil disables Route queries
	Renderer *render.Renderer // nil disables Map queries

	mapOnce sync.Once
	mapSVG  string
	mapErr  error
}

// New creates a processor over a fully loaded catalogue
func New(cat *catalogue.TransportCatalogue, router *routing.Router, renderer *render.Renderer) *Processor {
	return &Processor{Cat: cat, Router: router, Renderer: renderer}
}

// ProcessAll answers queries in order
func (p *Processor) ProcessAll(records []request.StatRecord) ([]formatter.Response, error) {
	responses := make([]formatter.Response, 0, len(records))
	for _, rec := range records {
		res, err := p.Process(rec)
		if err != nil {
			return nil, fmt.Errorf("stat request %d: %w", rec.ID, err)
		}
		responses = append(responses, res)
	}
	return responses, nil
}

// Process answers one query
func (p *Processor) Process(rec request.StatRecord) (formatter.Response, error) {
	var (
		res formatter.Response
		err error
	)
	switch rec.Type {
	case request.StatBus:
		res, err = p.bus(rec)
	case request.StatStop:
		res, err = p.stop(rec)
	case request.StatMap:
		res, err = p.drawMap(rec)
	case request.StatRoute:
		res, err = p.route(rec)
	default:
		err = fmt.Errorf("%w: unknown stat request type %q", request.ErrMalformed, rec.Type)
	}
	if errors.Is(err, catalogue.ErrNotFound) {
		return formatter.NotFound(rec.ID), nil
	}
	return res, err
}

func (p *Processor) bus(rec request.StatRecord) (formatter.Response, error) {
	stats, err := p.Cat.BusStats(rec.Name)
	if err != nil {
		return nil, err
	}
	return formatter.Bus(rec.ID, stats), nil
}

func (p *Processor) stop(rec request.StatRecord) (formatter.Response, error) {
	id, ok := p.Cat.StopByName(rec.Name)
	if !ok {
		return nil, fmt.Errorf("stop %q: %w", rec.Name, catalogue.ErrNotFound)
	}
	return formatter.Stop(rec.ID, p.Cat.BusesForStop(id)), nil
}

func (p *Processor) route(rec request.StatRecord) (formatter.Response, error) {
	if p.Router == nil {
		return nil, fmt.Errorf("route: %w", ErrUnavailable)
	}
	it, err := p.Router.BuildRouteByName(rec.From, rec.To)
	if err != nil {
		return nil, err
	}
	return formatter.Route(rec.ID, it), nil
}

func (p *Processor) drawMap(rec request.StatRecord) (formatter.Response, error) {
	svg, err := p.Map()
	if err != nil {
		return nil, err
	}
	return formatter.Map(rec.ID, svg), nil
}

// Map returns the rendered network map, drawing it on first use
func (p *Processor) Map() (string, error) {
	if p.Renderer == nil {
		return "", fmt.Errorf("map: %w", ErrUnavailable)
	}
	p.mapOnce.Do(func() {
		doc, err := p.Renderer.Render(p.Cat)
		if err != nil {
			p.mapErr = err
			return
		}
		p.mapSVG = doc.String()
		log.Printf("Rendered map: %d objects", doc.Len())
	})
	return p.mapSVG, p.mapErr
}
