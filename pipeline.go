package transportcatalogue

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/loader"
	"github.com/theoremus-urban-solutions/transport-catalogue/processor"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/request"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/textio"
)

// Engine is a loaded catalogue with its router and renderer. It is
// read-only and safe for concurrent queries.
type Engine struct {
	Cat       *catalogue.TransportCatalogue
	Processor *processor.Processor
}

// NewEngine builds the routing graph and the renderer for a loaded catalogue
func NewEngine(cat *catalogue.TransportCatalogue, rs routing.Settings, ms render.Settings) (*Engine, error) {
	start := time.Now()
	router, err := routing.New(rs, cat)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(ms)
	if err != nil {
		return nil, err
	}
	log.Printf("Built routing graph: %d stops, %d buses, %d edges in %s",
		cat.Stops().Len(), cat.Buses().Len(), router.EdgeCount(), time.Since(start))
	return &Engine{Cat: cat, Processor: processor.New(cat, router, renderer)}, nil
}

// LoadDocument loads the base requests of a JSON document into an engine.
// Settings missing from the document fall back to config.Config.
func LoadDocument(doc *request.Document) (*Engine, error) {
	base, err := doc.BaseRequests()
	if err != nil {
		return nil, err
	}
	cat := catalogue.New()
	if err := loader.Load(cat, base); err != nil {
		return nil, err
	}
	log.Printf("Loaded %d base requests", len(base))

	rs, ok, err := doc.RoutingSettings()
	if err != nil {
		return nil, err
	}
	if !ok {
		rs = config.Config.Routing
	}
	ms, ok, err := doc.RenderSettings()
	if err != nil {
		return nil, err
	}
	if !ok {
		ms = config.Config.Render.Settings()
	}
	return NewEngine(cat, rs, ms)
}

// ProcessJSON reads a request document from r and writes the JSON array of
// stat responses to w
func ProcessJSON(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	doc, err := request.Decode(data)
	if err != nil {
		return err
	}
	engine, err := LoadDocument(doc)
	if err != nil {
		return err
	}
	stats, err := doc.StatRequests()
	if err != nil {
		return err
	}
	responses, err := engine.Processor.ProcessAll(stats)
	if err != nil {
		return err
	}
	out, err := formatter.NewResponseBuilder("    ").BuildJSON(responses)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// ProcessText runs the line-oriented text format from r to w
func ProcessText(r io.Reader, w io.Writer) error {
	in, err := textio.Read(r)
	if err != nil {
		return err
	}
	cat := catalogue.New()
	if err := loader.Load(cat, in.Base); err != nil {
		return err
	}
	return textio.Write(w, cat, in.Stats)
}
