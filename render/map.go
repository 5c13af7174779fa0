package render

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const fontFamily = "Verdana"

// Renderer draws a catalogue with fixed settings
type Renderer struct {
	settings Settings
}

// New validates settings and returns a renderer
func New(settings Settings) (*Renderer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{settings: settings}, nil
}

// Render draws every non-empty bus and the stops they serve
func (r *Renderer) Render(cat *catalogue.TransportCatalogue) (*svg.Document, error) {
	buses := make([]*catalogue.Bus, 0, cat.Buses().Len())
	served := map[catalogue.StopID]struct{}{}
	for _, bus := range cat.Buses().All() {
		if len(bus.Route) == 0 {
			continue
		}
		buses = append(buses, bus)
		for _, id := range bus.Route {
			served[id] = struct{}{}
		}
	}
	slices.SortFunc(buses, func(a, b *catalogue.Bus) int { return cmp.Compare(a.Name, b.Name) })

	stops := make([]*catalogue.Stop, 0, len(served))
	points := make([]geo.Coordinates, 0, len(served))
	for id := range served {
		stop := cat.Stop(id)
		if stop.Stub() {
			return nil, fmt.Errorf("render stop %q: %w", stop.Name, catalogue.ErrMissingCoordinates)
		}
		stops = append(stops, stop)
		points = append(points, stop.Coordinates)
	}
	slices.SortFunc(stops, func(a, b *catalogue.Stop) int { return cmp.Compare(a.Name, b.Name) })

	proj := NewSphereProjector(points, r.settings.Width, r.settings.Height, r.settings.Padding)
	doc := &svg.Document{}
	r.routeLines(doc, cat, proj, buses)
	r.busLabels(doc, cat, proj, buses)
	r.stopCircles(doc, proj, stops)
	r.stopLabels(doc, proj, stops)
	return doc, nil
}

func (r *Renderer) paletteColor(i int) svg.Color {
	return r.settings.ColorPalette[i%len(r.settings.ColorPalette)]
}

func (r *Renderer) routeLines(doc *svg.Document, cat *catalogue.TransportCatalogue, proj SphereProjector, buses []*catalogue.Bus) {
	for i, bus := range buses {
		route := bus.Route
		if bus.Type == catalogue.ThereAndBack {
			back := slices.Clone(route[:len(route)-1])
			slices.Reverse(back)
			route = append(slices.Clone(route), back...)
		}
		line := &svg.Polyline{
			Style: svg.Style{
				Fill:           svg.Paint(svg.NoneColor),
				Stroke:         svg.Paint(r.paletteColor(i)),
				StrokeWidth:    r.settings.LineWidth,
				StrokeLineCap:  svg.LineCapRound,
				StrokeLineJoin: svg.LineJoinRound,
			},
			Points: make([]svg.Point, 0, len(route)),
		}
		for _, id := range route {
			line.Points = append(line.Points, proj.Project(cat.Stop(id).Coordinates))
		}
		doc.Add(line)
	}
}

func (r *Renderer) busLabels(doc *svg.Document, cat *catalogue.TransportCatalogue, proj SphereProjector, buses []*catalogue.Bus) {
	for i, bus := range buses {
		first, last := bus.Route[0], bus.Route[len(bus.Route)-1]
		r.busLabel(doc, bus.Name, proj.Project(cat.Stop(first).Coordinates), r.paletteColor(i))
		if bus.Type == catalogue.ThereAndBack && first != last {
			r.busLabel(doc, bus.Name, proj.Project(cat.Stop(last).Coordinates), r.paletteColor(i))
		}
	}
}

func (r *Renderer) busLabel(doc *svg.Document, name string, at svg.Point, color svg.Color) {
	base := svg.Text{
		Position:   at,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   r.settings.BusLabelFontSize,
		FontFamily: fontFamily,
		FontWeight: "bold",
		Data:       name,
	}
	under, text := base, base
	under.Style = r.underlayer()
	text.Style = svg.Style{Fill: svg.Paint(color)}
	doc.Add(&under)
	doc.Add(&text)
}

func (r *Renderer) stopCircles(doc *svg.Document, proj SphereProjector, stops []*catalogue.Stop) {
	for _, stop := range stops {
		doc.Add(&svg.Circle{
			Style:  svg.Style{Fill: svg.Paint(svg.Named("white"))},
			Center: proj.Project(stop.Coordinates),
			Radius: r.settings.StopRadius,
		})
	}
}

func (r *Renderer) stopLabels(doc *svg.Document, proj SphereProjector, stops []*catalogue.Stop) {
	for _, stop := range stops {
		base := svg.Text{
			Position:   proj.Project(stop.Coordinates),
			Offset:     r.settings.StopLabelOffset,
			FontSize:   r.settings.StopLabelFontSize,
			FontFamily: fontFamily,
			Data:       stop.Name,
		}
		under, text := base, base
		under.Style = r.underlayer()
		text.Style = svg.Style{Fill: svg.Paint(svg.Named("black"))}
		doc.Add(&under)
		doc.Add(&text)
	}
}

func (r *Renderer) underlayer() svg.Style {
	return svg.Style{
		Fill:           svg.Paint(r.settings.UnderlayerColor),
		Stroke:         svg.Paint(r.settings.UnderlayerColor),
		StrokeWidth:    r.settings.UnderlayerWidth,
		StrokeLineCap:  svg.LineCapRound,
		StrokeLineJoin: svg.LineJoinRound,
	}
}
