package render

import (
	"math"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const epsilon = 1e-6

func isZero(v float64) bool { return math.Abs(v) < epsilon }

// SphereProjector maps coordinates onto a padded canvas, preserving aspect
type SphereProjector struct {
	padding float64
	minLng  float64
	maxLat  float64
	zoom    float64
}

// NewSphereProjector fits points into width x height minus padding
func NewSphereProjector(points []geo.Coordinates, width, height, padding float64) SphereProjector {
	p := SphereProjector{padding: padding}
	b, ok := geo.BoundsOf(points)
	if !ok {
		return p
	}
	p.minLng, p.maxLat = b.MinLng, b.MaxLat

	var widthZoom, heightZoom float64
	hasWidth := !isZero(b.MaxLng - b.MinLng)
	hasHeight := !isZero(b.MaxLat - b.MinLat)
	if hasWidth {
		widthZoom = (width - 2*padding) / (b.MaxLng - b.MinLng)
	}
	if hasHeight {
		heightZoom = (height - 2*padding) / (b.MaxLat - b.MinLat)
	}
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}
	return p
}

// Project returns the canvas point of c
func (p SphereProjector) Project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
