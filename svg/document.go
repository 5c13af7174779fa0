package svg

import (
	"io"
	"strings"
)

// Point is a position on the canvas
type Point struct {
	X, Y float64
}

// LineCap is the stroke-linecap attribute
type LineCap string

// LineJoin is the stroke-linejoin attribute
type LineJoin string

const (
	LineCapButt   LineCap = "butt"
	LineCapRound  LineCap = "round"
	LineCapSquare LineCap = "square"

	LineJoinArcs      LineJoin = "arcs"
	LineJoinBevel     LineJoin = "bevel"
	LineJoinMiter     LineJoin = "miter"
	LineJoinMiterClip LineJoin = "miter-clip"
	LineJoinRound     LineJoin = "round"
)

// Style carries the presentation attributes shared by every shape.
// Unset fields are omitted from the output.
type Style struct {
	Fill           *Color
	Stroke         *Color
	StrokeWidth    float64
	StrokeLineCap  LineCap
	StrokeLineJoin LineJoin
}

// Paint returns a pointer to c for use in a Style
func Paint(c Color) *Color { return &c }

func (s Style) write(b *strings.Builder) {
	if s.Fill != nil {
		attr(b, "fill", s.Fill.String())
	}
	if s.Stroke != nil {
		attr(b, "stroke", s.Stroke.String())
	}
	if s.StrokeWidth != 0 {
		attr(b, "stroke-width", formatNumber(s.StrokeWidth))
	}
	if s.StrokeLineCap != "" {
		attr(b, "stroke-linecap", string(s.StrokeLineCap))
	}
	if s.StrokeLineJoin != "" {
		attr(b, "stroke-linejoin", string(s.StrokeLineJoin))
	}
}

// Object is anything a Document can hold
type Object interface {
	writeSVG(b *strings.Builder)
}

// Polyline is a sequence of connected points
type Polyline struct {
	Style
	Points []Point
}

func (p *Polyline) writeSVG(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteByte('"')
	p.Style.write(b)
	b.WriteString("/>")
}

// Circle is a filled disc
type Circle struct {
	Style
	Center Point
	Radius float64
}

func (c *Circle) writeSVG(b *strings.Builder) {
	b.WriteString("<circle")
	attr(b, "cx", formatNumber(c.Center.X))
	attr(b, "cy", formatNumber(c.Center.Y))
	attr(b, "r", formatNumber(c.Radius))
	c.Style.write(b)
	b.WriteString("/>")
}

// Text is a label anchored at Position and shifted by Offset
type Text struct {
	Style
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
}

func (t *Text) writeSVG(b *strings.Builder) {
	b.WriteString("<text")
	t.Style.write(b)
	attr(b, "x", formatNumber(t.Position.X))
	attr(b, "y", formatNumber(t.Position.Y))
	attr(b, "dx", formatNumber(t.Offset.X))
	attr(b, "dy", formatNumber(t.Offset.Y))
	attr(b, "font-size", formatNumber(float64(t.FontSize)))
	if t.FontFamily != "" {
		attr(b, "font-family", t.FontFamily)
	}
	if t.FontWeight != "" {
		attr(b, "font-weight", t.FontWeight)
	}
	b.WriteByte('>')
	b.WriteString(xmlEscape(t.Data))
	b.WriteString("</text>")
}

// Document is an ordered list of objects; later objects paint over earlier ones
type Document struct {
	objects []Object
}

// Add appends an object to the document
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Len returns the number of objects
func (d *Document) Len() int { return len(d.objects) }

// String serializes the whole document
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8" ?>`)
	b.WriteByte('\n')
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1">`)
	b.WriteByte('\n')
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeSVG(&b)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>")
	return b.String()
}

// Render writes the serialized document to w
func (d *Document) Render(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

func attr(b *strings.Builder, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(xmlEscape(value))
	b.WriteByte('"')
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

// xmlEscape escapes XML special characters
func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
