// Package svg is a small SVG document model used to draw the route map.
//
// Documents hold polylines, circles and text objects and serialize them
// with [Document.Render]. Numbers are printed with six significant digits.
package svg
