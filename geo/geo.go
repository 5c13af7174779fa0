package geo

import (
	"errors"
	"math"
)

// EarthRadius is the mean Earth radius in meters
const EarthRadius = 6371000.0

// ErrAbsentCoordinates is returned when a distance is requested for a point
// whose coordinates were never set
var ErrAbsentCoordinates = errors.New("geo: coordinates are absent")

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lng float64 `json:"longitude" yaml:"longitude"`
}

// Absent is the sentinel for a point whose coordinates are not known yet.
// 1024 is outside of any valid latitude/longitude range.
var Absent = Coordinates{Lat: 1024, Lng: 1024}

// Present reports whether c holds real coordinates
func (c Coordinates) Present() bool {
	return c != Absent
}

// Distance returns the great-circle distance in meters between from and to
// using the spherical law of cosines. Identical points are exactly 0 apart.
func Distance(from, to Coordinates) (float64, error) {
	if !from.Present() || !to.Present() {
		return 0, ErrAbsentCoordinates
	}
	if from == to {
		return 0, nil
	}
	const dr = math.Pi / 180.0
	cos := math.Sin(from.Lat*dr)*math.Sin(to.Lat*dr) +
		math.Cos(from.Lat*dr)*math.Cos(to.Lat*dr)*math.Cos(math.Abs(from.Lng-to.Lng)*dr)
	// rounding can push the cosine just outside [-1, 1] for nearly equal points
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * EarthRadius, nil
}

// Bounds is the bounding box of a set of coordinates
type Bounds struct {
	MinLat float64
	MinLng float64
	MaxLat float64
	MaxLng float64
}

// BoundsOf returns the bounding box of points and false when points is empty
func BoundsOf(points []Coordinates) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{MinLat: points[0].Lat, MaxLat: points[0].Lat, MinLng: points[0].Lng, MaxLng: points[0].Lng}
	for _, p := range points[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLng = math.Min(b.MinLng, p.Lng)
		b.MaxLng = math.Max(b.MaxLng, p.Lng)
	}
	return b, true
}
