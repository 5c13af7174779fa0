package request

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/transport-catalogue/geo"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

const (
	keyBase    = "base_requests"
	keyStat    = "stat_requests"
	keyRouting = "routing_settings"
	keyRender  = "render_settings"
)

// Document is a decoded request document
type Document struct {
	root *structpb.Struct
}

// Decode parses a JSON document. The top level must be an object.
func Decode(data []byte) (*Document, error) {
	root := &structpb.Struct{}
	if err := protojson.Unmarshal(data, root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return &Document{root: root}, nil
}

// BaseRequests returns the entity definitions in document order
func (d *Document) BaseRequests() ([]BaseRecord, error) {
	items, err := listField(d.root, keyBase)
	if err != nil {
		return nil, err
	}
	records := make([]BaseRecord, 0, len(items))
	for i, item := range items {
		obj, err := object(item, fmt.Sprintf("%s[%d]", keyBase, i))
		if err != nil {
			return nil, err
		}
		rec, err := baseRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", keyBase, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func baseRecord(obj *structpb.Struct) (BaseRecord, error) {
	kind, err := stringField(obj, "type")
	if err != nil {
		return nil, err
	}
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}
	switch kind {
	case "Stop":
		return stopRecord(obj, name)
	case "Bus":
		return busRecord(obj, name)
	}
	return nil, fmt.Errorf("%w: unknown base request type %q", ErrMalformed, kind)
}

func stopRecord(obj *structpb.Struct, name string) (*StopRecord, error) {
	lat, err := numberField(obj, "latitude")
	if err != nil {
		return nil, err
	}
	lng, err := numberField(obj, "longitude")
	if err != nil {
		return nil, err
	}
	// out-of-range values would collide with geo.Absent
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: stop %q: coordinates (%g, %g) out of range", ErrMalformed, name, lat, lng)
	}
	rec := &StopRecord{
		Name:          name,
		Coordinates:   geo.Coordinates{Lat: lat, Lng: lng},
		RoadDistances: map[string]float64{},
	}
	if !has(obj, "road_distances") {
		return rec, nil
	}
	distances, err := objectField(obj, "road_distances")
	if err != nil {
		return nil, err
	}
	for target, v := range distances.GetFields() {
		meters, err := number(v, fmt.Sprintf("road_distances[%q]", target))
		if err != nil {
			return nil, err
		}
		rec.RoadDistances[target] = meters
	}
	return rec, nil
}

func busRecord(obj *structpb.Struct, name string) (*BusRecord, error) {
	stops, err := listField(obj, "stops")
	if err != nil {
		return nil, err
	}
	roundtrip, err := boolField(obj, "is_roundtrip")
	if err != nil {
		return nil, err
	}
	rec := &BusRecord{Name: name, Stops: make([]string, 0, len(stops)), Roundtrip: roundtrip}
	for i, v := range stops {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, fmt.Errorf("%w: stops[%d] is not a string", ErrMalformed, i)
		}
		rec.Stops = append(rec.Stops, s.StringValue)
	}
	return rec, nil
}

// StatRequests returns the queries in document order; a missing key yields none
func (d *Document) StatRequests() ([]StatRecord, error) {
	if !has(d.root, keyStat) {
		return []StatRecord{}, nil
	}
	items, err := listField(d.root, keyStat)
	if err != nil {
		return nil, err
	}
	records := make([]StatRecord, 0, len(items))
	for i, item := range items {
		obj, err := object(item, fmt.Sprintf("%s[%d]", keyStat, i))
		if err != nil {
			return nil, err
		}
		rec, err := statRecord(obj)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", keyStat, i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func statRecord(obj *structpb.Struct) (StatRecord, error) {
	var rec StatRecord
	id, err := intField(obj, "id")
	if err != nil {
		return rec, err
	}
	kind, err := stringField(obj, "type")
	if err != nil {
		return rec, err
	}
	rec.ID, rec.Type = id, StatType(kind)
	switch rec.Type {
	case StatBus, StatStop:
		rec.Name, err = stringField(obj, "name")
	case StatMap:
	case StatRoute:
		if rec.From, err = stringField(obj, "from"); err == nil {
			rec.To, err = stringField(obj, "to")
		}
	default:
		err = fmt.Errorf("%w: unknown stat request type %q", ErrMalformed, kind)
	}
	return rec, err
}

// RoutingSettings returns the routing settings and whether they are present
func (d *Document) RoutingSettings() (routing.Settings, bool, error) {
	var s routing.Settings
	if !has(d.root, keyRouting) {
		return s, false, nil
	}
	obj, err := objectField(d.root, keyRouting)
	if err != nil {
		return s, false, err
	}
	if s.BusVelocity, err = numberField(obj, "bus_velocity"); err != nil {
		return s, false, err
	}
	if s.BusWaitTime, err = numberField(obj, "bus_wait_time"); err != nil {
		return s, false, err
	}
	return s, true, nil
}

// RenderSettings returns the map settings and whether they are present
func (d *Document) RenderSettings() (render.Settings, bool, error) {
	var s render.Settings
	if !has(d.root, keyRender) {
		return s, false, nil
	}
	obj, err := objectField(d.root, keyRender)
	if err != nil {
		return s, false, err
	}
	numbers := []struct {
		key string
		dst *float64
	}{
		{"width", &s.Width},
		{"height", &s.Height},
		{"padding", &s.Padding},
		{"line_width", &s.LineWidth},
		{"stop_radius", &s.StopRadius},
		{"underlayer_width", &s.UnderlayerWidth},
	}
	for _, n := range numbers {
		if *n.dst, err = numberField(obj, n.key); err != nil {
			return s, false, err
		}
	}
	if s.BusLabelFontSize, err = fontSize(obj, "bus_label_font_size"); err != nil {
		return s, false, err
	}
	if s.StopLabelFontSize, err = fontSize(obj, "stop_label_font_size"); err != nil {
		return s, false, err
	}
	if s.BusLabelOffset, err = offset(obj, "bus_label_offset"); err != nil {
		return s, false, err
	}
	if s.StopLabelOffset, err = offset(obj, "stop_label_offset"); err != nil {
		return s, false, err
	}
	underlayer, err := field(obj, "underlayer_color")
	if err != nil {
		return s, false, err
	}
	if s.UnderlayerColor, err = color(underlayer); err != nil {
		return s, false, err
	}
	palette, err := listField(obj, "color_palette")
	if err != nil {
		return s, false, err
	}
	for _, v := range palette {
		c, err := color(v)
		if err != nil {
			return s, false, err
		}
		s.ColorPalette = append(s.ColorPalette, c)
	}
	return s, true, nil
}

func fontSize(obj *structpb.Struct, key string) (uint32, error) {
	n, err := intField(obj, key)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrMalformed, key)
	}
	if n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %q is too large", ErrMalformed, key)
	}
	return uint32(n), nil
}

func offset(obj *structpb.Struct, key string) (svg.Point, error) {
	items, err := listField(obj, key)
	if err != nil {
		return svg.Point{}, err
	}
	if len(items) != 2 {
		return svg.Point{}, fmt.Errorf("%w: %q must have two elements", ErrMalformed, key)
	}
	dx, err := number(items[0], key)
	if err != nil {
		return svg.Point{}, err
	}
	dy, err := number(items[1], key)
	if err != nil {
		return svg.Point{}, err
	}
	return svg.Point{X: dx, Y: dy}, nil
}

// color accepts "name", [r, g, b] or [r, g, b, opacity]
func color(v *structpb.Value) (svg.Color, error) {
	switch kind := v.GetKind().(type) {
	case *structpb.Value_StringValue:
		return svg.Named(kind.StringValue), nil
	case *structpb.Value_ListValue:
		items := kind.ListValue.GetValues()
		if len(items) != 3 && len(items) != 4 {
			return svg.Color{}, fmt.Errorf("%w: color must have 3 or 4 components", ErrMalformed)
		}
		var rgb [3]uint8
		for i := range rgb {
			n, err := number(items[i], "color component")
			if err != nil {
				return svg.Color{}, err
			}
			if n < 0 || n > 255 {
				return svg.Color{}, fmt.Errorf("%w: color component %g out of range", ErrMalformed, n)
			}
			rgb[i] = uint8(n)
		}
		if len(items) == 3 {
			return svg.RGB(rgb[0], rgb[1], rgb[2]), nil
		}
		opacity, err := number(items[3], "color opacity")
		if err != nil {
			return svg.Color{}, err
		}
		return svg.RGBA(rgb[0], rgb[1], rgb[2], opacity), nil
	}
	return svg.Color{}, fmt.Errorf("%w: unsupported color value", ErrMalformed)
}
