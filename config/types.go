package config

import (
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/render"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// ServerConfig contains server configuration
type ServerConfig struct {
	Port              int      `yaml:"port" validate:"gt=0"`
	ShutdownTimeoutMS int      `yaml:"shutdownTimeoutMS" validate:"gte=0"`
	CORSOrigins       []string `yaml:"corsOrigins"`
}

// RenderConfig mirrors render.Settings with colors written as SVG paint strings
type RenderConfig struct {
	Width             float64    `yaml:"width" validate:"gt=0"`
	Height            float64    `yaml:"height" validate:"gt=0"`
	Padding           float64    `yaml:"padding" validate:"gte=0"`
	LineWidth         float64    `yaml:"line_width" validate:"gt=0"`
	StopRadius        float64    `yaml:"stop_radius" validate:"gt=0"`
	BusLabelFontSize  uint32     `yaml:"bus_label_font_size" validate:"gt=0"`
	BusLabelOffset    [2]float64 `yaml:"bus_label_offset"`
	StopLabelFontSize uint32     `yaml:"stop_label_font_size" validate:"gt=0"`
	StopLabelOffset   [2]float64 `yaml:"stop_label_offset"`
	UnderlayerColor   string     `yaml:"underlayer_color" validate:"required"`
	UnderlayerWidth   float64    `yaml:"underlayer_width" validate:"gte=0"`
	ColorPalette      []string   `yaml:"color_palette" validate:"min=1,dive,required"`
}

// Settings converts the section into renderer settings
func (c RenderConfig) Settings() render.Settings {
	palette := make([]svg.Color, 0, len(c.ColorPalette))
	for _, name := range c.ColorPalette {
		palette = append(palette, svg.Named(name))
	}
	return render.Settings{
		Width:             c.Width,
		Height:            c.Height,
		Padding:           c.Padding,
		LineWidth:         c.LineWidth,
		StopRadius:        c.StopRadius,
		BusLabelFontSize:  c.BusLabelFontSize,
		BusLabelOffset:    svg.Point{X: c.BusLabelOffset[0], Y: c.BusLabelOffset[1]},
		StopLabelFontSize: c.StopLabelFontSize,
		StopLabelOffset:   svg.Point{X: c.StopLabelOffset[0], Y: c.StopLabelOffset[1]},
		UnderlayerColor:   svg.Named(c.UnderlayerColor),
		UnderlayerWidth:   c.UnderlayerWidth,
		ColorPalette:      palette,
	}
}

// GTFSConfig contains GTFS static feed configuration
type GTFSConfig struct {
	Path         string `yaml:"path" validate:"omitempty"`
	gtfs.Options `yaml:",inline"`
}

// Feed represents a single named GTFS feed
type Feed struct {
	Name string     `yaml:"name" validate:"required"`
	GTFS GTFSConfig `yaml:"gtfs" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig     `yaml:"server" validate:"required"`
	Routing routing.Settings `yaml:"routing"`
	Render  RenderConfig     `yaml:"render"`
	GTFS    GTFSConfig       `yaml:"gtfs"`
	Feeds   []Feed           `yaml:"feeds" validate:"dive"`
}
