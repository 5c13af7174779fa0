package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/theoremus-urban-solutions/transport-catalogue/svg"
)

// ErrInvalidSettings is returned for render settings that cannot produce a map
var ErrInvalidSettings = errors.New("invalid render settings")

// Settings controls map geometry and styling
type Settings struct {
	Width             float64 `validate:"gt=0"`
	Height            float64 `validate:"gt=0"`
	Padding           float64 `validate:"gte=0"`
	LineWidth         float64 `validate:"gt=0"`
	StopRadius        float64 `validate:"gt=0"`
	BusLabelFontSize  uint32  `validate:"gt=0"`
	BusLabelOffset    svg.Point
	StopLabelFontSize uint32 `validate:"gt=0"`
	StopLabelOffset   svg.Point
	UnderlayerColor   svg.Color
	UnderlayerWidth   float64     `validate:"gte=0"`
	ColorPalette      []svg.Color `validate:"min=1"`
}

var validate = validator.New()

// Validate checks field ranges and that padding leaves room for the map
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	if s.Padding >= math.Min(s.Width, s.Height)/2 {
		return fmt.Errorf("%w: padding %g too large for %gx%g", ErrInvalidSettings, s.Padding, s.Width, s.Height)
	}
	return nil
}
