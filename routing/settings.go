package routing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidSettings is returned for out-of-range routing settings
var ErrInvalidSettings = errors.New("invalid routing settings")

// Settings configures bus speed and boarding wait
type Settings struct {
	BusVelocity float64 `json:"bus_velocity" yaml:"bus_velocity" validate:"gt=0"`   // km/h
	BusWaitTime float64 `json:"bus_wait_time" yaml:"bus_wait_time" validate:"gte=0"` // minutes
}

var validate = validator.New()

// Validate checks the settings ranges
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// travelTime converts meters to minutes at the configured velocity
func (s Settings) travelTime(meters float64) float64 {
	return meters * 60.0 / (1000.0 * s.BusVelocity)
}
