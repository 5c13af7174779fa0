package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// captured before any test calls LoadAppConfig
var initialConfig = Config

func TestConfig_DefaultsWithoutLoad(t *testing.T) {
	assert.Equal(t, Default(), initialConfig)
	assert.NoError(t, validateConfig(initialConfig))
}
