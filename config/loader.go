package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
)

// Config is the global application configuration; LoadAppConfig replaces it
var Config = Default()

// DefaultPaths are searched when no config path is given
var DefaultPaths = []string{"config.yml", "./config/config.yml"}

// Default returns the configuration used when no file is found
func Default() AppConfig {
	return AppConfig{
		Server:  ServerConfig{Port: 16181, ShutdownTimeoutMS: 5000, CORSOrigins: []string{"*"}},
		Routing: routing.Settings{BusVelocity: 40, BusWaitTime: 6},
		Render: RenderConfig{
			Width:             1200,
			Height:            1200,
			Padding:           50,
			LineWidth:         14,
			StopRadius:        5,
			BusLabelFontSize:  20,
			BusLabelOffset:    [2]float64{7, 15},
			StopLabelFontSize: 20,
			StopLabelOffset:   [2]float64{7, -3},
			UnderlayerColor:   "rgba(255,255,255,0.85)",
			UnderlayerWidth:   3,
			ColorPalette:      []string{"green", "rgb(255,160,0)", "red"},
		},
	}
}

// LoadAppConfig loads, overrides and validates the configuration. With an
// empty path DefaultPaths are tried and a missing file falls back to Default.
func LoadAppConfig(path string) error {
	_ = godotenv.Load() // .env is optional

	cfg := Default()
	data, err := readConfig(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && path == "":
		log.Printf("No config file found, using defaults")
	case err != nil:
		return err
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	applyEnv(&cfg)

	if err := validateConfig(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func readConfig(path string) ([]byte, error) {
	if path != "" {
		return os.ReadFile(path)
	}
	var err error
	for _, p := range DefaultPaths {
		var data []byte
		data, err = os.ReadFile(p)
		if err == nil {
			return data, nil
		}
	}
	return nil, err
}

func validateConfig(cfg AppConfig) error {
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return fmt.Errorf("config: server: %w", err)
	}
	if err := cfg.Routing.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Render.Settings().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := v.Struct(cfg.Render); err != nil {
		return fmt.Errorf("config: render: %w", err)
	}
	if err := v.Struct(cfg.GTFS); err != nil {
		return fmt.Errorf("config: gtfs: %w", err)
	}
	// feeds are optional; if present validate each
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return fmt.Errorf("config: feed %q: %w", f.Name, err)
		}
	}
	return nil
}

// applyEnv lets TC_* variables override file values
func applyEnv(cfg *AppConfig) {
	cfg.Server.Port = getEnvInt("TC_PORT", cfg.Server.Port)
	cfg.Routing.BusVelocity = getEnvFloat("TC_BUS_VELOCITY", cfg.Routing.BusVelocity)
	cfg.Routing.BusWaitTime = getEnvFloat("TC_BUS_WAIT_TIME", cfg.Routing.BusWaitTime)
	cfg.GTFS.Path = getEnv("TC_GTFS_PATH", cfg.GTFS.Path)
}

// SelectFeed chooses a feed by name; fallback to first; if none, use top-level GTFS.
func SelectFeed(name string) GTFSConfig {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f.GTFS
			}
		}
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0].GTFS
	}
	return Config.GTFS
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
