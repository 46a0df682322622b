package server

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skylinepath/skyroute/tour"
)

// Sentinel errors for configuration loading.
var (
	// ErrBadConfig indicates an unreadable or unparsable config file.
	ErrBadConfig = errors.New("server: bad config")

	// ErrNoLayout indicates a config without a layout CSV path.
	ErrNoLayout = errors.New("server: layout path missing from config")
)

// Config is the server's YAML configuration.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// Layout is the path of the building layout CSV.
	Layout string `yaml:"layout"`

	// Strategy is the default tour strategy ("exact" or "greedy");
	// requests may override it.
	Strategy string `yaml:"strategy"`

	// Workers shards the per-request pipeline. 1 keeps requests serial.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the configuration used when a field is absent.
func DefaultConfig() Config {
	return Config{
		Listen:   ":8080",
		Strategy: tour.Exact.String(),
		Workers:  1,
	}
}

// LoadConfig reads and validates a YAML config file, filling absent fields
// from DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}

	if cfg.Layout == "" {
		return Config{}, fmt.Errorf("%w: %s", ErrNoLayout, path)
	}
	if _, err := tour.ParseStrategy(cfg.Strategy); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if cfg.Workers < 1 {
		return Config{}, fmt.Errorf("%w: workers must be positive, got %d", ErrBadConfig, cfg.Workers)
	}

	return cfg, nil
}
