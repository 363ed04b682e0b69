// Package config loads the nxcube configuration from YAML and the
// environment.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/SeamusWaldron/nxcube"
)

// Config contains everything the command line needs to build and store a
// cube.
type Config struct {
	Size           int               `yaml:"size" env:"NXCUBE_SIZE"`
	DBPath         string            `yaml:"db_path" env:"NXCUBE_DB"`
	Checks         bool              `yaml:"checks" env:"NXCUBE_CHECKS"`
	ScrambleLength int               `yaml:"scramble_length" env:"NXCUBE_SCRAMBLE_LENGTH"`
	LogLevel       string            `yaml:"log_level" env:"NXCUBE_LOG_LEVEL"`
	ColorScheme    map[string]string `yaml:"color_scheme"`
}

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Size:           3,
		ScrambleLength: 25,
		LogLevel:       "info",
	}
}

// Validate checks the configuration for values the engine would reject.
func (c Config) Validate() error {
	if c.Size < 2 {
		return fmt.Errorf("%w: size %d is below 2", ErrInvalidConfig, c.Size)
	}
	if c.ScrambleLength < 0 {
		return fmt.Errorf("%w: scramble_length %d is negative", ErrInvalidConfig, c.ScrambleLength)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.Scheme(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// Scheme returns the color scheme, starting from the standard one and
// overriding the faces the configuration names.
func (c Config) Scheme() (nxcube.Scheme, error) {
	s := nxcube.DefaultScheme
	for face, color := range c.ColorScheme {
		f, err := nxcube.ParseFaceName(face)
		if err != nil {
			return s, fmt.Errorf("%w: color_scheme: %w", ErrInvalidConfig, err)
		}
		col, err := nxcube.ParseColor(color)
		if err != nil {
			return s, fmt.Errorf("%w: color_scheme %s: %q is not a color", ErrInvalidConfig, face, color)
		}
		s[f] = col
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s, nil
}

// CubeOptions returns the engine options the configuration asks for.
func (c Config) CubeOptions(logger *log.Logger) ([]nxcube.Option, error) {
	s, err := c.Scheme()
	if err != nil {
		return nil, err
	}
	return []nxcube.Option{
		nxcube.WithScheme(s),
		nxcube.WithConsistencyChecks(c.Checks),
		nxcube.WithLogger(logger),
	}, nil
}
