package nxcube

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures a Cube.
type Option func(*config)

type config struct {
	scheme Scheme
	checks bool
	logger *log.Logger
}

func defaultConfig() *config {
	return &config{
		scheme: DefaultScheme,
		checks: false,
		logger: log.New(io.Discard),
	}
}

// WithScheme sets the colors of the solved cube.
func WithScheme(s Scheme) Option {
	return func(c *config) {
		c.scheme = s
	}
}

// WithConsistencyChecks runs Check after every rotation. A failed check
// halts the cube: every later rotation returns ErrHalted.
// Meant for tests and debugging; it costs O(N²) per rotation.
func WithConsistencyChecks(enabled bool) Option {
	return func(c *config) {
		c.checks = enabled
	}
}

// WithLogger sets the logger rotations report to at debug level.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
