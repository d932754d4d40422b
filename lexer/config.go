// SPDX-License-Identifier: MIT
package lexer

import (
	"github.com/sirupsen/logrus"
)

type (
	// Config defines configuration options for the Lexer's operations.
	Config struct {
		Logger   logrus.FieldLogger
		Observer Observer

		// Debug enables tracing through the Observer (a LogObserver when none is set).
		Debug bool

		// Permissive emits Unknown tokens for unmapped symbols instead of failing.
		Permissive bool
	}

	// Option defines the Lexer functional option type.
	Option func(*Config)
)

// DefaultConfig obtains the package's default Config: strict, non-debug.
func DefaultConfig() *Config {
	return &Config{
		Logger: logrus.New(),
	}
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Logger == nil {
		c.Logger = logrus.New()
	}
	if c.Observer == nil {
		if c.Debug {
			c.Observer = &LogObserver{Logger: c.Logger}
		} else {
			c.Observer = nopObserver{}
		}
	}
}

// WithConfig replaces the accumulated Config; later options still apply.
func WithConfig(cfg Config) Option { return func(c *Config) { *c = cfg } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(c *Config) { c.Logger = logger } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(c *Config) { c.Debug = debug } }

// WithPermissive configures the Unknown token policy.
func WithPermissive(permissive bool) Option {
	return func(c *Config) { c.Permissive = permissive }
}

// WithObserver configures the scan Observer.
func WithObserver(o Observer) Option { return func(c *Config) { c.Observer = o } }
