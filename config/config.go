// Package config holds the runtime options of a header conversion.
package config

import (
	"context"
	"time"

	"github.com/rickbassham/hotfly/logger"
	"github.com/rickbassham/hotfly/telemetry"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config is a struct type that holds all config options
type Config struct {
	// checkOutput re-reads the written file with a FITS reader
	checkOutput bool

	// logger stream for the conversion
	logger logger.Logger

	// now is the clock used for the provenance card
	now func() time.Time

	// strictCardLength rejects external cards whose value does not fit on
	// one card instead of truncating them
	strictCardLength bool

	// telemetryHook is a function pointer to consume telemetry data after a
	// finished conversion
	telemetryHook telemetry.TelemetryHook

	// toolName and toolVersion are recorded in the provenance card
	toolName    string
	toolVersion string
}

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style
func NewConfig(opts ...ConfigOption) *Config {
	const (
		checkOutput      = false
		strictCardLength = false
		toolName         = "hotfly"
		toolVersion      = "2.0"
	)

	config := &Config{
		checkOutput:      checkOutput,
		logger:           logger.Discard(),
		now:              time.Now,
		strictCardLength: strictCardLength,
		toolName:         toolName,
		toolVersion:      toolVersion,
	}

	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithCheckOutput options pattern function to re-read the output file after
// conversion
func WithCheckOutput(check bool) ConfigOption {
	return func(c *Config) {
		c.checkOutput = check
	}
}

// WithClock options pattern function to set the clock used for the
// provenance card
func WithClock(now func() time.Time) ConfigOption {
	return func(c *Config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger options pattern function to set a custom logger
func WithLogger(l logger.Logger) ConfigOption {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStrictCardLength options pattern function to reject over-long cards
func WithStrictCardLength(strict bool) ConfigOption {
	return func(c *Config) {
		c.strictCardLength = strict
	}
}

// WithTelemetryHook options pattern function to set a telemetry hook
func WithTelemetryHook(hook telemetry.TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}

// WithTool options pattern function to set the tool identity recorded in
// the provenance card
func WithTool(name, version string) ConfigOption {
	return func(c *Config) {
		if name != "" {
			c.toolName = name
		}
		if version != "" {
			c.toolVersion = version
		}
	}
}

// CheckOutput returns true if the output should be re-read after conversion
func (c *Config) CheckOutput() bool {
	return c.checkOutput
}

func (c *Config) Logger() logger.Logger {
	return c.logger
}

// Now returns the current time of the configured clock in UTC
func (c *Config) Now() time.Time {
	return c.now().UTC()
}

// StrictCardLength returns true if over-long cards are an error
func (c *Config) StrictCardLength() bool {
	return c.strictCardLength
}

// TelemetryHook returns the telemetry hook
func (c *Config) TelemetryHook() telemetry.TelemetryHook {
	if c.telemetryHook == nil {
		return telemetry.NoopTelemetryHook
	}
	return c.telemetryHook
}

// Tool returns the tool name and version
func (c *Config) Tool() (name, version string) {
	return c.toolName, c.toolVersion
}

// EmitTelemetry hands d to the telemetry hook
func (c *Config) EmitTelemetry(ctx context.Context, d *telemetry.Data) {
	c.TelemetryHook()(ctx, d)
}

// Clone returns a copy of c with opts applied on top
func (c *Config) Clone(opts ...ConfigOption) *Config {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}
