// Package config provides configuration for fen-extract.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity: 0=quiet, 1=summary, 2=running commentary
	Verbosity int

	// StrictMode makes the run fail when any line fails to decode.
	StrictMode bool

	// Workers is the number of decode workers. Values below 2 select
	// the sequential path.
	Workers int

	// StopAfter stops processing once this many lines have matched
	// (0 = no limit).
	StopAfter uint

	Output    *OutputConfig
	Duplicate *DuplicateConfig
	Filter    *FilterConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Workers:    1,
		Output:     NewOutputConfig(),
		Duplicate:  NewDuplicateConfig(),
		Filter:     NewFilterConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the whole configuration, sections included.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w",
			c.Workers, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Duplicate.Validate(); err != nil {
		return err
	}
	return c.Filter.Validate()
}
