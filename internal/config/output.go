package config

import (
	"fmt"

	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// OutputConfig holds settings related to result output.
type OutputConfig struct {
	// Filename is the output destination ("" = stdout)
	Filename string

	// Append opens Filename in append mode instead of truncating
	Append bool

	// JSONFormat emits a JSON report instead of echoing lines
	JSONFormat bool

	// Quiet suppresses line echo; statistics are still reported
	Quiet bool

	// RejectFilename collects undecodable lines with their
	// diagnostics ("" = discard them)
	RejectFilename string
}

// NewOutputConfig creates an OutputConfig with default values.
// All fields use Go zero values: plain text to stdout.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Append && o.Filename == "" {
		return fmt.Errorf("append mode needs an output file: %w",
			errors.ErrInvalidConfig)
	}
	if o.RejectFilename != "" && o.RejectFilename == o.Filename {
		return fmt.Errorf("reject file %q equals output file: %w",
			o.RejectFilename, errors.ErrInvalidConfig)
	}
	return nil
}
