package config

import (
	"fmt"

	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// DuplicateConfig holds settings for duplicate position detection.
type DuplicateConfig struct {
	// Suppress drops duplicate lines from normal output
	Suppress bool

	// DuplicateFilename receives duplicate lines ("" = none)
	DuplicateFilename string

	// CheckFilename names a file whose positions are preloaded and
	// count as already seen ("" = none)
	CheckFilename string

	// MaxPositions caps the number of retained positions
	// (0 = unlimited)
	MaxPositions int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
// Detection is off until a flag turns it on.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Enabled reports whether any duplicate handling was requested.
func (d *DuplicateConfig) Enabled() bool {
	return d.Suppress || d.DuplicateFilename != "" || d.CheckFilename != ""
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxPositions < 0 {
		return fmt.Errorf("position limit (%d) must not be negative: %w",
			d.MaxPositions, errors.ErrInvalidConfig)
	}
	return nil
}
