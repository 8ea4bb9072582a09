package config

import (
	"fmt"

	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// FilterConfig holds settings for position filtering. The piece-range,
// material and castling strings are parsed by the filter package when
// the matchers are built; Validate only checks what it can see without
// decoding them.
type FilterConfig struct {
	// ActiveColour restricts matches to one side to move
	// ("" = either, "w" or "b")
	ActiveColour string

	// RequireEnPassant keeps only positions with an en-passant target
	RequireEnPassant bool

	// Half-move clock bounds
	CheckHalfMoveBounds bool
	MinHalfMoves        uint
	MaxHalfMoves        uint

	// Full-move number bounds
	CheckFullMoveBounds bool
	MinFullMoves        uint
	MaxFullMoves        uint

	// Piece count bounds
	CheckPieceCount bool
	MinPieces       int
	MaxPieces       int

	// Material pattern ("" = no requirement); Exact requires the
	// counts to match exactly instead of as a minimum
	MaterialPattern string
	MaterialExact   bool

	// CastlingSpec requires the named castling rights ("" = none)
	CastlingSpec string

	// Negate inverts the combined verdict
	Negate bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All fields use Go zero values - filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	switch f.ActiveColour {
	case "", "w", "b":
	default:
		return fmt.Errorf("active colour %q (want \"w\" or \"b\"): %w",
			f.ActiveColour, errors.ErrInvalidConfig)
	}
	if f.CheckHalfMoveBounds && f.MinHalfMoves > f.MaxHalfMoves {
		return fmt.Errorf("lower half-move bound (%d) > upper (%d): %w",
			f.MinHalfMoves, f.MaxHalfMoves, errors.ErrInvalidConfig)
	}
	if f.CheckFullMoveBounds && f.MinFullMoves > f.MaxFullMoves {
		return fmt.Errorf("lower full-move bound (%d) > upper (%d): %w",
			f.MinFullMoves, f.MaxFullMoves, errors.ErrInvalidConfig)
	}
	if f.CheckPieceCount {
		if f.MinPieces < 0 {
			return fmt.Errorf("piece count lower bound (%d) must not be negative: %w",
				f.MinPieces, errors.ErrInvalidConfig)
		}
		if f.MinPieces > f.MaxPieces {
			return fmt.Errorf("piece count lower bound (%d) > upper (%d): %w",
				f.MinPieces, f.MaxPieces, errors.ErrInvalidConfig)
		}
	}
	return nil
}

// HasCriteria reports whether any filtering criterion is configured.
// Negate on its own is not a criterion.
func (f *FilterConfig) HasCriteria() bool {
	return f.ActiveColour != "" ||
		f.RequireEnPassant ||
		f.CheckHalfMoveBounds ||
		f.CheckFullMoveBounds ||
		f.CheckPieceCount ||
		f.MaterialPattern != "" ||
		f.CastlingSpec != ""
}
