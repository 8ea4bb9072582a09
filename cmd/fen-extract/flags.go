// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"runtime"

	"github.com/lgbarn/fen-extract-go/internal/config"
	"github.com/lgbarn/fen-extract-go/internal/errors"
	"github.com/lgbarn/fen-extract-go/internal/filter"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.String("a", "", "Append output to this file")
	jsonOutput   = flag.Bool("J", false, "Write a JSON report instead of echoing lines")
	rejectFile   = flag.String("r", "", "Collect undecodable lines in this file")
	quietOutput  = flag.Bool("q", false, "Suppress line echo (validate only)")

	// Filtering options
	activeColour  = flag.String("active", "", `Keep positions with this side to move ("w" or "b")`)
	epOnly        = flag.Bool("ep", false, "Keep only positions with an en-passant target")
	minHalfMoves  = flag.Uint("minhalf", 0, "Minimum half-move clock")
	maxHalfMoves  = flag.Uint("maxhalf", 0, "Maximum half-move clock (0 = no limit)")
	minFullMoves  = flag.Uint("minmove", 0, "Minimum full-move number")
	maxFullMoves  = flag.Uint("maxmove", 0, "Maximum full-move number (0 = no limit)")
	pieceRange    = flag.String("pieces", "", "Piece count range to keep, as lo:hi (e.g. '2:10')")
	materialMin   = flag.String("z", "", "Material balance to match as a minimum (e.g. 'QR:qrr')")
	materialExact = flag.String("Z", "", "Material balance to match exactly")
	castlingSpec  = flag.String("castling", "", "Required castling rights (e.g. 'KQkq')")
	negateMatch   = flag.Bool("n", false, "Keep lines that DON'T match the criteria")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions")
	duplicateFile      = flag.String("d", "", "Output duplicate lines to this file")
	checkFile          = flag.String("c", "", "Positions in this file count as already seen")

	// Processing
	numWorkers = flag.Int("workers", 0, "Number of decode workers (0 = one per CPU)")
	stopAfter  = flag.Uint("stopafter", 0, "Stop after matching N lines")
	strictMode = flag.Bool("strict", false, "Exit with status 1 if any line fails to decode")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0=quiet, 1=summary, 2=per-line commentary")
	logFile   = flag.String("l", "", "Write diagnostics to this log file")
	help      = flag.Bool("h", false, "Show help")
	version   = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyFilterFlags(cfg); err != nil {
		return err
	}
	applyDuplicateFlags(cfg)
	applyProcessingFlags(cfg)
	return nil
}

// applyOutputFlags configures output destinations and formats.
func applyOutputFlags(cfg *config.Config) error {
	if *outputFile != "" && *appendOutput != "" {
		return fmt.Errorf("-o and -a are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	cfg.Output.Filename = *outputFile
	if *appendOutput != "" {
		cfg.Output.Filename = *appendOutput
		cfg.Output.Append = true
	}
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.Quiet = *quietOutput
	cfg.Output.RejectFilename = *rejectFile
	return nil
}

// applyFilterFlags configures position filter settings.
func applyFilterFlags(cfg *config.Config) error {
	cfg.Filter.ActiveColour = *activeColour
	cfg.Filter.RequireEnPassant = *epOnly
	cfg.Filter.Negate = *negateMatch
	cfg.Filter.CastlingSpec = *castlingSpec

	if *minHalfMoves > 0 || *maxHalfMoves > 0 {
		cfg.Filter.CheckHalfMoveBounds = true
		cfg.Filter.MinHalfMoves = *minHalfMoves
		cfg.Filter.MaxHalfMoves = *maxHalfMoves
		if *maxHalfMoves == 0 {
			cfg.Filter.MaxHalfMoves = filter.Unbounded
		}
	}
	if *minFullMoves > 0 || *maxFullMoves > 0 {
		cfg.Filter.CheckFullMoveBounds = true
		cfg.Filter.MinFullMoves = *minFullMoves
		cfg.Filter.MaxFullMoves = *maxFullMoves
		if *maxFullMoves == 0 {
			cfg.Filter.MaxFullMoves = filter.Unbounded
		}
	}

	if *pieceRange != "" {
		lo, hi, err := filter.ParsePieceRange(*pieceRange)
		if err != nil {
			return err
		}
		cfg.Filter.CheckPieceCount = true
		cfg.Filter.MinPieces = lo
		cfg.Filter.MaxPieces = hi
	}

	if *materialMin != "" && *materialExact != "" {
		return fmt.Errorf("-z and -Z are mutually exclusive: %w", errors.ErrInvalidConfig)
	}
	if *materialExact != "" {
		cfg.Filter.MaterialPattern = *materialExact
		cfg.Filter.MaterialExact = true
	} else if *materialMin != "" {
		cfg.Filter.MaterialPattern = *materialMin
	}

	return nil
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.DuplicateFilename = *duplicateFile
	cfg.Duplicate.CheckFilename = *checkFile
}

// applyProcessingFlags configures the processing pipeline.
func applyProcessingFlags(cfg *config.Config) {
	cfg.Verbosity = *verbosity
	cfg.StrictMode = *strictMode
	cfg.StopAfter = *stopAfter

	cfg.Workers = *numWorkers
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
}
