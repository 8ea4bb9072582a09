// filters.go - Building the position filter and duplicate detector
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/fen-extract-go/internal/config"
	"github.com/lgbarn/fen-extract-go/internal/errors"
	"github.com/lgbarn/fen-extract-go/internal/fen"
	"github.com/lgbarn/fen-extract-go/internal/filter"
	"github.com/lgbarn/fen-extract-go/internal/hashing"
	"github.com/lgbarn/fen-extract-go/internal/scan"
)

// buildFilter assembles the position filter from the configuration.
// Returns nil when no criteria are configured and the verdict is not
// negated, so the pipeline can skip matching entirely.
func buildFilter(cfg *config.Config) (*filter.Filter, error) {
	fc := cfg.Filter
	if !fc.HasCriteria() && !fc.Negate {
		return nil, nil
	}

	f := filter.New()

	if fc.ActiveColour != "" {
		colour, err := filter.ParseColour(fc.ActiveColour)
		if err != nil {
			return nil, err
		}
		f.Add(filter.NewActiveColour(colour))
	}
	if fc.RequireEnPassant {
		f.Add(filter.NewEnPassant())
	}
	if fc.CheckHalfMoveBounds {
		f.Add(filter.NewHalfMoveBounds(fc.MinHalfMoves, fc.MaxHalfMoves))
	}
	if fc.CheckFullMoveBounds {
		f.Add(filter.NewFullMoveBounds(fc.MinFullMoves, fc.MaxFullMoves))
	}
	if fc.CheckPieceCount {
		f.Add(filter.NewPieceCountBounds(fc.MinPieces, fc.MaxPieces))
	}
	if fc.MaterialPattern != "" {
		m, err := filter.NewMaterialMatcher(fc.MaterialPattern, fc.MaterialExact)
		if err != nil {
			return nil, err
		}
		f.Add(m)
	}
	if fc.CastlingSpec != "" {
		white, black, err := filter.ParseCastlingSpec(fc.CastlingSpec)
		if err != nil {
			return nil, err
		}
		f.Add(filter.NewCastling(white, black))
	}

	f.SetNegate(fc.Negate)
	return f, nil
}

// buildDetector creates the duplicate detector when any duplicate
// handling was requested, preloading the check file if one was named.
// The parallel path gets the thread-safe wrapper.
func buildDetector(cfg *config.Config, logger zerolog.Logger) (hashing.Checker, error) {
	if !cfg.Duplicate.Enabled() {
		return nil, nil
	}

	seed := hashing.NewDuplicateDetector(cfg.Duplicate.MaxPositions)

	if cfg.Duplicate.CheckFilename != "" {
		n, err := loadCheckFile(cfg.Duplicate.CheckFilename, seed, logger)
		if err != nil {
			return nil, err
		}
		logger.Info().
			Str("file", cfg.Duplicate.CheckFilename).
			Int("positions", n).
			Msg("loaded check file")
	}

	if cfg.Workers > 1 {
		detector := hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.MaxPositions)
		detector.LoadFromDetector(seed)
		return detector, nil
	}
	return seed, nil
}

// loadCheckFile marks every decodable position in the named file as
// already seen. Undecodable lines are logged and skipped.
func loadCheckFile(filename string, seed *hashing.DuplicateDetector, logger zerolog.Logger) (int, error) {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return 0, err
	}
	defer file.Close() //nolint:errcheck // read-only stream

	scanner := scan.NewScanner(file, filename)
	count := 0
	for {
		item, ok := scanner.Next()
		if !ok {
			break
		}
		pos, err := fen.Parse(item.Text)
		if err != nil {
			lineErr := &errors.LineError{
				Err:    err,
				Source: item.Source,
				Line:   item.Line,
				Input:  item.Text,
			}
			logger.Warn().Err(lineErr).Msg("check file line skipped")
			continue
		}
		seed.MarkSeen(pos)
		count++
	}
	return count, scanner.Err()
}
