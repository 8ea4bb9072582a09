// Package fen decodes Forsyth-Edwards Notation records into typed
// positions. The decoder keeps no state and is safe for concurrent use
// from any number of goroutines.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// StartingFEN is the FEN record for the standard starting position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fieldCount is the number of FEN fields a record must carry.
const fieldCount = 6

// Parse decodes a FEN record into a Position. The record must contain
// at least six space-separated fields; fields beyond the sixth are
// ignored. Fields are decoded in a fixed order (active colour before
// piece placement) and the first failure aborts the decode. Every
// returned error unwraps to one of the sentinel kinds in the errors
// package: ErrMalformedFEN, ErrInvalidCoordinates or ErrInvalidNumber.
func Parse(s string) (chess.Position, error) {
	fields, err := splitFields(s)
	if err != nil {
		return chess.Position{}, err
	}

	var pos chess.Position

	pos.ToMove, err = parseActiveColour(fields[1])
	if err != nil {
		return chess.Position{}, err
	}

	pos.Board, err = parsePlacement(fields[0])
	if err != nil {
		return chess.Position{}, err
	}

	pos.WhiteCastling, pos.BlackCastling, err = parseCastling(fields[2])
	if err != nil {
		return chess.Position{}, err
	}

	pos.EnPassant, pos.EPTarget, err = parseEnPassant(fields[3])
	if err != nil {
		return chess.Position{}, err
	}

	pos.HalfMoves, err = parseMoveCount(fields[4], "half moves")
	if err != nil {
		return chess.Position{}, err
	}

	pos.FullMoves, err = parseMoveCount(fields[5], "full moves")
	if err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// splitFields cuts a record into its six fields. The split is on
// single spaces with no trimming, so a leading space produces an empty
// first field and shifts the rest.
func splitFields(s string) ([]string, error) {
	fields := strings.Split(s, " ")
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("expected %d fields, got %d: %w", fieldCount, len(fields), errors.ErrMalformedFEN)
	}
	return fields[:fieldCount], nil
}

// parseActiveColour parses the side-to-move field.
func parseActiveColour(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return 0, &errors.FieldError{Err: errors.ErrMalformedFEN, Field: "active colour", Token: field}
}

// parseEnPassant parses the en-passant field. "-" means no target;
// anything else goes through the coordinate converter and its error,
// if any, propagates unchanged.
func parseEnPassant(field string) (bool, chess.Coord, error) {
	if field == "-" {
		return false, chess.Coord{}, nil
	}
	target, err := convertCoordinates(field)
	if err != nil {
		return false, chess.Coord{}, err
	}
	return true, target, nil
}

// parseMoveCount parses a move counter field as an unsigned base-10
// integer. Signs, stray characters, empty fields and overflow all
// produce ErrInvalidNumber.
func parseMoveCount(field, name string) (uint, error) {
	n, err := strconv.ParseUint(field, 10, strconv.IntSize)
	if err != nil {
		return 0, &errors.FieldError{Err: errors.ErrInvalidNumber, Field: name, Token: field}
	}
	return uint(n), nil
}

// StartingPosition returns the standard starting position.
func StartingPosition() chess.Position {
	pos, _ := Parse(StartingFEN)
	return pos
}
