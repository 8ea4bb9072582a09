package fen

import (
	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/errors"
)

// parseCastling decodes the castling availability field into per-side
// rights. A '-' stops the walk immediately and returns whatever has
// accumulated, even when later characters would be invalid. Uppercase
// letters update White's rights, lowercase Black's.
func parseCastling(field string) (white, black chess.CastlingRights, err error) {
	for _, c := range field {
		switch c {
		case '-':
			return white, black, nil
		case 'K':
			white = mergeRights(white, chess.KingSide)
		case 'Q':
			white = mergeRights(white, chess.QueenSide)
		case 'k':
			black = mergeRights(black, chess.KingSide)
		case 'q':
			black = mergeRights(black, chess.QueenSide)
		default:
			return chess.NoCastling, chess.NoCastling, &errors.FieldError{Err: errors.ErrMalformedFEN, Field: "castling", Token: string(c)}
		}
	}
	return white, black, nil
}

// mergeRights folds one castling update into a side's accumulated
// rights. King-side and queen-side combine to BothSides in either
// order; every other combination is overwritten by the update, so an
// update arriving after BothSides narrows the rights to just the
// updated side.
func mergeRights(current, update chess.CastlingRights) chess.CastlingRights {
	if (current == chess.KingSide && update == chess.QueenSide) ||
		(current == chess.QueenSide && update == chess.KingSide) {
		return chess.BothSides
	}
	return update
}
