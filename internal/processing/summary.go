// Package processing derives per-position summary facts for the
// filters and the report writers.
package processing

import (
	"strings"

	"github.com/lgbarn/fen-extract-go/internal/chess"
)

// Summary condenses a decoded position into the facts the report
// writers consume: the bookkeeping fields plus piece counts per kind
// per side.
type Summary struct {
	ToMove        chess.Colour
	WhiteCastling chess.CastlingRights
	BlackCastling chess.CastlingRights
	EnPassant     string
	HalfMoves     uint
	FullMoves     uint
	PieceCount    int
	Counts        [2][chess.NumPieces]int
}

// Summarize walks the board once and returns the summary for pos.
func Summarize(pos chess.Position) Summary {
	s := Summary{
		ToMove:        pos.ToMove,
		WhiteCastling: pos.WhiteCastling,
		BlackCastling: pos.BlackCastling,
		EnPassant:     pos.EPName(),
		HalfMoves:     pos.HalfMoves,
		FullMoves:     pos.FullMoves,
	}

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := pos.Board[row][col]
			if sq.IsEmpty() {
				continue
			}
			s.Counts[sq.Colour][sq.Piece]++
			s.PieceCount++
		}
	}

	return s
}

// CountOf returns the number of pieces of the given kind and colour.
func (s Summary) CountOf(colour chess.Colour, piece chess.Piece) int {
	if piece <= chess.Empty || piece >= chess.NumPieces {
		return 0
	}
	return s.Counts[colour][piece]
}

// SideCount returns the total number of pieces the given side has,
// kings included.
func (s Summary) SideCount(colour chess.Colour) int {
	total := 0
	for piece := chess.Pawn; piece < chess.NumPieces; piece++ {
		total += s.Counts[colour][piece]
	}
	return total
}

// Material returns the material signature: white letters, a colon, then
// black letters, each side listed king first and pawns last. The
// starting position yields "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp".
func (s Summary) Material() string {
	order := [...]chess.Piece{chess.King, chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn}

	var sb strings.Builder
	for _, piece := range order {
		for i := 0; i < s.Counts[chess.White][piece]; i++ {
			sb.WriteByte(piece.Letter())
		}
	}
	sb.WriteByte(':')
	for _, piece := range order {
		for i := 0; i < s.Counts[chess.Black][piece]; i++ {
			sb.WriteByte(piece.Letter() - 'A' + 'a')
		}
	}
	return sb.String()
}

// InsufficientMaterial reports whether neither side retains enough
// material to force mate: bare kings, a lone minor piece against a bare
// king, or a single bishop each with both bishops on same-shade squares.
func InsufficientMaterial(pos chess.Position) bool {
	var whiteMinors, blackMinors []chess.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := pos.Board[row][col]
			if sq.IsEmpty() || sq.Piece == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material.
			if sq.Piece == chess.Pawn || sq.Piece == chess.Rook || sq.Piece == chess.Queen {
				return false
			}

			if sq.Colour == chess.White {
				whiteMinors = append(whiteMinors, sq.Piece)
				if sq.Piece == chess.Bishop {
					whiteBishopOnLight = lightSquare(row, col)
				}
			} else {
				blackMinors = append(blackMinors, sq.Piece)
				if sq.Piece == chess.Bishop {
					blackBishopOnLight = lightSquare(row, col)
				}
			}
		}
	}

	// K vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whiteMinors) == 0 && len(blackMinors) == 1 {
		return true
	}
	if len(blackMinors) == 0 && len(whiteMinors) == 1 {
		return true
	}

	// K+B vs K+B with both bishops on the same shade
	if len(whiteMinors) == 1 && len(blackMinors) == 1 {
		if whiteMinors[0] == chess.Bishop && blackMinors[0] == chess.Bishop {
			return whiteBishopOnLight == blackBishopOnLight
		}
	}

	return false
}

// lightSquare reports whether the square at row, col is light. Row 0
// is the eighth rank, so a8 at (0, 0) is light.
func lightSquare(row, col int) bool {
	return (row+col)%2 == 0
}
