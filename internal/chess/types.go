// Package chess provides the core position types shared by the FEN
// decoder and the command-line tool.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind.
type Piece int

const (
	Empty Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieces
)

// String returns the string representation of a piece kind.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Square is the content of one board square: a piece kind paired with
// its owning colour. The zero value is the empty square; the colour of
// an empty square carries no meaning and is never inspected.
type Square struct {
	Piece  Piece
	Colour Colour
}

// IsEmpty reports whether the square holds no piece.
func (s Square) IsEmpty() bool {
	return s.Piece == Empty
}

// String returns a readable description of the square content.
func (s Square) String() string {
	if s.IsEmpty() {
		return "empty"
	}
	return s.Colour.String() + " " + s.Piece.String()
}

// W creates a white square content for the given piece kind.
func W(piece Piece) Square {
	return Square{Piece: piece, Colour: White}
}

// B creates a black square content for the given piece kind.
func B(piece Piece) Square {
	return Square{Piece: piece, Colour: Black}
}

// CastlingRights represents one side's castling entitlement.
type CastlingRights int

const (
	NoCastling CastlingRights = iota
	KingSide
	QueenSide
	BothSides
)

// String returns the string representation of the rights.
func (r CastlingRights) String() string {
	switch r {
	case KingSide:
		return "kingside"
	case QueenSide:
		return "queenside"
	case BothSides:
		return "both"
	default:
		return "none"
	}
}

// Includes reports whether the rights cover the given single right.
// BothSides includes KingSide and QueenSide.
func (r CastlingRights) Includes(want CastlingRights) bool {
	if want == NoCastling {
		return true
	}
	if r == BothSides {
		return want == KingSide || want == QueenSide || want == BothSides
	}
	return r == want
}

// BoardSize is the number of ranks and files on the board.
const BoardSize = 8

// Coord is a zero-based board coordinate pair as produced by the FEN
// coordinate converter: File is the letter index ('a'..'h' maps to
// 0..7) and Row is eight minus the rank digit, so "e3" becomes {4, 5}.
type Coord struct {
	File int
	Row  int
}

// Name returns the algebraic form of the coordinate, such as "e3".
func (c Coord) Name() string {
	if c.File < 0 || c.File >= BoardSize || c.Row < 0 || c.Row >= BoardSize {
		return "??"
	}
	return string([]byte{byte('a' + c.File), byte('0' + BoardSize - c.Row)})
}
