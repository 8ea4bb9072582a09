package filter

import (
	"errors"
	"testing"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	ferrors "github.com/lgbarn/fen-extract-go/internal/errors"
	"github.com/lgbarn/fen-extract-go/internal/fen"
	"github.com/lgbarn/fen-extract-go/internal/testutil"
)

func TestActiveColourMatcher(t *testing.T) {
	whiteToMove := testutil.MustParsePosition(t, fen.StartingFEN)
	blackToMove := testutil.MustParsePosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")

	white := NewActiveColour(chess.White)
	if !white.Match(whiteToMove) {
		t.Error("white matcher rejected position with white to move")
	}
	if white.Match(blackToMove) {
		t.Error("white matcher accepted position with black to move")
	}

	black := NewActiveColour(chess.Black)
	if !black.Match(blackToMove) {
		t.Error("black matcher rejected position with black to move")
	}

	testutil.AssertContains(t, white.Name(), "White")
}

func TestEnPassantMatcher(t *testing.T) {
	withTarget := testutil.MustParsePosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	withoutTarget := testutil.MustParsePosition(t, fen.StartingFEN)

	m := NewEnPassant()
	if !m.Match(withTarget) {
		t.Error("rejected position with en-passant target")
	}
	if m.Match(withoutTarget) {
		t.Error("accepted position without en-passant target")
	}
	if m.Name() != "EnPassant" {
		t.Errorf("Name() = %q, want EnPassant", m.Name())
	}
}

func TestHalfMoveBounds(t *testing.T) {
	pos := testutil.MustParsePosition(t, "8/5k2/8/8/8/8/5K2/8 w - - 12 34")

	tests := []struct {
		name     string
		min, max uint
		want     bool
	}{
		{"inside both bounds", 10, 20, true},
		{"at lower bound", 12, 20, true},
		{"at upper bound", 10, 12, true},
		{"below lower bound", 13, Unbounded, false},
		{"above upper bound", 0, 11, false},
		{"open upper bound", 5, Unbounded, true},
		{"zero to unbounded", 0, Unbounded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewHalfMoveBounds(tt.min, tt.max)
			if got := m.Match(pos); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFullMoveBounds(t *testing.T) {
	pos := testutil.MustParsePosition(t, "8/5k2/8/8/8/8/5K2/8 w - - 12 34")

	if !NewFullMoveBounds(34, 34).Match(pos) {
		t.Error("exact bound rejected matching counter")
	}
	if NewFullMoveBounds(35, Unbounded).Match(pos) {
		t.Error("lower bound above counter matched")
	}
	if NewFullMoveBounds(0, 33).Match(pos) {
		t.Error("upper bound below counter matched")
	}
}

func TestBoundsNames(t *testing.T) {
	testutil.AssertEqual(t, NewHalfMoveBounds(2, 10).Name(), "HalfMoves[2..10]")
	testutil.AssertEqual(t, NewHalfMoveBounds(2, Unbounded).Name(), "HalfMoves[2..]")
	testutil.AssertEqual(t, NewFullMoveBounds(0, 40).Name(), "FullMoves[0..40]")
}

func TestPieceCountBounds(t *testing.T) {
	endgame := testutil.MustParsePosition(t, "3qk3/8/8/8/8/8/8/3QK3 w - - 0 40")

	tests := []struct {
		name     string
		min, max int
		want     bool
	}{
		{"inside", 2, 10, true},
		{"exact", 4, 4, true},
		{"too many required", 5, 64, false},
		{"too few allowed", 0, 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPieceCountBounds(tt.min, tt.max)
			if got := m.Match(endgame); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePieceRange(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantLo  int
		wantHi  int
		wantErr bool
	}{
		{"simple range", "2:10", 2, 10, false},
		{"full board", "0:64", 0, 64, false},
		{"single value range", "4:4", 4, 4, false},
		{"missing colon", "7", 0, 0, true},
		{"too many parts", "1:2:3", 0, 0, true},
		{"bad lower", "x:10", 0, 0, true},
		{"bad upper", "2:y", 0, 0, true},
		{"inverted", "10:2", 0, 0, true},
		{"negative lower", "-1:5", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := ParsePieceRange(tt.spec)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePieceRange(%q) error = nil, want error", tt.spec)
				}
				if !errors.Is(err, ferrors.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParsePieceRange(%q) error = %v", tt.spec, err)
			}
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("ParsePieceRange(%q) = (%d, %d), want (%d, %d)", tt.spec, lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestCastlingMatcher(t *testing.T) {
	full := testutil.MustParsePosition(t, fen.StartingFEN)
	whiteKingOnly := testutil.MustParsePosition(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w K - 0 1")

	tests := []struct {
		name         string
		white, black chess.CastlingRights
		pos          chess.Position
		want         bool
	}{
		{"no requirement", chess.NoCastling, chess.NoCastling, whiteKingOnly, true},
		{"kingside within both", chess.KingSide, chess.NoCastling, full, true},
		{"full requirement on full rights", chess.BothSides, chess.BothSides, full, true},
		{"kingside only satisfies kingside", chess.KingSide, chess.NoCastling, whiteKingOnly, true},
		{"queenside missing", chess.QueenSide, chess.NoCastling, whiteKingOnly, false},
		{"black requirement missing", chess.NoCastling, chess.KingSide, whiteKingOnly, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCastling(tt.white, tt.black)
			if got := m.Match(tt.pos); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCastlingSpec(t *testing.T) {
	tests := []struct {
		name      string
		spec      string
		wantWhite chess.CastlingRights
		wantBlack chess.CastlingRights
		wantErr   bool
	}{
		{"full", "KQkq", chess.BothSides, chess.BothSides, false},
		{"white kingside", "K", chess.KingSide, chess.NoCastling, false},
		{"black only", "kq", chess.NoCastling, chess.BothSides, false},
		{"reordered accumulates", "QK", chess.BothSides, chess.NoCastling, false},
		{"repeated letter", "KK", chess.KingSide, chess.NoCastling, false},
		{"dash", "-", chess.NoCastling, chess.NoCastling, false},
		{"empty", "", chess.NoCastling, chess.NoCastling, false},
		{"invalid letter", "Kx", chess.NoCastling, chess.NoCastling, true},
		{"dash inside", "K-q", chess.NoCastling, chess.NoCastling, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			white, black, err := ParseCastlingSpec(tt.spec)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCastlingSpec(%q) error = nil, want error", tt.spec)
				}
				if !errors.Is(err, ferrors.ErrInvalidConfig) {
					t.Errorf("error = %v, want ErrInvalidConfig", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseCastlingSpec(%q) error = %v", tt.spec, err)
			}
			if white != tt.wantWhite || black != tt.wantBlack {
				t.Errorf("ParseCastlingSpec(%q) = (%v, %v), want (%v, %v)",
					tt.spec, white, black, tt.wantWhite, tt.wantBlack)
			}
		})
	}
}

func TestParseColour(t *testing.T) {
	if c, err := ParseColour("w"); err != nil || c != chess.White {
		t.Errorf("ParseColour(w) = (%v, %v), want (White, nil)", c, err)
	}
	if c, err := ParseColour("b"); err != nil || c != chess.Black {
		t.Errorf("ParseColour(b) = (%v, %v), want (Black, nil)", c, err)
	}

	for _, spec := range []string{"", "W", "B", "white", "x"} {
		if _, err := ParseColour(spec); !errors.Is(err, ferrors.ErrInvalidConfig) {
			t.Errorf("ParseColour(%q) error = %v, want ErrInvalidConfig", spec, err)
		}
	}
}
