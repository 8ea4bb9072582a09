package filter

import (
	"errors"
	"testing"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	ferrors "github.com/lgbarn/fen-extract-go/internal/errors"
	"github.com/lgbarn/fen-extract-go/internal/fen"
	"github.com/lgbarn/fen-extract-go/internal/testutil"
)

func TestNewMaterialMatcher(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		exact     bool
		wantWhite map[chess.Piece]int
		wantBlack map[chess.Piece]int
	}{
		{
			name:    "queen vs queen",
			pattern: "Q:q",
			wantWhite: map[chess.Piece]int{
				chess.Queen: 1,
			},
			wantBlack: map[chess.Piece]int{
				chess.Queen: 1,
			},
		},
		{
			name:    "queen and rook vs queen and two rooks",
			pattern: "QR:qrr",
			wantWhite: map[chess.Piece]int{
				chess.Queen: 1,
				chess.Rook:  1,
			},
			wantBlack: map[chess.Piece]int{
				chess.Queen: 1,
				chess.Rook:  2,
			},
		},
		{
			name:    "king only vs king only",
			pattern: "K:k",
			exact:   true,
			wantWhite: map[chess.Piece]int{
				chess.King: 1,
			},
			wantBlack: map[chess.Piece]int{
				chess.King: 1,
			},
		},
		{
			name:    "white only pattern",
			pattern: "KQ",
			wantWhite: map[chess.Piece]int{
				chess.King:  1,
				chess.Queen: 1,
			},
			wantBlack: map[chess.Piece]int{},
		},
		{
			name:      "empty pattern",
			pattern:   "",
			wantWhite: map[chess.Piece]int{},
			wantBlack: map[chess.Piece]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, tt.exact)
			if err != nil {
				t.Fatalf("NewMaterialMatcher(%q) error = %v", tt.pattern, err)
			}
			if mm.exactMatch != tt.exact {
				t.Errorf("exactMatch = %v, want %v", mm.exactMatch, tt.exact)
			}
			for piece := chess.Pawn; piece < chess.NumPieces; piece++ {
				if mm.white[piece] != tt.wantWhite[piece] {
					t.Errorf("white[%v] = %d, want %d", piece, mm.white[piece], tt.wantWhite[piece])
				}
				if mm.black[piece] != tt.wantBlack[piece] {
					t.Errorf("black[%v] = %d, want %d", piece, mm.black[piece], tt.wantBlack[piece])
				}
			}
		})
	}
}

func TestNewMaterialMatcherInvalid(t *testing.T) {
	patterns := []string{
		"X:q",
		"Q:Z",
		"q",
		"QR:KQ",
		"Q R:q",
	}

	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			_, err := NewMaterialMatcher(pattern, false)
			if err == nil {
				t.Fatalf("NewMaterialMatcher(%q) error = nil, want error", pattern)
			}
			if !errors.Is(err, ferrors.ErrInvalidConfig) {
				t.Errorf("error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestMaterialMatcherMinimal(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		fen     string
		want    bool
	}{
		{
			name:    "queens present",
			pattern: "Q:q",
			fen:     "3qk3/8/8/8/8/8/8/3QK3 w - - 0 40",
			want:    true,
		},
		{
			name:    "rook missing",
			pattern: "QR:q",
			fen:     "3qk3/8/8/8/8/8/8/3QK3 w - - 0 40",
			want:    false,
		},
		{
			name:    "starting position has full material",
			pattern: "QR:qrr",
			fen:     fen.StartingFEN,
			want:    true,
		},
		{
			name:    "three rooks not present",
			pattern: "RRR:",
			fen:     fen.StartingFEN,
			want:    false,
		},
		{
			name:    "empty pattern matches anything",
			pattern: "",
			fen:     "3qk3/8/8/8/8/8/8/3QK3 w - - 0 40",
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, false)
			testutil.AssertNoError(t, err)

			pos := testutil.MustParsePosition(t, tt.fen)
			if got := mm.Match(pos); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialMatcherExact(t *testing.T) {
	queenEndgame := "3qk3/8/8/8/8/8/8/3QK3 w - - 0 40"

	tests := []struct {
		name    string
		pattern string
		fen     string
		want    bool
	}{
		{
			name:    "exact queen endgame",
			pattern: "KQ:kq",
			fen:     queenEndgame,
			want:    true,
		},
		{
			name:    "kings must be listed",
			pattern: "Q:q",
			fen:     queenEndgame,
			want:    false,
		},
		{
			name:    "extra material rejected",
			pattern: "KQ:kq",
			fen:     fen.StartingFEN,
			want:    false,
		},
		{
			name:    "full starting material",
			pattern: "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp",
			fen:     fen.StartingFEN,
			want:    true,
		},
		{
			name:    "one pawn short",
			pattern: "KQRRBBNNPPPPPPPP:kqrrbbnnpppppppp",
			fen:     "rnbqkbnr/ppp1pppp/8/3P4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mm, err := NewMaterialMatcher(tt.pattern, true)
			testutil.AssertNoError(t, err)

			pos := testutil.MustParsePosition(t, tt.fen)
			if got := mm.Match(pos); got != tt.want {
				t.Errorf("Match() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaterialMatcherHasCriteria(t *testing.T) {
	with, err := NewMaterialMatcher("Q:q", false)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, with.HasCriteria())

	without, err := NewMaterialMatcher("", false)
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, without.HasCriteria())
}

func TestMaterialMatcherName(t *testing.T) {
	minimal, err := NewMaterialMatcher("QR:qrr", false)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, minimal.Name(), "Material(min QR:qrr)")

	exact, err := NewMaterialMatcher("K:k", true)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, exact.Name(), "Material(exact K:k)")
}
