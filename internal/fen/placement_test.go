package fen

import (
	"errors"
	"testing"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	ferrors "github.com/lgbarn/fen-extract-go/internal/errors"
)

// boardFromRows builds a board from eight 8-character diagram rows,
// using '.' for empty squares. The mapping is spelled out here rather
// than shared with the decoder so the tests stay an independent check.
func boardFromRows(t *testing.T, rows [8]string) chess.Board {
	t.Helper()

	var board chess.Board
	for r, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("diagram row %d has %d characters; want %d", r, len(row), chess.BoardSize)
		}
		for c := 0; c < chess.BoardSize; c++ {
			switch row[c] {
			case '.':
			case 'P':
				board[r][c] = chess.W(chess.Pawn)
			case 'N':
				board[r][c] = chess.W(chess.Knight)
			case 'B':
				board[r][c] = chess.W(chess.Bishop)
			case 'R':
				board[r][c] = chess.W(chess.Rook)
			case 'Q':
				board[r][c] = chess.W(chess.Queen)
			case 'K':
				board[r][c] = chess.W(chess.King)
			case 'p':
				board[r][c] = chess.B(chess.Pawn)
			case 'n':
				board[r][c] = chess.B(chess.Knight)
			case 'b':
				board[r][c] = chess.B(chess.Bishop)
			case 'r':
				board[r][c] = chess.B(chess.Rook)
			case 'q':
				board[r][c] = chess.B(chess.Queen)
			case 'k':
				board[r][c] = chess.B(chess.King)
			default:
				t.Fatalf("bad diagram character %q in row %d", row[c], r)
			}
		}
	}
	return board
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		want    [8]string
		wantErr bool
	}{
		{
			name:  "starting position",
			field: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			want: [8]string{
				"rnbqkbnr",
				"pppppppp",
				"........",
				"........",
				"........",
				"........",
				"PPPPPPPP",
				"RNBQKBNR",
			},
		},
		{
			name:  "middlegame tangle",
			field: "r1bk3r/p2pBpNp/n4n2/1p1NP2P/6P1/3P4/P1P1K3/q5b1",
			want: [8]string{
				"r.bk...r",
				"p..pBpNp",
				"n....n..",
				".p.NP..P",
				"......P.",
				"...P....",
				"P.P.K...",
				"q.....b.",
			},
		},
		{
			name:  "sparse endgame",
			field: "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8",
			want: [8]string{
				"........",
				".....k..",
				"...p....",
				".p.Pp..p",
				"pP..Pp.P",
				"P....P.K",
				"........",
				"........",
			},
		},
		{
			name:  "empty field leaves board empty",
			field: "",
			want: [8]string{
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
		},
		{
			name:  "digit overrun without a write is tolerated",
			field: "88/8/8/8/8/8/8/8",
			want: [8]string{
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
		},
		{
			name:  "extra empty rank groups are tolerated",
			field: "8/8/8/8/8/8/8/8/8",
			want: [8]string{
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
				"........",
			},
		},
		{
			name:    "invalid piece character",
			field:   "rnbqkbnr/ppppXppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
			wantErr: true,
		},
		{
			name:    "digit nine is not a skip",
			field:   "9/8/8/8/8/8/8/8",
			wantErr: true,
		},
		{
			name:    "digit zero is not a skip",
			field:   "0/8/8/8/8/8/8/8",
			wantErr: true,
		},
		{
			name:    "write past the right edge",
			field:   "rrrrrrrrr/8/8/8/8/8/8/8",
			wantErr: true,
		},
		{
			name:    "write past the last rank",
			field:   "8/8/8/8/8/8/8/8/r",
			wantErr: true,
		},
		{
			name:    "write after a full digit skip",
			field:   "8p/8/8/8/8/8/8/8",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := parsePlacement(tt.field)
			if tt.wantErr {
				if !errors.Is(err, ferrors.ErrMalformedFEN) {
					t.Fatalf("parsePlacement(%q) error = %v; want ErrMalformedFEN", tt.field, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePlacement(%q) error = %v", tt.field, err)
			}
			if want := boardFromRows(t, tt.want); board != want {
				t.Errorf("parsePlacement(%q) board mismatch", tt.field)
			}
		})
	}
}

func TestPieceFromChar(t *testing.T) {
	tests := []struct {
		char rune
		want chess.Square
		ok   bool
	}{
		{'K', chess.W(chess.King), true},
		{'Q', chess.W(chess.Queen), true},
		{'R', chess.W(chess.Rook), true},
		{'B', chess.W(chess.Bishop), true},
		{'N', chess.W(chess.Knight), true},
		{'P', chess.W(chess.Pawn), true},
		{'k', chess.B(chess.King), true},
		{'q', chess.B(chess.Queen), true},
		{'r', chess.B(chess.Rook), true},
		{'b', chess.B(chess.Bishop), true},
		{'n', chess.B(chess.Knight), true},
		{'p', chess.B(chess.Pawn), true},
		{'x', chess.Square{}, false},
		{'1', chess.Square{}, false},
		{'/', chess.Square{}, false},
		{' ', chess.Square{}, false},
	}

	for _, tt := range tests {
		got, ok := PieceFromChar(tt.char)
		if ok != tt.ok || got != tt.want {
			t.Errorf("PieceFromChar(%q) = (%v, %v); want (%v, %v)", tt.char, got, ok, tt.want, tt.ok)
		}
	}
}
