package filter

import (
	"testing"

	"github.com/lgbarn/fen-extract-go/internal/chess"
	"github.com/lgbarn/fen-extract-go/internal/fen"
	"github.com/lgbarn/fen-extract-go/internal/testutil"
)

func TestFilterNoCriteria(t *testing.T) {
	f := New()

	if f.HasCriteria() {
		t.Error("HasCriteria() = true for empty filter")
	}
	if !f.Matches(testutil.MustParsePosition(t, fen.StartingFEN)) {
		t.Error("empty filter rejected a position")
	}
	if !f.Matches(chess.Position{}) {
		t.Error("empty filter rejected the zero position")
	}
}

func TestFilterAllCriteriaMustMatch(t *testing.T) {
	endgame := testutil.MustParsePosition(t, "3qk3/8/8/8/8/8/8/3QK3 w - - 4 40")

	f := New()
	f.Add(NewActiveColour(chess.White))
	f.Add(NewPieceCountBounds(2, 10))

	if !f.HasCriteria() {
		t.Error("HasCriteria() = false with two criteria")
	}
	if !f.Matches(endgame) {
		t.Error("filter rejected position matching all criteria")
	}

	f.Add(NewHalfMoveBounds(50, Unbounded))
	if f.Matches(endgame) {
		t.Error("filter accepted position failing one criterion")
	}
}

func TestFilterNegate(t *testing.T) {
	endgame := testutil.MustParsePosition(t, "3qk3/8/8/8/8/8/8/3QK3 w - - 4 40")

	f := New()
	f.Add(NewActiveColour(chess.Black))
	if f.Matches(endgame) {
		t.Fatal("filter matched before negation")
	}

	f.SetNegate(true)
	if !f.Negated() {
		t.Error("Negated() = false after SetNegate(true)")
	}
	if !f.Matches(endgame) {
		t.Error("negated filter rejected non-matching position")
	}
}

func TestFilterNegateWithoutCriteria(t *testing.T) {
	// An empty filter matches everything, so its negation matches nothing.
	f := New()
	f.SetNegate(true)

	if f.Matches(testutil.MustParsePosition(t, fen.StartingFEN)) {
		t.Error("negated empty filter matched a position")
	}
}

func TestFilterName(t *testing.T) {
	f := New()
	testutil.AssertEqual(t, f.Name(), "Filter(empty)")

	f.Add(NewEnPassant())
	testutil.AssertContains(t, f.Name(), "EnPassant")

	f.SetNegate(true)
	testutil.AssertContains(t, f.Name(), "NOT")
}

func TestFilterAsPositionMatcher(t *testing.T) {
	inner := New()
	inner.Add(NewActiveColour(chess.White))

	outer := NewCompositeMatcher(MatchAll, inner, NewPieceCountBounds(0, 40))
	if !outer.Match(testutil.MustParsePosition(t, fen.StartingFEN)) {
		t.Error("composite over filter rejected matching position")
	}
}
