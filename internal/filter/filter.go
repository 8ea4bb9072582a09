package filter

import (
	"strings"

	"github.com/lgbarn/fen-extract-go/internal/chess"
)

// Filter combines the configured position criteria. All criteria must
// match (AND logic); SetNegate flips the combined verdict.
type Filter struct {
	matchers []PositionMatcher
	negate   bool
}

// New creates an empty filter. A filter with no criteria matches every
// position.
func New() *Filter {
	return &Filter{}
}

// Add appends a criterion to the filter.
func (f *Filter) Add(m PositionMatcher) {
	f.matchers = append(f.matchers, m)
}

// SetNegate flips the combined verdict. Note that negating a filter
// with no criteria matches nothing.
func (f *Filter) SetNegate(negate bool) {
	f.negate = negate
}

// Negated reports whether the combined verdict is flipped.
func (f *Filter) Negated() bool {
	return f.negate
}

// HasCriteria returns true if any filter criteria are set.
func (f *Filter) HasCriteria() bool {
	return len(f.matchers) > 0
}

// Matches checks the position against all criteria.
func (f *Filter) Matches(pos chess.Position) bool {
	verdict := true
	for _, m := range f.matchers {
		if !m.Match(pos) {
			verdict = false
			break
		}
	}
	if f.negate {
		return !verdict
	}
	return verdict
}

// Match implements PositionMatcher.
func (f *Filter) Match(pos chess.Position) bool {
	return f.Matches(pos)
}

// Name implements PositionMatcher.
func (f *Filter) Name() string {
	if len(f.matchers) == 0 {
		return "Filter(empty)"
	}

	names := make([]string, len(f.matchers))
	for i, m := range f.matchers {
		names[i] = m.Name()
	}

	prefix := "Filter"
	if f.negate {
		prefix = "Filter(NOT)"
	}
	return prefix + "(" + strings.Join(names, ", ") + ")"
}
