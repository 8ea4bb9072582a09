// Package filter provides position filtering and matching capabilities.
package filter

import (
	"fmt"
	"strings"

	"github.com/lgbarn/fen-extract-go/internal/chess"
)

// PositionMatcher is implemented by anything that can judge whether a
// decoded position satisfies some criterion.
type PositionMatcher interface {
	// Match reports whether the position satisfies the criterion.
	Match(pos chess.Position) bool

	// Name returns a descriptive name for this matcher.
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires every matcher to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// String returns the boolean operator the mode stands for.
func (m MatchMode) String() string {
	if m == MatchAny {
		return "OR"
	}
	return "AND"
}

// CompositeMatcher combines member matchers under a single MatchMode.
type CompositeMatcher struct {
	matchers []PositionMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a composite over the given matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...PositionMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements PositionMatcher. An empty composite is vacuously
// true under MatchAll and false under MatchAny.
func (c *CompositeMatcher) Match(pos chess.Position) bool {
	if c.mode == MatchAny {
		return c.matchAny(pos)
	}
	return c.matchAll(pos)
}

func (c *CompositeMatcher) matchAll(pos chess.Position) bool {
	for _, m := range c.matchers {
		if !m.Match(pos) {
			return false
		}
	}
	return true
}

func (c *CompositeMatcher) matchAny(pos chess.Position) bool {
	for _, m := range c.matchers {
		if m.Match(pos) {
			return true
		}
	}
	return false
}

// Name implements PositionMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}
	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}
	return fmt.Sprintf("CompositeMatcher(%s: %s)", c.mode, strings.Join(names, ", "))
}

// Add appends a matcher to the composite.
func (c *CompositeMatcher) Add(m PositionMatcher) {
	c.matchers = append(c.matchers, m)
}

// Matchers returns the member matchers.
func (c *CompositeMatcher) Matchers() []PositionMatcher {
	return c.matchers
}

// Mode returns the match mode.
func (c *CompositeMatcher) Mode() MatchMode {
	return c.mode
}
