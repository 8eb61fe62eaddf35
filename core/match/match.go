// core/match/match.go
package match

import (
	"bytes"
	"errors"
)

// ErrEmptyPattern is returned when a matcher is built from zero bytes.
var ErrEmptyPattern = errors.New("empty pattern")

// Matcher tests a single line against a fixed pattern.
type Matcher interface {
	Match(line []byte) bool
}

// Literal matches lines containing a fixed byte sequence anywhere.
// Comparison is byte-exact: case-sensitive, no normalization, every byte
// value (including NUL) is significant.
type Literal struct {
	pattern []byte
}

// NewLiteral copies pattern into an immutable Literal matcher.
func NewLiteral(pattern []byte) (Literal, error) {
	if len(pattern) == 0 {
		return Literal{}, ErrEmptyPattern
	}
	return Literal{pattern: append([]byte(nil), pattern...)}, nil
}

// Match reports whether line contains the pattern as a contiguous
// subsequence. Multiple occurrences are indistinguishable from one.
func (m Literal) Match(line []byte) bool { return bytes.Contains(line, m.pattern) }

// String returns the pattern for diagnostics.
func (m Literal) String() string { return string(m.pattern) }

// Invert returns a Matcher selecting exactly the lines m rejects.
func Invert(m Matcher) Matcher { return inverted{m} }

type inverted struct{ m Matcher }

func (i inverted) Match(line []byte) bool { return !i.m.Match(line) }
