package morse

import (
	"strings"

	"github.com/samber/lo"
)

// Sequence is one message as an ordered list of units and word separators.
type Sequence []Unit

// Parse reads Morse notation into a Sequence using the same boundary rules
// as Decode, so "/" and multi-space separators produce identical results.
func Parse(code string) Sequence {
	var seq Sequence
	for i, letters := range splitWords(code) {
		if i > 0 {
			seq = append(seq, WordSeparator)
		}
		for _, token := range letters {
			seq = append(seq, Unit(token))
		}
	}
	return seq
}

// String renders the sequence in canonical notation: single spaces between
// tokens and "/" for word boundaries.
func (s Sequence) String() string {
	return strings.Join(lo.Map(s, func(u Unit, _ int) string { return string(u) }), " ")
}

// Text decodes the sequence.
func (s Sequence) Text() string {
	var b strings.Builder
	for _, u := range s {
		if u == WordSeparator {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(CharFor(u))
	}
	return b.String()
}

// Elements returns the dots and dashes of u. Anything else is dropped, so a
// placeholder such as UnknownUnit has no elements.
func (u Unit) Elements() []rune {
	return lo.Filter([]rune(string(u)), func(r rune, _ int) bool {
		return r == '.' || r == '-'
	})
}
