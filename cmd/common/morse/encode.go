package morse

import "github.com/samber/lo"

// Encode converts text to Morse. Every rune yields exactly one token, joined
// by single spaces: spaces become WordSeparator and unmapped runes become
// UnknownUnit.
func Encode(text string) string {
	return EncodeSequence(text).String()
}

// EncodeSequence is Encode without the final join.
func EncodeSequence(text string) Sequence {
	return lo.Map([]rune(text), func(r rune, _ int) Unit {
		return UnitFor(r)
	})
}
