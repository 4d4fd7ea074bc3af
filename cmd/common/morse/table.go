// Package morse translates between text and International Morse Code and
// turns Morse into timed pulse events for playback.
package morse

import "unicode"

// Unit is the dot/dash string for a single character, e.g. ".-" for 'A'.
type Unit string

const (
	// WordSeparator is the token emitted for a space and read back as a word boundary.
	WordSeparator Unit = "/"
	// UnknownUnit is emitted for characters that have no Morse representation.
	UnknownUnit Unit = "<?>"
	// UnknownChar is emitted for tokens that do not decode to any character.
	UnknownChar = '?'
)

var toMorse = map[rune]Unit{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '\'': ".----.",
	'!': "-.-.--", '/': "-..-.", '(': "-.--.", ')': "-.--.-",
	'&': ".-...", ':': "---...", ';': "-.-.-.", '=': "-...-",
	'+': ".-.-.", '-': "-....-", '_': "..--.-", '"': ".-..-.",
	'$': "...-..-", '@': ".--.-.",
	' ': WordSeparator,
}

// fromMorse is derived from toMorse once; the word separator is not a letter
// and stays out of it.
var fromMorse = invert(toMorse)

func invert(table map[rune]Unit) map[Unit]rune {
	out := make(map[Unit]rune, len(table))
	for r, u := range table {
		if u == WordSeparator {
			continue
		}
		out[u] = r
	}
	return out
}

// Lookup returns the unit for r after uppercasing it.
func Lookup(r rune) (Unit, bool) {
	u, ok := toMorse[unicode.ToUpper(r)]
	return u, ok
}

// Reverse returns the character encoded by u. Lookups are exact: no
// trimming or other normalization is applied.
func Reverse(u Unit) (rune, bool) {
	r, ok := fromMorse[u]
	return r, ok
}

// UnitFor is Lookup with UnknownUnit in place of a miss.
func UnitFor(r rune) Unit {
	if u, ok := Lookup(r); ok {
		return u
	}
	return UnknownUnit
}

// CharFor is Reverse with UnknownChar in place of a miss.
func CharFor(u Unit) rune {
	if r, ok := Reverse(u); ok {
		return r
	}
	return UnknownChar
}

// Alphabet returns every character with a Morse unit, the space excluded.
func Alphabet() []rune {
	out := make([]rune, 0, len(fromMorse))
	for r := range toMorse {
		if r != ' ' {
			out = append(out, r)
		}
	}
	return out
}
