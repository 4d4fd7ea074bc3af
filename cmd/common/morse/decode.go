package morse

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// wordBoundary matches a slash with any whitespace around it, or a run of
// two or more whitespace characters. Both mean the same thing.
var wordBoundary = regexp.MustCompile(`\s*/\s*|\s{2,}`)

// splitWords trims code and splits it into words of letter tokens. Two
// adjacent slashes leave an empty word between them.
func splitWords(code string) [][]string {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil
	}
	return lo.Map(wordBoundary.Split(code, -1), func(word string, _ int) []string {
		return strings.Fields(word)
	})
}

// Decode converts Morse back to text. Letters within a word are joined
// directly and words are joined by one space. Tokens that are not valid
// Morse decode to UnknownChar.
func Decode(code string) string {
	return Parse(code).Text()
}
