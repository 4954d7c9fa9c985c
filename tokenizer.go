package authorship

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Punctuation is the set of characters stripped from both ends of a word.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// isSpace reports whether r separates words. It also accepts the ASCII
// information separators (file, group, record and unit separator).
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Clean lowercases word and strips punctuation from both of its ends.
// Interior punctuation such as the hyphen in "card-board" is kept.
func Clean(word string) string {
	return clean(cases.Lower(language.Und), word)
}

func clean(lower cases.Caser, word string) string {
	return strings.Trim(lower.String(word), Punctuation)
}

// Words splits text on white space and returns the cleaned, non-empty words
// in order of appearance. Duplicates are kept.
func Words(text string) []string {
	fields := strings.FieldsFunc(text, isSpace)
	lower := cases.Lower(language.Und)
	words := fields[:0]
	for _, f := range fields {
		if w := clean(lower, f); w != "" {
			words = append(words, w)
		}
	}
	return words
}
