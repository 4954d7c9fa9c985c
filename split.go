package authorship

import "strings"

// Separators used to segment text.
const (
	SentenceSeparators = ".?!"
	PhraseSeparators   = ",;:"
)

// Split breaks text on any of the single-character separators. Every piece is
// trimmed of surrounding white space and empty pieces are dropped.
func Split(text, separators string) []string {
	var (
		parts []string
		buf   strings.Builder
	)
	flush := func() {
		if s := strings.TrimFunc(buf.String(), isSpace); s != "" {
			parts = append(parts, s)
		}
		buf.Reset()
	}
	for _, r := range text {
		if strings.ContainsRune(separators, r) {
			flush()
			continue
		}
		buf.WriteRune(r)
	}
	flush()
	return parts
}

// Sentences splits text into sentences ending in '.', '?' or '!'.
func Sentences(text string) []string {
	return Split(text, SentenceSeparators)
}

// Phrases splits a sentence into phrases separated by ',', ';' or ':'.
func Phrases(sentence string) []string {
	return Split(sentence, PhraseSeparators)
}
