package authorship

import (
	"errors"
	"unicode/utf8"
)

// ErrEmptyInput is returned when a text has no words or no sentences to average over.
var ErrEmptyInput = errors.New("authorship: text has no words or sentences")

// AverageWordLength returns the mean number of characters per word.
func AverageWordLength(text string) (float64, error) {
	return averageWordLength(Words(text))
}

// TypeTokenRatio returns the number of distinct words divided by the number of words.
func TypeTokenRatio(text string) (float64, error) {
	return typeTokenRatio(Words(text))
}

// HapaxRatio returns the number of words used exactly once divided by the number of words.
func HapaxRatio(text string) (float64, error) {
	return hapaxRatio(Words(text))
}

// AverageSentenceLength returns the mean number of words per sentence.
func AverageSentenceLength(text string) (float64, error) {
	return averageSentenceLength(Sentences(text))
}

// AverageSentenceComplexity returns the mean number of phrases per sentence.
func AverageSentenceComplexity(text string) (float64, error) {
	return averageSentenceComplexity(Sentences(text))
}

func averageWordLength(words []string) (float64, error) {
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return float64(total) / float64(len(words)), nil
}

func typeTokenRatio(words []string) (float64, error) {
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}
	return float64(len(frequencies(words))) / float64(len(words)), nil
}

func hapaxRatio(words []string) (float64, error) {
	if len(words) == 0 {
		return 0, ErrEmptyInput
	}
	once := 0
	for _, n := range frequencies(words) {
		if n == 1 {
			once++
		}
	}
	return float64(once) / float64(len(words)), nil
}

// frequencies counts occurrences of each word over the full list.
func frequencies(words []string) map[string]int {
	freq := make(map[string]int, len(words))
	for _, w := range words {
		freq[w]++
	}
	return freq
}

func averageSentenceLength(sentences []string) (float64, error) {
	if len(sentences) == 0 {
		return 0, ErrEmptyInput
	}
	total := 0
	for _, s := range sentences {
		total += len(Words(s))
	}
	return float64(total) / float64(len(sentences)), nil
}

// Phrases are counted on the raw sentence, before any word cleaning.
func averageSentenceComplexity(sentences []string) (float64, error) {
	if len(sentences) == 0 {
		return 0, ErrEmptyInput
	}
	total := 0
	for _, s := range sentences {
		total += len(Phrases(s))
	}
	return float64(total) / float64(len(sentences)), nil
}
