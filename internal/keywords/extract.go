// Package keywords extracts technology keyword counts from job posting text.
package keywords

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/kapabl/resumata/internal/vocabulary"
)

// tokenPattern matches candidate keyword tokens in normalized text. The
// word boundaries trim leading and trailing dots and hyphens, so
// "node.js." yields the token "node.js".
var tokenPattern = regexp.MustCompile(`\b[\w.-]+\b`)

// Extractor scans text for occurrences of vocabulary terms.
type Extractor struct {
	vocab   *vocabulary.Vocabulary
	phrases map[string]*regexp.Regexp
}

// NewExtractor builds an extractor for the given vocabulary. Multi-word
// terms get a precompiled whole-phrase pattern.
func NewExtractor(vocab *vocabulary.Vocabulary) *Extractor {
	extractor := &Extractor{
		vocab:   vocab,
		phrases: make(map[string]*regexp.Regexp),
	}
	for _, term := range vocab.Terms() {
		if strings.Contains(term, " ") {
			extractor.phrases[term] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
		}
	}
	return extractor
}

// Extract counts every vocabulary term found in text. Single-word terms
// are matched against whole tokens; multi-word terms against whole
// phrases. Terms that never appear are absent from the result.
func (e *Extractor) Extract(text string) Count {
	normalized := normalize(text)

	tokens := tokenPattern.FindAllString(normalized, -1)
	tally := make(map[string]int, len(tokens))
	for _, token := range tokens {
		tally[token]++
	}

	counts := make(Count)
	for _, term := range e.vocab.Terms() {
		var n int
		if phrase, ok := e.phrases[term]; ok {
			n = len(phrase.FindAllString(normalized, -1))
		} else {
			n = tally[term]
		}
		if n > 0 {
			counts[term] = n
		}
	}
	return counts
}

// normalize lowercases text and replaces every rune that is not a letter,
// digit, whitespace, dot, or hyphen with a single space. Terms built from
// other characters ("c++", "ci/cd") therefore never match.
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsSpace(r), r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}
