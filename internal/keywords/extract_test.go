package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kapabl/resumata/internal/vocabulary"
)

func TestExtract_CountsSingleWordTerms(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("We use Python and python daily. Java too.")

	assert.Equal(t, Count{"python": 2, "java": 1}, counts)
}

func TestExtract_CountsMultiWordPhrases(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("Experience with Google Cloud and Machine Learning. machine learning rocks.")

	assert.Equal(t, Count{"google cloud": 1, "machine learning": 2}, counts)
}

func TestExtract_MatchesWholeTokensOnly(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("JavaScript developers write javascript, not Java.")

	assert.Equal(t, 2, counts["javascript"])
	assert.Equal(t, 1, counts["java"])
}

func TestExtract_MatchesWholePhrasesOnly(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("We do machine learnings here.")

	assert.NotContains(t, counts, "machine learning")
}

func TestExtract_KeepsDotsInTokens(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("Node.js, node.js! We ship node.js.")

	assert.Equal(t, Count{"node.js": 3}, counts)
}

func TestExtract_StripsPunctuation(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("Python! (Java) [Go] {Rust}; docker?")

	assert.Equal(t, Count{"python": 1, "java": 1, "go": 1, "rust": 1, "docker": 1}, counts)
}

func TestExtract_TermsWithSpecialCharactersNeverMatch(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	counts := extractor.Extract("C++ and C# experts needed for CI/CD.")

	assert.Empty(t, counts)
}

func TestExtract_NoVocabularyTerms(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())

	assert.Empty(t, extractor.Extract("Friendly nursing role in a busy clinic."))
	assert.Empty(t, extractor.Extract(""))
}

func TestExtract_Deterministic(t *testing.T) {
	extractor := NewExtractor(vocabulary.Default())
	text := "Kubernetes, Docker, and AWS. Kubernetes again."

	first := extractor.Extract(text)
	second := extractor.Extract(text)

	assert.Equal(t, first, second)
	assert.Equal(t, Count{"kubernetes": 2, "docker": 1, "aws": 1}, first)
}

func TestExtract_CustomVocabulary(t *testing.T) {
	extractor := NewExtractor(vocabulary.New([]string{"cobol", "mainframe ops"}))

	counts := extractor.Extract("COBOL and mainframe ops, plus python.")

	assert.Equal(t, Count{"cobol": 1, "mainframe ops": 1}, counts)
}
