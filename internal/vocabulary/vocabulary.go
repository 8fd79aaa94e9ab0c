// Package vocabulary defines the technology term set scanned for in job postings.
package vocabulary

import (
	"sort"
	"strings"
)

// defaultTerms lists the technology names recognized during keyword
// extraction. Entries are lowercase; multi-word entries are matched as
// whole phrases rather than individual tokens.
var defaultTerms = []string{
	// Programming languages
	"python", "java", "javascript", "typescript", "go", "rust", "c++", "c#",
	"kotlin", "scala", "ruby", "php",

	// Frameworks and libraries
	"react", "vue", "angular", "node.js", "nodejs", "express", "django",
	"flask", "spring", "springboot",

	// Cloud and infrastructure
	"aws", "azure", "gcp", "google cloud", "kubernetes", "k8s", "docker",
	"containers", "terraform", "ansible",

	// Databases
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "dynamodb",
	"cassandra", "sqlite",

	// DevOps and CI/CD
	"jenkins", "github actions", "gitlab ci", "ci/cd", "cicd", "devops",
	"monitoring", "prometheus", "grafana",

	// Build systems and tools
	"bazel", "gradle", "maven", "webpack", "git", "jira", "confluence",

	// Methodologies
	"agile", "scrum", "microservices", "rest api", "graphql", "tdd",
	"unit testing",

	// AI/ML
	"machine learning", "ai", "tensorflow", "pytorch", "data science",
	"nlp", "computer vision",
}

// Vocabulary is an immutable set of lowercase technology terms.
type Vocabulary struct {
	terms map[string]bool
}

// Default returns the built-in technology vocabulary.
func Default() *Vocabulary {
	return New(defaultTerms)
}

// New builds a vocabulary from the given terms. Terms are trimmed and
// lowercased; empty entries are dropped and the input is not retained.
func New(terms []string) *Vocabulary {
	set := make(map[string]bool, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			set[term] = true
		}
	}
	return &Vocabulary{terms: set}
}

// Contains reports whether term is in the vocabulary (case-insensitive).
func (v *Vocabulary) Contains(term string) bool {
	return v.terms[strings.ToLower(term)]
}

// Len returns the number of terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns the vocabulary in sorted order.
func (v *Vocabulary) Terms() []string {
	terms := make([]string, 0, len(v.terms))
	for term := range v.terms {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
