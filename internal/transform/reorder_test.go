package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/resume"
)

func section(label string, details ...string) resume.TechSection {
	return resume.TechSection{Label: label, Details: details}
}

func labels(sections []resume.TechSection) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Label
	}
	return out
}

func TestReorderTechnologies_MatchedKeywordsFirst(t *testing.T) {
	sections := []resume.TechSection{
		section("Frontend", "React", "CSS"),
		section("Infrastructure", "Docker", "Kubernetes"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{"docker": 3})

	assert.Equal(t, []string{"Infrastructure", "Frontend"}, labels(reordered))
}

func TestReorderTechnologies_MatchesSubstrings(t *testing.T) {
	sections := []resume.TechSection{
		section("Databases", "MySQL"),
		section("Cloud", "Deployed on AWS Lambda"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{"aws": 2})

	assert.Equal(t, []string{"Cloud", "Databases"}, labels(reordered))
}

func TestReorderTechnologies_HigherCountsOutrankLowerOnes(t *testing.T) {
	sections := []resume.TechSection{
		section("A", "uses java"),
		section("B", "uses python"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{"python": 5, "java": 1})

	assert.Equal(t, []string{"B", "A"}, labels(reordered))
}

func TestReorderTechnologies_MentionsAccumulateAcrossDetails(t *testing.T) {
	sections := []resume.TechSection{
		section("Solo", "Go"),
		section("Heavy", "Go services", "Golang tooling"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{"go": 1})

	assert.Equal(t, []string{"Heavy", "Solo"}, labels(reordered))
}

func TestReorderTechnologies_TiesKeepOriginalOrder(t *testing.T) {
	sections := []resume.TechSection{
		section("First", "React"),
		section("Second", "Vue"),
		section("Third", "Angular"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{})

	assert.Equal(t, []string{"First", "Second", "Third"}, labels(reordered))
}

func TestReorderTechnologies_IsAPermutation(t *testing.T) {
	sections := []resume.TechSection{
		section("A", "Python"),
		section("B", "Docker"),
		section("C", "Redis"),
	}

	reordered := ReorderTechnologies(sections, keywords.Count{"redis": 5, "python": 1})

	require.Len(t, reordered, len(sections))
	assert.ElementsMatch(t, labels(sections), labels(reordered))
}

func TestReorderTechnologies_Empty(t *testing.T) {
	assert.Empty(t, ReorderTechnologies(nil, keywords.Count{"go": 1}))
	assert.Empty(t, ReorderTechnologies([]resume.TechSection{}, keywords.Count{"go": 1}))
}
