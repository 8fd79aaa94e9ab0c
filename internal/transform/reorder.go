// Package transform rewrites resume content to surface the skills a job
// posting asks for.
package transform

import (
	"sort"
	"strings"

	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/resume"
)

const (
	// keywordWeight multiplies each keyword mention when scoring a section
	keywordWeight = 10
	// summaryKeywordLimit caps how many keywords are woven into the summary
	summaryKeywordLimit = 3
	// sectionKeywordLimit caps how many keywords feed the injected section
	sectionKeywordLimit = 8
	// sectionDetailLimit caps how many details the injected section carries
	sectionDetailLimit = 6
)

// RelevantSectionLabel names the section injected ahead of the existing
// technologies.
const RelevantSectionLabel = "Job-Relevant Technologies"

// ReorderTechnologies sorts sections so the ones mentioning matched
// keywords come first. Equal scores keep their original order, and the
// result is always a permutation of the input.
func ReorderTechnologies(sections []resume.TechSection, matched keywords.Count) []resume.TechSection {
	if len(sections) == 0 {
		return sections
	}

	type scoredSection struct {
		section resume.TechSection
		score   int
	}
	scored := make([]scoredSection, len(sections))
	for i, section := range sections {
		scored[i] = scoredSection{section: section, score: sectionScore(section, matched)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	reordered := make([]resume.TechSection, len(scored))
	for i, s := range scored {
		reordered[i] = s.section
	}
	return reordered
}

// sectionScore weighs a section by how often matched keywords appear as
// substrings of its detail strings.
func sectionScore(section resume.TechSection, matched keywords.Count) int {
	score := 0
	for _, detail := range section.Details {
		detailLower := strings.ToLower(detail)
		for keyword, count := range matched {
			if strings.Contains(detailLower, keyword) {
				score += count * keywordWeight
			}
		}
	}
	return score
}
