package transform

import (
	"strings"

	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/resume"
)

// AddRelevantSkills prepends a section carrying the top matched keywords
// that no existing detail already lists verbatim. The input is returned
// unchanged when there are no keywords or nothing new to add.
func AddRelevantSkills(sections []resume.TechSection, matched keywords.Count) []resume.TechSection {
	if len(matched) == 0 {
		return sections
	}

	existing := make(map[string]bool)
	for _, section := range sections {
		for _, detail := range section.Details {
			existing[strings.ToLower(detail)] = true
		}
	}

	var details []string
	for _, pair := range matched.Top(sectionKeywordLimit) {
		if existing[pair.Keyword] {
			continue
		}
		details = append(details, pair.Keyword)
	}
	if len(details) == 0 {
		return sections
	}
	if len(details) > sectionDetailLimit {
		details = details[:sectionDetailLimit]
	}

	relevant := resume.TechSection{Label: RelevantSectionLabel, Details: details}
	return append([]resume.TechSection{relevant}, sections...)
}
