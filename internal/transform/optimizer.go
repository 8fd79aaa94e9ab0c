package transform

import (
	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/observability"
	"github.com/kapabl/resumata/internal/resume"
	"github.com/kapabl/resumata/internal/skills"
)

// Optimizer applies the full keyword-driven transformation to a resume
// and reports the outcome through the printer.
type Optimizer struct {
	registry *skills.Registry
	printer  *observability.Printer
}

// NewOptimizer creates an Optimizer backed by the given skills registry.
func NewOptimizer(registry *skills.Registry, printer *observability.Printer) *Optimizer {
	return &Optimizer{registry: registry, printer: printer}
}

// Optimize rewrites doc in place based on the keywords found in the job
// posting and returns it. Only the summary and the technologies section
// are touched; everything else stays exactly as loaded.
//
// The summary is enhanced with proficient-or-better keywords only; the
// technologies section is reordered by every safe keyword, then topped
// with a section of familiar-or-better keywords not already listed.
func (o *Optimizer) Optimize(doc *resume.Document, jobKeywords keywords.Count) *resume.Document {
	if len(jobKeywords) == 0 {
		o.printer.NoKeywords()
		return doc
	}

	safe, rejected := o.registry.FilterSafe(jobKeywords, skills.LevelFamiliar)
	o.printer.RejectedKeywords(rejected)

	if len(safe) == 0 {
		o.printer.NoSafeKeywords()
		return doc
	}

	o.printer.SafeKeywords(safe, o.registry)

	if summary, ok := doc.Summary(); ok {
		proficient := o.subset(safe, skills.LevelProficient)
		doc.SetSummary(EnhanceSummary(summary, proficient.Names()))
	}

	if sections, ok := doc.Technologies(); ok {
		sections = ReorderTechnologies(sections, safe)
		familiar := o.subset(safe, skills.LevelFamiliar)
		sections = AddRelevantSkills(sections, familiar)
		doc.SetTechnologies(sections)
	}

	return doc
}

// subset keeps the counts validated at min or higher.
func (o *Optimizer) subset(counts keywords.Count, min skills.Level) keywords.Count {
	filtered := make(keywords.Count)
	for keyword, count := range counts {
		if o.registry.IsValidated(keyword, min) {
			filtered[keyword] = count
		}
	}
	return filtered
}
