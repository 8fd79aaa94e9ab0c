// Package observability provides formatted CLI output for optimization runs.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/kapabl/resumata/internal/ingestion"
	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/resume"
	"github.com/kapabl/resumata/internal/skills"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxKeywordsToShow caps the keyword report
	maxKeywordsToShow = 10
	// maxSectionsToShow caps the technology order box
	maxSectionsToShow = 5
)

// Printer handles run reporting. The boxed diagnostics only render in
// verbose mode; the keyword report always prints.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// NewVerbosePrinter creates a Printer that also renders boxed diagnostics
func NewVerbosePrinter(out io.Writer) *Printer {
	return &Printer{out: out, verbose: true}
}

// NoKeywords notes that the posting contained nothing recognizable.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) NoKeywords() {
	fmt.Fprintln(p.out, "No relevant keywords found in job posting")
}

// NoSafeKeywords notes that nothing matched the validated skills.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) NoSafeKeywords() {
	fmt.Fprintln(p.out, "No safe keywords found that match your validated skills")
}

// RejectedKeywords discloses the keywords the skills config does not
// vouch for. Nothing prints when the list is empty.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) RejectedKeywords(rejected []string) {
	if len(rejected) == 0 {
		return
	}
	fmt.Fprintf(p.out, "\n⚠️  Skipping keywords you haven't validated:\n")
	for _, keyword := range rejected {
		fmt.Fprintf(p.out, "   - %s\n", keyword)
	}
	fmt.Fprintf(p.out, "   Add them to your skills config if you want to include them.\n\n")
}

// SafeKeywords reports the keywords that survived the skills gate, most
// mentioned first.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) SafeKeywords(safe keywords.Count, registry *skills.Registry) {
	fmt.Fprintf(p.out, "Found %d safe, relevant keywords:\n", len(safe))
	for _, pair := range safe.Top(maxKeywordsToShow) {
		level := "unknown"
		if l, ok := registry.LevelOf(pair.Keyword); ok {
			level = l.String()
		}
		fmt.Fprintf(p.out, "  - %s: %d mentions (%s)\n", pair.Keyword, pair.Count, level)
	}
}

// Saved reports where the optimized resume was written.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.out, "Optimized resume saved to: %s\n", path)
}

// PrintJobPosting renders a boxed summary of the ingested posting.
func (p *Printer) PrintJobPosting(meta *ingestion.Metadata) {
	if !p.verbose || meta == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:   %s\n", meta.Path))
	sb.WriteString(fmt.Sprintf("Words:  %d\n", meta.Words))
	sb.WriteString(fmt.Sprintf("SHA256: %s", meta.Hash))

	p.printBox("JOB POSTING", sb.String())
}

// PrintTechnologyOrder renders the final order of technology sections.
func (p *Printer) PrintTechnologyOrder(sections []resume.TechSection) {
	if !p.verbose || len(sections) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(sections), maxSectionsToShow)
	for i := 0; i < count; i++ {
		section := sections[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, section.Label))
		details := strings.Join(section.Details, ", ")
		if len(details) > 40 {
			details = details[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", details))
	}
	if len(sections) > maxSectionsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more sections\n", len(sections)-maxSectionsToShow))
	}

	p.printBox("TECHNOLOGY SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}
