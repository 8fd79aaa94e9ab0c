// Package pipeline orchestrates a single resume optimization run.
package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kapabl/resumata/internal/ingestion"
	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/observability"
	"github.com/kapabl/resumata/internal/resume"
	"github.com/kapabl/resumata/internal/skills"
	"github.com/kapabl/resumata/internal/transform"
	"github.com/kapabl/resumata/internal/vocabulary"
)

// Options holds configuration for one optimization run.
type Options struct {
	ResumePath string
	JobPath    string
	OutputPath string // empty means DefaultOutputPath
	SkillsPath string
	ReportPath string // empty means no report artifact
	Verbose    bool

	// Stdout and Stderr default to the process streams; tests inject
	// buffers here.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one optimization: load the skills registry and the
// resume, read the posting, extract keywords, transform, save. Resume
// and posting load failures abort the run; a broken skills config only
// costs its entries.
func Run(opts Options) error {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	printer := observability.NewPrinter(stdout)
	if opts.Verbose {
		printer = observability.NewVerbosePrinter(stdout)
	}

	// 1. Load the skills registry; a bad config is reported, not fatal.
	registry, err := skills.Load(opts.SkillsPath)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "Error loading skills config: %v\n", err)
	}

	// 2. Load the resume.
	doc, err := resume.Load(opts.ResumePath)
	if err != nil {
		return err
	}

	// 3. Read the job posting.
	jobText, meta, err := ingestion.ReadJobPosting(opts.JobPath)
	if err != nil {
		return err
	}
	printer.PrintJobPosting(meta)

	// 4. Extract keywords and transform the resume.
	extractor := keywords.NewExtractor(vocabulary.Default())
	jobKeywords := extractor.Extract(jobText)

	optimizer := transform.NewOptimizer(registry, printer)
	optimizer.Optimize(doc, jobKeywords)

	if sections, ok := doc.Technologies(); ok {
		printer.PrintTechnologyOrder(sections)
	}

	// 5. Save the optimized resume.
	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = DefaultOutputPath(opts.ResumePath, opts.JobPath)
	}
	if err := doc.Save(outputPath); err != nil {
		return err
	}
	printer.Saved(outputPath)

	// 6. Optionally persist the run report artifact.
	if opts.ReportPath != "" {
		report := NewReport(opts.ResumePath, outputPath, meta, jobKeywords, registry)
		if err := report.Write(opts.ReportPath); err != nil {
			_, _ = fmt.Fprintf(stderr, "Warning: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(stdout, "Run report: %s\n", opts.ReportPath)
		}
	}

	return nil
}

// DefaultOutputPath derives the output location from the inputs: the job
// file's stem names the file and the resume's extension carries over, so
// the output stays in the input's format.
func DefaultOutputPath(resumePath, jobPath string) string {
	stem := strings.TrimSuffix(filepath.Base(jobPath), filepath.Ext(jobPath))
	ext := filepath.Ext(resumePath)
	if ext == "" {
		ext = ".yaml"
	}
	return filepath.Join("resumes", "generated", "optimized_resume_"+stem+ext)
}
