package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kapabl/resumata/internal/ingestion"
	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/skills"
)

// Report is the JSON artifact describing one optimization run.
type Report struct {
	RunID       string              `json:"run_id"`
	GeneratedAt string              `json:"generated_at"` // RFC3339 format
	ResumePath  string              `json:"resume_path"`
	OutputPath  string              `json:"output_path"`
	JobPosting  *ingestion.Metadata `json:"job_posting"`
	Keywords    []ReportKeyword     `json:"keywords"`
}

// ReportKeyword is one extracted keyword with its gate outcome.
type ReportKeyword struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
	Level   string `json:"level"`
	Safe    bool   `json:"safe"`
}

// NewReport assembles the artifact rows for one run, keywords ranked
// most mentioned first.
func NewReport(resumePath, outputPath string, meta *ingestion.Metadata, counts keywords.Count, registry *skills.Registry) *Report {
	report := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		ResumePath:  resumePath,
		OutputPath:  outputPath,
		JobPosting:  meta,
	}
	for _, pair := range counts.Ranked() {
		level := "unknown"
		if l, ok := registry.LevelOf(pair.Keyword); ok {
			level = l.String()
		}
		report.Keywords = append(report.Keywords, ReportKeyword{
			Keyword: pair.Keyword,
			Count:   pair.Count,
			Level:   level,
			Safe:    registry.IsValidated(pair.Keyword, skills.LevelFamiliar),
		})
	}
	return report
}

// Write saves the report as pretty-printed JSON, creating parent
// directories as needed.
func (r *Report) Write(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run report: %w", err)
	}
	return nil
}
