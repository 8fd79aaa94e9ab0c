package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kapabl/resumata/internal/ingestion"
	"github.com/kapabl/resumata/internal/keywords"
	"github.com/kapabl/resumata/internal/skills"
	"github.com/kapabl/resumata/internal/vocabulary"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords <job-posting>",
	Short: "Show the keywords a job posting would contribute",
	Long:  "Extract and rank technology keywords from a job posting without touching any resume. Keywords the skills config validates at familiar or above are marked with a check.",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeywords,
}

var keywordsSkills string

func init() {
	keywordsCmd.Flags().StringVarP(&keywordsSkills, "skills-config", "s", defaultSkillsPath, "Path to the skills config")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// 1. Load the skills registry; a bad config is reported, not fatal.
	registry, err := skills.Load(keywordsSkills)
	if err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error loading skills config: %v\n", err)
	}

	// 2. Read the posting and extract keywords.
	jobText, _, err := ingestion.ReadJobPosting(args[0])
	if err != nil {
		return err
	}

	extractor := keywords.NewExtractor(vocabulary.Default())
	counts := extractor.Extract(jobText)
	if len(counts) == 0 {
		_, _ = fmt.Fprintln(out, "No relevant keywords found in job posting")
		return nil
	}

	// 3. Print one line per keyword, most mentioned first.
	for _, pair := range counts.Ranked() {
		marker := " "
		if registry.IsValidated(pair.Keyword, skills.LevelFamiliar) {
			marker = "✓"
		}
		level := "unknown"
		if l, ok := registry.LevelOf(pair.Keyword); ok {
			level = l.String()
		}
		_, _ = fmt.Fprintf(out, "%s %-20s %3d  (%s)\n", marker, pair.Keyword, pair.Count, level)
	}
	return nil
}
