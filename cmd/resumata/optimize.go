package main

import (
	"github.com/spf13/cobra"

	"github.com/kapabl/resumata/internal/pipeline"
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <resume> <job-posting>",
	Short: "Optimize a resume for a job posting",
	Long:  "Extract technology keywords from a job posting, keep the ones the skills config validates, and save a copy of the resume with matching sections first, an enhanced summary, and a job-relevant skills section.",
	Args:  cobra.ExactArgs(2),
	RunE:  runOptimize,
}

var (
	optimizeOutput  string
	optimizeSkills  string
	optimizeReport  string
	optimizeVerbose bool
)

func init() {
	optimizeCmd.Flags().StringVarP(&optimizeOutput, "output", "o", "", "Output path (default resumes/generated/optimized_resume_<job>.<ext>)")
	optimizeCmd.Flags().StringVarP(&optimizeSkills, "skills-config", "s", defaultSkillsPath, "Path to the skills config")
	optimizeCmd.Flags().StringVar(&optimizeReport, "report", "", "Write a JSON run report to this path")
	optimizeCmd.Flags().BoolVarP(&optimizeVerbose, "verbose", "v", false, "Print job posting and section details")

	rootCmd.AddCommand(optimizeCmd)
}

func runOptimize(cmd *cobra.Command, args []string) error {
	return pipeline.Run(pipeline.Options{
		ResumePath: args[0],
		JobPath:    args[1],
		OutputPath: optimizeOutput,
		SkillsPath: optimizeSkills,
		ReportPath: optimizeReport,
		Verbose:    optimizeVerbose,
		Stdout:     cmd.OutOrStdout(),
		Stderr:     cmd.ErrOrStderr(),
	})
}
