// Package main provides the resumata command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultSkillsPath is where commands look for the skills config when no
// --skills-config flag is given.
const defaultSkillsPath = "config/skills.yaml"

var rootCmd = &cobra.Command{
	Use:   "resumata",
	Short: "Tailor a resume to a job posting",
	Long:  "Resumata reorders and annotates a YAML resume so the technologies a job posting asks for surface first. A skills config gates every change: only keywords you have validated at familiar or above are ever added.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
