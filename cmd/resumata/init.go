package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kapabl/resumata/internal/skills"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter skills config",
	Long:  "Write a commented starter skills config so the proficiency lists can be filled in before the first optimization run.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

var (
	initPath  string
	initForce bool
)

func init() {
	initCmd.Flags().StringVarP(&initPath, "path", "p", defaultSkillsPath, "Where to write the skills config")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	if !initForce {
		if _, err := os.Stat(initPath); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", initPath)
		}
	}

	if dir := filepath.Dir(initPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(initPath, []byte(skills.StarterYAML), 0644); err != nil {
		return fmt.Errorf("failed to write skills config: %w", err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created skills config: %s\n", initPath)
	return nil
}
