package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute resets flag state, runs the root command with args, and
// captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag-bound package variables to their defaults so
// tests do not leak state into each other.
func resetFlags() {
	optimizeOutput = ""
	optimizeSkills = defaultSkillsPath
	optimizeReport = ""
	optimizeVerbose = false
	keywordsSkills = defaultSkillsPath
	initPath = defaultSkillsPath
	initForce = false
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestRootCommand_UnknownSubcommand(t *testing.T) {
	_, _, err := execute(t, "no-such-command")
	require.Error(t, err)
}
