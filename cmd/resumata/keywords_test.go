package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordsCommand_RankedOutput(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	skillsPath := filepath.Join(dir, "skills.yaml")
	writeTestFile(t, jobPath, "Python, python, and Docker.")
	writeTestFile(t, skillsPath, "expert:\n  - python\n")

	stdout, stderr, err := execute(t, "keywords", jobPath, "--skills-config", skillsPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "✓ python")
	assert.Contains(t, lines[0], "(expert)")
	assert.Contains(t, lines[1], "docker")
	assert.Contains(t, lines[1], "(unknown)")
}

func TestKeywordsCommand_NoKeywords(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	writeTestFile(t, jobPath, "We value teamwork and communication.")

	stdout, _, err := execute(t, "keywords", jobPath, "--skills-config", filepath.Join(dir, "skills.yaml"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "No relevant keywords found in job posting")
}

func TestKeywordsCommand_BadSkillsConfigWarns(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "job.txt")
	skillsPath := filepath.Join(dir, "skills.yaml")
	writeTestFile(t, jobPath, "python")
	writeTestFile(t, skillsPath, "expert: [unclosed")

	stdout, stderr, err := execute(t, "keywords", jobPath, "--skills-config", skillsPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Error loading skills config:")
	assert.Contains(t, stdout, "python")
}

func TestKeywordsCommand_MissingPosting(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "keywords", filepath.Join(dir, "missing.txt"), "--skills-config", filepath.Join(dir, "skills.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job posting")
}
