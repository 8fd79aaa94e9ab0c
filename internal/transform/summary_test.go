package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhanceSummary_ExtendsFinalSentence(t *testing.T) {
	enhanced := EnhanceSummary("Backend engineer.", []string{"python", "go"})

	assert.Equal(t, "Backend engineer, including expertise in python, go.", enhanced)
}

func TestEnhanceSummary_AppendsWithoutTrailingPeriod(t *testing.T) {
	enhanced := EnhanceSummary("Backend engineer", []string{"python", "go"})

	assert.Equal(t, "Backend engineer Experienced with python, go.", enhanced)
}

func TestEnhanceSummary_SkipsKeywordsAlreadyMentioned(t *testing.T) {
	summary := "Python and Go engineer."

	assert.Equal(t, summary, EnhanceSummary(summary, []string{"python", "go"}))
}

func TestEnhanceSummary_MixedPresence(t *testing.T) {
	enhanced := EnhanceSummary("Ships Go services.", []string{"go", "python", "aws"})

	assert.Equal(t, "Ships Go services, including expertise in python, aws.", enhanced)
}

func TestEnhanceSummary_ConsidersOnlyTopThree(t *testing.T) {
	enhanced := EnhanceSummary("Engineer", []string{"python", "go", "docker", "aws"})

	assert.Equal(t, "Engineer Experienced with python, go, docker.", enhanced)
}

func TestEnhanceSummary_NoKeywords(t *testing.T) {
	assert.Equal(t, "Engineer.", EnhanceSummary("Engineer.", nil))
}
