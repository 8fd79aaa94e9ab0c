package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_KnownNames(t *testing.T) {
	for _, expected := range Levels() {
		level, ok := ParseLevel(expected.String())
		require.True(t, ok)
		assert.Equal(t, expected, level)
	}

	level, ok := ParseLevel("  Expert ")
	require.True(t, ok)
	assert.Equal(t, LevelExpert, level)
}

func TestParseLevel_UnknownName(t *testing.T) {
	_, ok := ParseLevel("wizard")

	assert.False(t, ok)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "learning", LevelLearning.String())
	assert.Equal(t, "expert", LevelExpert.String())
	assert.Equal(t, "unknown", Level(42).String())
}

func TestLevels_LowestToHighest(t *testing.T) {
	levels := Levels()

	require.Len(t, levels, 4)
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
}
