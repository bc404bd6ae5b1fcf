package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSkillsVocabularyOrder(t *testing.T) {
	// react appears before python in the text; vocabulary order wins.
	content := "Built React dashboards, then moved to Python services"

	skills := ExtractSkills(content)

	require.Contains(t, skills, "python")
	require.Contains(t, skills, "react")
	assert.Less(t, indexOf(skills, "python"), indexOf(skills, "react"))
}

func TestExtractSkillsCaseInsensitive(t *testing.T) {
	skills := ExtractSkills("PYTHON and Docker and kubernetes")

	assert.Contains(t, skills, "python")
	assert.Contains(t, skills, "docker")
	assert.Contains(t, skills, "kubernetes")
}

func TestExtractSkillsSubstringMatches(t *testing.T) {
	// Substring matching is deliberate: "javascript" also matches "java".
	skills := ExtractSkills("expert in javascript")

	assert.Equal(t, []string{"javascript", "java"}, skills)
}

func TestExtractSkillsDeterministic(t *testing.T) {
	content := "python react aws docker sql agile git"

	first := ExtractSkills(content)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ExtractSkills(content))
	}
}

func TestExtractSkillsNoDuplicatesAndCap(t *testing.T) {
	// Text that mentions the whole vocabulary.
	content := strings.Repeat(strings.Join(skillVocabulary, " ")+" ", 2)

	skills := ExtractSkills(content)

	assert.Len(t, skills, MaxSkills)

	seen := make(map[string]bool)
	for _, skill := range skills {
		assert.False(t, seen[skill], "duplicate skill %q", skill)
		seen[skill] = true
	}
}

func TestExtractSkillsEmptyText(t *testing.T) {
	assert.Empty(t, ExtractSkills(""))
	assert.Empty(t, ExtractSkills("nothing relevant here"))
}

func indexOf(list []string, want string) int {
	for i, s := range list {
		if s == want {
			return i
		}
	}
	return -1
}
