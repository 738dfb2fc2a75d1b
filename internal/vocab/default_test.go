package vocab

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CasingKeysAreLowercase(t *testing.T) {
	v := Default()
	require.NotEmpty(t, v.Technical)

	for _, cat := range v.Technical {
		require.NotNil(t, cat.Pattern, "category %s has no pattern", cat.Name)
		for key := range cat.Casing {
			assert.Equal(t, strings.ToLower(key), key,
				"casing key %q in category %s must be lower-case", key, cat.Name)
		}
	}
}

func TestDefault_CriticalSkillsSubsetOfImportant(t *testing.T) {
	v := Default()

	important := make(map[string]bool, len(v.ImportantSkills))
	for _, s := range v.ImportantSkills {
		important[s] = true
	}
	for s := range v.CriticalSkills {
		assert.True(t, important[s], "critical skill %q missing from important list", s)
	}
}

func TestDefault_SectionTablesConsistent(t *testing.T) {
	v := Default()

	canonical := make(map[string]bool, len(v.CanonicalSections))
	for _, name := range v.CanonicalSections {
		canonical[name] = true
	}
	for _, sp := range v.SectionPatterns {
		assert.True(t, canonical[sp.Name], "section pattern %q not in canonical order", sp.Name)
	}
	for name, aliases := range v.SectionAliases {
		assert.True(t, canonical[name], "alias target %q not canonical", name)
		for _, alias := range aliases {
			assert.True(t, canonical[alias], "alias source %q not canonical", alias)
		}
	}
	for name := range v.SectionIndicators {
		assert.True(t, canonical[name], "indicator section %q not canonical", name)
	}
	for name := range v.HeaderKeywords {
		assert.True(t, canonical[name], "header keyword section %q not canonical", name)
	}
}

func TestDefault_ExperiencePatternsCaptureYears(t *testing.T) {
	v := Default()
	require.Len(t, v.ExperiencePatterns, 2)

	m := v.ExperiencePatterns[0].FindStringSubmatch("5+ years of experience")
	require.Len(t, m, 2)
	assert.Equal(t, "5", m[1])

	m = v.ExperiencePatterns[1].FindStringSubmatch("experience of 3 years")
	require.Len(t, m, 2)
	assert.Equal(t, "3", m[1])
}

func TestDefault_EducationLevelsRanked(t *testing.T) {
	v := Default()

	assert.Equal(t, 100, v.EducationLevels["phd"])
	assert.Greater(t, v.EducationLevels["master"], v.EducationLevels["bachelor"])
	assert.Greater(t, v.EducationLevels["bachelor"], v.EducationLevels["diploma"])
	assert.Equal(t, 20, v.EducationLevels["high school"])
}
