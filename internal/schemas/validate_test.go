package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleResult() *types.MatchResult {
	return &types.MatchResult{
		Score:           78.5,
		MatchedKeywords: []string{"python", "sql"},
		MissingKeywords: []string{"kubernetes"},
		AspectScores: types.AspectScores{
			Skills:       82.1,
			Experience:   100,
			Achievements: 80,
			Education:    70,
			CulturalFit:  50,
		},
		AchievementBonus: 10,
		Recommendations: []string{
			"Strong technical skills match. Highlight specific achievements in these areas.",
		},
		Analysis: "Good match with strong potential.",
	}
}

func TestEmbeddedSchema_ValidJSON(t *testing.T) {
	var v map[string]interface{}
	err := json.Unmarshal([]byte(MatchResultSchema()), &v)
	require.NoError(t, err, "embedded schema should be valid JSON")

	_, hasSchema := v["$schema"]
	_, hasProps := v["properties"]
	assert.True(t, hasSchema && hasProps)
}

func TestValidateMatchResult_Valid(t *testing.T) {
	err := ValidateMatchResult(sampleResult())
	assert.NoError(t, err)
}

func TestValidateMatchResult_Nil(t *testing.T) {
	err := ValidateMatchResult(nil)
	assert.Error(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	payload := `{
		"score": 50,
		"matchedKeywords": [],
		"missingKeywords": [],
		"achievementBonus": 0,
		"recommendations": []
	}`

	err := ValidateJSONString(MatchResultSchema(), payload)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSONString_ScoreOutOfRange(t *testing.T) {
	result := sampleResult()
	result.Score = 150

	payload, err := json.Marshal(result)
	require.NoError(t, err)

	err = ValidateJSONString(MatchResultSchema(), string(payload))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)

	found := false
	for _, fe := range validationErr.Errors {
		if fe.Field == "score" {
			found = true
		}
	}
	assert.True(t, found, "score violation should be reported with its field path")
}

func TestValidateJSONString_MalformedDocument(t *testing.T) {
	err := ValidateJSONString(MatchResultSchema(), "{not json")
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "malformed document should surface as SchemaLoadError")
}

func TestValidateResultFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	payload, err := json.Marshal(sampleResult())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, payload, 0o644))

	assert.NoError(t, ValidateResultFile(path))
}

func TestValidateResultFile_NotFound(t *testing.T) {
	err := ValidateResultFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
