package openai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jobsift/jobsift/internal/core"
)

func TestParseAnalysis(t *testing.T) {
	analysis, err := parseAnalysis(`{"category":"interview","company":"Initech","position":"Software Engineer","confidence":0.92}`)

	require.NoError(t, err)
	assert.Equal(t, "interview", analysis.Category)
	assert.Equal(t, "Initech", analysis.Company)
	assert.Equal(t, "Software Engineer", analysis.Position)
	assert.InDelta(t, 0.92, analysis.Confidence, 1e-9)
}

func TestParseAnalysisEmbeddedJSON(t *testing.T) {
	text := "Here is the analysis:\n```json\n{\"category\": \"offers\", \"company\": \"Hooli\", \"position\": \"\", \"confidence\": 0.6}\n```\nLet me know if you need anything else."

	analysis, err := parseAnalysis(text)

	require.NoError(t, err)
	assert.Equal(t, "offers", analysis.Category)
	assert.Equal(t, "Hooli", analysis.Company)
	assert.Empty(t, analysis.Position)
}

func TestParseAnalysisNoJSON(t *testing.T) {
	_, err := parseAnalysis("I cannot analyze that email.")
	assert.Error(t, err)
}

func TestToResult(t *testing.T) {
	c := &Client{modelName: "gpt-4o-mini", logger: zap.NewNop()}

	result := c.toResult(&AnalysisResponse{
		Category:   " Interview ",
		Company:    " Initech ",
		Position:   "Software Engineer",
		Confidence: 0.8,
	})

	assert.Equal(t, core.CategoryInterview, result.Category)
	assert.Equal(t, "Initech", result.Company)
	assert.Equal(t, "Software Engineer", result.Position)
	assert.InDelta(t, 0.8, result.Confidence, 1e-9)
	assert.Equal(t, "gpt-4o-mini", result.ModelUsed)
}

func TestToResultUnrecognizedCategory(t *testing.T) {
	c := &Client{modelName: "gpt-4o-mini", logger: zap.NewNop()}

	result := c.toResult(&AnalysisResponse{Category: "follow-up"})

	assert.Equal(t, core.CategoryUnknown, result.Category)
}
