package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnalysis_RawTextAlwaysPreserved(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain narrative", "The crop looks healthy and well watered."},
		{"empty", ""},
		{"structured answer", "Disease: blight\nConfidence: 82%\n1. Remove affected leaves immediately"},
		{"unicode", "ಬೆಳೆ ಚೆನ್ನಾಗಿದೆ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAnalysis(tt.text)
			assert.Equal(t, tt.text, result.Analysis)
		})
	}
}

func TestParseAnalysis_DiseaseExtraction(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // empty means no detection
	}{
		{"no known term", "The plant appears vigorous and green.", ""},
		{"single term", "Symptoms point to early blight on the lower leaves.", "Blight"},
		{"case insensitive", "BACTERIAL infection is likely.", "Bacterial"},
		{"two-word term title cased", "Severe leaf spot visible on most leaves.", "Leaf Spot"},
		{"priority order not position", "We see rust here, though blight is also possible.", "Blight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseAnalysis(tt.text)
			if tt.want == "" {
				assert.Nil(t, result.DiseaseDetected)
				return
			}
			require.NotNil(t, result.DiseaseDetected)
			assert.Equal(t, tt.want, *result.DiseaseDetected)
		})
	}
}

func TestParseAnalysis_ConfidenceExtraction(t *testing.T) {
	result := ParseAnalysis("Diagnosis made with confidence: 82% based on lesion shape.")
	require.NotNil(t, result.ConfidenceScore)
	assert.InDelta(t, 0.82, *result.ConfidenceScore, 1e-9)
}

func TestParseAnalysis_ConfidenceNoMatch(t *testing.T) {
	result := ParseAnalysis("I'm fairly sure this is nutrient deficiency.")
	assert.Nil(t, result.ConfidenceScore)
}

// The percent pattern is last in priority order: it must only fire after the
// three confidence-anchored patterns all failed to match anywhere.
func TestParseAnalysis_PercentPatternReachedLast(t *testing.T) {
	result := ParseAnalysis("I estimate 90 percent confidence in this diagnosis.")
	require.NotNil(t, result.ConfidenceScore)
	assert.InDelta(t, 0.90, *result.ConfidenceScore, 1e-9)
}

// Once an earlier pattern matches anywhere, later patterns are never
// consulted even when they would bind a different number. Documented
// limitation, locked in here.
func TestParseAnalysis_FirstPatternWinsOverLaterMatches(t *testing.T) {
	result := ParseAnalysis("Confidence: 75 overall, though the visual match alone is 80% confidence.")
	require.NotNil(t, result.ConfidenceScore)
	assert.InDelta(t, 0.80, *result.ConfidenceScore, 1e-9)

	result = ParseAnalysis("Confidence: 75 overall based on the lesion pattern.")
	require.NotNil(t, result.ConfidenceScore)
	assert.InDelta(t, 0.75, *result.ConfidenceScore, 1e-9)
}

func TestParseAnalysis_RemedyBeatsAction(t *testing.T) {
	result := ParseAnalysis("Apply neem oil spray twice a week")
	assert.Equal(t, []string{"Apply neem oil spray twice a week"}, result.LocalRemedies)
	assert.Empty(t, result.RecommendedActions)
}

func TestParseAnalysis_LineClassification(t *testing.T) {
	text := strings.Join([]string{
		"Recommended Steps:",
		"1. Remove affected leaves immediately",
		"2. Neem cake around the base works as well",
		"Spray copper fungicide in the evening",
		"Use garlic extract as a natural deterrent",
		"",
		"Short note",
	}, "\n")

	result := ParseAnalysis(text)

	assert.Equal(t, []string{
		"1. Remove affected leaves immediately",
		"Spray copper fungicide in the evening",
	}, result.RecommendedActions)
	assert.Equal(t, []string{
		"2. Neem cake around the base works as well",
		"Use garlic extract as a natural deterrent",
	}, result.LocalRemedies)
}

func TestParseAnalysis_Caps(t *testing.T) {
	var lines []string
	for i := 0; i < 8; i++ {
		lines = append(lines, fmt.Sprintf("Remove damaged branch number %d", i))
	}
	for i := 0; i < 5; i++ {
		lines = append(lines, fmt.Sprintf("Spray neem solution batch %d", i))
	}

	result := ParseAnalysis(strings.Join(lines, "\n"))
	assert.Len(t, result.RecommendedActions, 5)
	assert.Len(t, result.LocalRemedies, 3)
	// Order preserved within each list.
	assert.Equal(t, "Remove damaged branch number 0", result.RecommendedActions[0])
	assert.Equal(t, "Spray neem solution batch 0", result.LocalRemedies[0])
}

func TestParseAnalysis_EmptyInput(t *testing.T) {
	result := ParseAnalysis("")
	assert.Equal(t, "", result.Analysis)
	assert.Nil(t, result.DiseaseDetected)
	assert.Nil(t, result.ConfidenceScore)
	assert.Empty(t, result.RecommendedActions)
	assert.Empty(t, result.LocalRemedies)
}
