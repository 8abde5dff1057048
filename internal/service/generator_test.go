package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/templui/fittrack/internal/model"
)

func TestGeneratorProgressReport(t *testing.T) {
	gen := NewGenerator(newTestContent(t))

	report := gen.ProgressReport(model.ProgressRequest{Timeframe: "6-months"})
	assert.Equal(t, "Last 6 Months", report.Timeframe)
	require.Len(t, report.Highlights, 3)
	assert.Equal(t, "8.5/10", report.Highlights[0].Value)

	require.Len(t, report.Sections, 3)
	keys := []string{}
	for _, s := range report.Sections {
		keys = append(keys, s.Key)
		assert.Len(t, s.Analysis, 3)
		assert.Len(t, s.Recommendations, 3)
		for _, series := range s.Series {
			assert.Len(t, series.Values, len(s.Labels), series.Name)
		}
	}
	assert.Equal(t, []string{ProgressSectionPerformance, ProgressSectionWorkouts, ProgressSectionBodyComposition}, keys)
	assert.Equal(t, 82.0, model.MaxValue(report.Sections[0].Series))
}

func TestGeneratorResultMatchesKind(t *testing.T) {
	gen := NewGenerator(newTestContent(t))
	req := validWorkoutRequest()

	result := gen.Result(&model.GenerationJob{Kind: model.JobKindWorkoutPlan, Workout: &req})
	assert.NotNil(t, result.WorkoutPlan)
	assert.Nil(t, result.NutritionPlan)
	assert.Nil(t, result.ProgressReport)

	result = gen.Result(&model.GenerationJob{Kind: model.JobKindNutrition})
	assert.Nil(t, result.NutritionPlan)
}
