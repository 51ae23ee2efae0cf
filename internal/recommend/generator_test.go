package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-engine/internal/types"
)

func solidScore() types.PredictiveScore {
	return types.PredictiveScore{
		CandidateID: "cand_001",
		JobID:       "job_001",
		Overall:     78,
		Confidence:  80,
		Categories: types.CategoryScores{
			Technical:       80,
			Experience:      75,
			Education:       90,
			SoftSkills:      70,
			CulturalFit:     75,
			GrowthPotential: 72,
		},
	}
}

func TestGenerateLowOverallIsCritical(t *testing.T) {
	score := solidScore()
	score.Overall = 35
	score.Categories.Technical = 10

	items := Generate(Context{Score: score})
	require.NotEmpty(t, items)
	assert.Equal(t, PriorityCritical, items[0].Priority)
	assert.Contains(t, items[0].Description, "under 50")
}

func TestGenerateWeakCategoriesGetAdvice(t *testing.T) {
	score := solidScore()
	score.Categories.Technical = 40
	score.Categories.SoftSkills = 55

	items := Generate(Context{Score: score})

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	assert.Contains(t, titles, "Close the technical skill gap")
	assert.Contains(t, titles, "Screen communication skills early")
}

func TestGenerateLowConfidenceAdvice(t *testing.T) {
	score := solidScore()
	score.Confidence = 55

	items := Generate(Context{Score: score})

	var found bool
	for _, item := range items {
		if item.Title == "Low-confidence score" {
			found = true
			assert.Equal(t, PriorityMedium, item.Priority)
		}
	}
	assert.True(t, found)
}

func TestGenerateStrongMatchAdvice(t *testing.T) {
	match := &types.MatchResult{
		Recommendation: types.TierStrongRecommend,
		SuggestedStage: types.StageSuggestion{Stage: "phone_interview", EstimatedDays: 2},
	}

	items := Generate(Context{Score: solidScore(), Match: match})

	var found bool
	for _, item := range items {
		if item.Title == "Move fast on a strong match" {
			found = true
			assert.Equal(t, PriorityHigh, item.Priority)
			assert.Contains(t, item.Steps[0], "phone_interview")
		}
	}
	assert.True(t, found)
}

func TestGenerateBenchmarkBuckets(t *testing.T) {
	top := Generate(Context{
		Score: solidScore(),
		Benchmark: &types.BenchmarkData{
			Bucket:      types.BucketTop10,
			Rank:        1,
			CohortStats: types.BenchmarkStats{Count: 20},
		},
	})
	assert.Equal(t, "Top-decile candidate in the cohort", top[0].Title)

	below := Generate(Context{
		Score:     solidScore(),
		Benchmark: &types.BenchmarkData{Bucket: types.BucketBelowAverage},
	})
	var found bool
	for _, item := range below {
		if item.Title == "Below the cohort average" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestGeneratePipelineBottlenecks(t *testing.T) {
	stats := &types.PipelineStats{Bottlenecks: []string{"screening", "interview"}}

	items := Generate(Context{Score: solidScore(), Pipeline: stats})

	var bottleneckTitles []string
	for _, item := range items {
		if item.Priority == PriorityMedium {
			bottleneckTitles = append(bottleneckTitles, item.Title)
		}
	}
	// Insertion order preserved within equal priority.
	require.Len(t, bottleneckTitles, 2)
	assert.Equal(t, "Pipeline bottleneck at screening", bottleneckTitles[0])
	assert.Equal(t, "Pipeline bottleneck at interview", bottleneckTitles[1])
}

func TestGeneratePriorityOrdering(t *testing.T) {
	score := solidScore()
	score.Overall = 40
	score.Confidence = 50
	score.Categories.Technical = 30

	items := Generate(Context{
		Score:    score,
		Pipeline: &types.PipelineStats{Bottlenecks: []string{"offer"}},
	})

	ranks := map[string]int{PriorityCritical: 0, PriorityHigh: 1, PriorityMedium: 2, PriorityLow: 3}
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, ranks[items[i-1].Priority], ranks[items[i].Priority])
	}
	assert.Equal(t, PriorityCritical, items[0].Priority)
}

func TestGenerateHealthyProfileGetsBaseline(t *testing.T) {
	items := Generate(Context{Score: solidScore()})

	require.Len(t, items, 1)
	assert.Equal(t, PriorityLow, items[0].Priority)
	assert.Equal(t, "No blocking issues found", items[0].Title)
}
