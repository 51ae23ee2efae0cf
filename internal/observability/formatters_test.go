package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-engine/internal/types"
)

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	score := &types.PredictiveScore{
		CandidateID:   "cand_001",
		JobID:         "job_001",
		Overall:       87.5,
		Confidence:    80,
		WeightProfile: "technical",
		Categories: types.CategoryScores{
			Technical:  95,
			Experience: 88,
		},
	}

	p.PrintScore(score)
	output := buf.String()

	assert.Contains(t, output, "PREDICTIVE SCORE")
	assert.Contains(t, output, "cand_001")
	assert.Contains(t, output, "87.5")
	assert.Contains(t, output, "technical")
}

func TestPrintScore_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	match := &types.MatchResult{
		Compatibility:  91.2,
		Recommendation: types.TierStrongRecommend,
		MatchReasons:   []string{"Strong technical skill alignment"},
		Concerns:       []string{"Education below requirement"},
		SuggestedStage: types.StageSuggestion{Stage: "phone_interview", EstimatedDays: 2},
		EstimatedSalary: types.SalaryBand{
			Min: 80750, Max: 118750, Currency: "EUR",
		},
	}

	p.PrintMatch(match)
	output := buf.String()

	assert.Contains(t, output, "MATCH RESULT")
	assert.Contains(t, output, "strong_recommend")
	assert.Contains(t, output, "phone_interview")
	assert.Contains(t, output, "Strong technical skill alignment")
	assert.Contains(t, output, "Education below requirement")
}

func TestPrintBenchmark(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	data := &types.BenchmarkData{
		CandidateID: "cand_001",
		Score:       80,
		Rank:        2,
		Percentile:  90,
		Bucket:      types.BucketTop10,
		CohortStats: types.BenchmarkStats{Count: 10, Mean: 63, Median: 62.5, P90: 80},
	}

	p.PrintBenchmark(data)
	output := buf.String()

	assert.Contains(t, output, "BENCHMARK")
	assert.Contains(t, output, "2 of 10")
	assert.Contains(t, output, "top_10_percent")
}

func TestPrintPipelineStats(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	stats := &types.PipelineStats{
		Total: 20,
		Stages: []types.StageStats{
			{Stage: "received", Count: 4, OccupancyPct: 20, AvgDwellDays: 1.5},
			{Stage: "screening", Count: 10, OccupancyPct: 50, AvgDwellDays: 12, IsBottleneck: true},
		},
		Bottlenecks: []string{"screening"},
	}

	p.PrintPipelineStats(stats)
	output := buf.String()

	assert.Contains(t, output, "PIPELINE")
	assert.Contains(t, output, "screening")
	assert.Contains(t, output, "Bottlenecks")
}

func TestPrintPipelineStats_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintPipelineStats(&types.PipelineStats{})

	assert.Empty(t, buf.String())
}

func TestPrintExecution(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	execution := &types.WorkflowExecution{
		Status:     types.ExecutionPartial,
		FromStage:  "received",
		ToStage:    "screening",
		FiredRules: []string{"Auto-advance high scorers"},
		Actions: []types.ActionOutcome{
			{Action: "advance_stage", Target: "screening", Success: true},
			{Action: "send_notification", Target: "recruiter", Error: "smtp unreachable"},
		},
		Error: "send_notification: smtp unreachable",
	}

	p.PrintExecution(execution)
	output := buf.String()

	assert.Contains(t, output, "WORKFLOW EXECUTION")
	assert.Contains(t, output, "partial")
	assert.Contains(t, output, "Auto-advance high scorers")
	assert.Contains(t, output, "✗ send_notification")
}

func TestPrintExecution_NilMeansNoRulesFired(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExecution(nil)

	assert.Contains(t, buf.String(), "NO RULES FIRED")
}
