package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/types"
)

func writeFixture(t *testing.T, dir, name string, v any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, writeJSONFile(path, v))
	return path
}

func fixtureCandidate() types.CandidateProfile {
	return types.CandidateProfile{
		ID:              "cand_001",
		Name:            "Ada Example",
		TechnicalSkills: []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "AWS"},
		SoftSkills:      []string{"communication", "leadership"},
		YearsExperience: 6,
		EducationLevel:  "master",
		Location:        "Berlin",
		PriorTitles:     []string{"Senior Software Engineer"},

		QuantifiedAchievements: 5,
		ActionVerbCount:        12,
		CVQualityScore:         85,
		KeywordDensity:         0.5,
	}
}

func fixtureJob() types.JobRequirements {
	return types.JobRequirements{
		ID:              "job_001",
		Title:           "Senior Software Engineer",
		RequiredSkills:  []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "AWS"},
		MinExperience:   3,
		MaxExperience:   7,
		EducationLevels: []string{"master"},
		Location:        "Berlin",
	}
}

func TestScoreCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	scoreCandidatePath = writeFixture(t, dir, "candidate.json", fixtureCandidate())
	scoreJobPath = writeFixture(t, dir, "job.json", fixtureJob())
	scoreOutput = filepath.Join(dir, "out", "score.json")

	require.NoError(t, runScore(nil, nil))

	var score types.PredictiveScore
	require.NoError(t, readJSONFile(scoreOutput, &score))
	assert.Equal(t, "cand_001", score.CandidateID)
	assert.GreaterOrEqual(t, score.Overall, 85.0)
}

func TestScoreCommand_MissingInputFile(t *testing.T) {
	dir := t.TempDir()
	scoreCandidatePath = filepath.Join(dir, "absent.json")
	scoreJobPath = writeFixture(t, dir, "job.json", fixtureJob())
	scoreOutput = filepath.Join(dir, "score.json")

	err := runScore(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestMatchCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	matchCandidatePath = writeFixture(t, dir, "candidate.json", fixtureCandidate())
	matchJobPath = writeFixture(t, dir, "job.json", fixtureJob())
	matchOutput = filepath.Join(dir, "match.json")

	require.NoError(t, runMatch(nil, nil))

	var match types.MatchResult
	require.NoError(t, readJSONFile(matchOutput, &match))
	assert.Equal(t, types.TierStrongRecommend, match.Recommendation)
}

func TestRankCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	weak := types.CandidateProfile{ID: "cand_weak", Name: "No Match"}
	rankJobPath = writeFixture(t, dir, "job.json", fixtureJob())
	rankCandidatesPath = writeFixture(t, dir, "candidates.json", []types.CandidateProfile{weak, fixtureCandidate()})
	rankOutput = filepath.Join(dir, "ranked.json")
	rankMinScore = 50

	require.NoError(t, runRank(nil, nil))

	var ranked []types.RankedMatch
	require.NoError(t, readJSONFile(rankOutput, &ranked))
	require.Len(t, ranked, 1)
	assert.Equal(t, "cand_001", ranked[0].Match.CandidateID)
}

func TestAdvanceCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	candidate := types.PipelineCandidate{
		CandidateID:  "cand_001",
		JobID:        "job_001",
		CurrentStage: pipeline.StageReceived,
	}
	match := types.MatchResult{
		OverallScore:   95,
		Recommendation: types.TierStrongRecommend,
	}

	advanceCandidatePath = writeFixture(t, dir, "candidate.json", candidate)
	advanceMatchPath = writeFixture(t, dir, "match.json", match)
	advanceRulesPath = ""
	advanceOutput = filepath.Join(dir, "advance.json")

	require.NoError(t, runAdvance(nil, nil))

	var result advanceResult
	require.NoError(t, readJSONFile(advanceOutput, &result))
	require.NotNil(t, result.Execution)
	assert.Equal(t, pipeline.StagePhoneInterview, result.Candidate.CurrentStage)
}

func TestAdvanceCommand_UnknownStage(t *testing.T) {
	dir := t.TempDir()
	advanceCandidatePath = writeFixture(t, dir, "candidate.json", types.PipelineCandidate{
		CandidateID:  "cand_001",
		CurrentStage: "limbo",
	})
	advanceMatchPath = writeFixture(t, dir, "match.json", types.MatchResult{})
	advanceOutput = filepath.Join(dir, "advance.json")

	err := runAdvance(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown stage")
}

func TestPipelineStatsCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	candidates := []types.PipelineCandidate{
		{CandidateID: "c1", JobID: "j1", CurrentStage: pipeline.StageReceived},
		{CandidateID: "c2", JobID: "j1", CurrentStage: pipeline.StageScreening},
	}
	statsCandidatesPath = writeFixture(t, dir, "candidates.json", candidates)
	statsOutput = filepath.Join(dir, "stats.json")

	require.NoError(t, runPipelineStats(nil, nil))

	var stats types.PipelineStats
	require.NoError(t, readJSONFile(statsOutput, &stats))
	assert.Equal(t, 2, stats.Total)
}

func TestBenchmarkCommand_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	benchmarkCandidatePath = writeFixture(t, dir, "candidate.json", map[string]any{
		"candidate_id": "cand_001",
		"score":        75.0,
	})
	benchmarkCohortPath = writeFixture(t, dir, "cohort.json", []map[string]any{
		{"candidate_id": "c1", "score": 40.0},
		{"candidate_id": "c2", "score": 90.0},
	})
	benchmarkOutput = filepath.Join(dir, "benchmark.json")

	require.NoError(t, runBenchmark(nil, nil))

	var data types.BenchmarkData
	require.NoError(t, readJSONFile(benchmarkOutput, &data))
	assert.Equal(t, 2, data.Rank)
	assert.Equal(t, 3, data.CohortStats.Count)
}
