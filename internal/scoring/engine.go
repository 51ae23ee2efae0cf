// Package scoring computes a multi-category predictive score for one
// (candidate, job) pair. Scoring is deterministic, side-effect free and
// performs no I/O; missing optional input fields degrade to documented
// neutral defaults with reduced confidence, never an error.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/talent-engine/internal/types"
)

// Probability ceilings per outcome.
const (
	interviewCeiling   = 95.0
	offerCeiling       = 90.0
	retentionCeiling   = 95.0
	performanceCeiling = 95.0
)

// Confidence bounds and baseline.
const (
	confidenceBase = 70.0
	confidenceMin  = 50.0
	confidenceMax  = 95.0
)

// Engine scores candidates against jobs using a configurable weight
// table. Engines hold no per-evaluation state; one engine may be shared
// by any number of concurrent evaluations.
type Engine struct {
	weights WeightTable
}

// NewEngine builds an engine from a weight table, failing fast when any
// row does not sum to 1.0.
func NewEngine(table WeightTable) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weight table: %w", err)
	}
	return &Engine{weights: table}, nil
}

// MustDefault returns an engine with the built-in weight table. The
// built-in table is covered by tests, so a failure here is a programmer
// error.
func MustDefault() *Engine {
	engine, err := NewEngine(DefaultWeightTable())
	if err != nil {
		panic(err)
	}
	return engine
}

// Score computes the predictive score for one (candidate, job) pair.
func (e *Engine) Score(candidate *types.CandidateProfile, job *types.JobRequirements) types.PredictiveScore {
	categories := types.CategoryScores{
		Technical:       computeTechnicalScore(candidate, job),
		Experience:      computeExperienceScore(candidate, job),
		Education:       computeEducationScore(candidate, job),
		SoftSkills:      computeSoftSkillsScore(candidate),
		CulturalFit:     computeCulturalFitScore(candidate, job),
		GrowthPotential: computeGrowthPotentialScore(candidate),
	}

	weights, profile := e.weights.Select(job.Title)
	overall := math.Round(
		categories.Technical*weights.Technical +
			categories.Experience*weights.Experience +
			categories.Education*weights.Education +
			categories.SoftSkills*weights.SoftSkills +
			categories.CulturalFit*weights.CulturalFit +
			categories.GrowthPotential*weights.GrowthPotential)
	overall = clamp(overall, 0, 100)

	score := types.PredictiveScore{
		CandidateID:   candidate.ID,
		JobID:         job.ID,
		Categories:    categories,
		Overall:       overall,
		Probabilities: computeProbabilities(overall, categories),
		Confidence:    computeConfidence(candidate),
		WeightProfile: profile,
	}
	score.Factors = buildFactors(&score)
	return score
}

// computeProbabilities derives outcome probabilities as a second linear
// blend of the overall score and selected category scores, each capped
// at its documented ceiling.
func computeProbabilities(overall float64, c types.CategoryScores) types.OutcomeProbabilities {
	return types.OutcomeProbabilities{
		InterviewSuccess: min(interviewCeiling, math.Round(overall*0.9+c.SoftSkills*0.1)),
		Offer:            min(offerCeiling, math.Round(overall*0.85+c.Technical*0.15)),
		Retention:        min(retentionCeiling, math.Round(overall*0.6+c.CulturalFit*0.4)),
		Performance:      min(performanceCeiling, math.Round(overall*0.5+c.Technical*0.3+c.GrowthPotential*0.2)),
	}
}

// computeConfidence starts at the baseline and adjusts for input
// completeness, clamped to [50,95].
func computeConfidence(candidate *types.CandidateProfile) float64 {
	confidence := confidenceBase

	skillCount := len(candidate.AllSkills())
	if skillCount >= 5 {
		confidence += 10
	} else if skillCount < 2 {
		confidence -= 10
	}

	if candidate.EducationLevel != "" {
		confidence += 5
	} else {
		confidence -= 5
	}

	if candidate.CVQualityScore >= 80 {
		confidence += 10
	}

	return clamp(confidence, confidenceMin, confidenceMax)
}
