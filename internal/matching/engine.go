// Package matching turns a predictive score into a ranked, annotated
// match: a compatibility score, a recommendation tier, reasons and
// concerns, interview questions, a salary estimate and a suggested next
// pipeline stage.
package matching

import (
	"math"
	"strings"

	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/scoring"
	"github.com/jonathan/talent-engine/internal/types"
)

// Compatibility bonuses, applied before the probability blend. Bonuses
// are always non-negative, so the adjusted score never drops below the
// base score they were added to.
const (
	keySkillBonus    = 5.0
	titleBonus       = 3.0
	certOverlapBonus = 2.0
)

// The adjusted score is re-blended with the offer probability to
// penalize low-likelihood high-score anomalies.
const (
	compatibilityWeight = 0.7
	offerBlendWeight    = 0.3
)

// Recommendation tier boundaries over avg(overall, compatibility).
// Boundaries are inclusive: a tie at a threshold resolves to the higher
// tier.
const (
	strongRecommendThreshold = 85.0
	recommendThreshold       = 70.0
	considerThreshold        = 60.0
)

// Options tweaks one match evaluation. The zero value uses defaults.
type Options struct {
	// Weights overrides the scoring weight table when non-nil.
	Weights *scoring.WeightTable
}

// Engine evaluates candidate/job matches. Stateless; safe for
// concurrent use.
type Engine struct {
	scorer *scoring.Engine
}

// NewEngine builds a matching engine on top of a scoring engine.
func NewEngine(scorer *scoring.Engine) *Engine {
	return &Engine{scorer: scorer}
}

// MustDefault returns an engine with the default scoring configuration.
func MustDefault() *Engine {
	return NewEngine(scoring.MustDefault())
}

// Match evaluates one (candidate, job) pair.
func (e *Engine) Match(candidate *types.CandidateProfile, job *types.JobRequirements, opts *Options) types.MatchResult {
	scorer := e.scorer
	if opts != nil && opts.Weights != nil {
		if custom, err := scoring.NewEngine(*opts.Weights); err == nil {
			scorer = custom
		}
	}

	score := scorer.Score(candidate, job)

	compatibility := score.Overall
	reasons := append([]string{}, score.Factors.Strengths...)
	concerns := append([]string{}, score.Factors.Concerns...)

	requiredCoverage := requiredSkillCoverage(candidate, job)
	if requiredCoverage >= 0.9 {
		compatibility += keySkillBonus
		reasons = append(reasons, "Covers nearly all key required skills")
	}
	if priorTitleMatches(candidate, job) {
		compatibility += titleBonus
		reasons = append(reasons, "Direct experience in a comparable role")
	}
	if certificationOverlap(candidate, job) > 0.5 {
		compatibility += certOverlapBonus
		reasons = append(reasons, "Holds most of the requested certifications")
	}
	if score.Probabilities.Offer >= 80 {
		reasons = append(reasons, "High predicted offer probability")
	}

	compatibility = compatibility*compatibilityWeight + score.Probabilities.Offer*offerBlendWeight
	if compatibility > 100 {
		compatibility = 100
	}
	compatibility = math.Round(compatibility*10) / 10

	tier := recommendationTier(score.Overall, compatibility)

	return types.MatchResult{
		CandidateID:        candidate.ID,
		JobID:              job.ID,
		Categories:         score.Categories,
		OverallScore:       score.Overall,
		Compatibility:      compatibility,
		Recommendation:     tier,
		MatchReasons:       reasons,
		Concerns:           concerns,
		InterviewQuestions: buildInterviewQuestions(&score),
		EstimatedSalary:    estimateSalary(candidate),
		SuggestedStage:     suggestStage(tier),
		Confidence:         score.Confidence,
	}
}

// recommendationTier derives the tier from the average of the overall
// and compatibility scores. Comparisons are inclusive (>=).
func recommendationTier(overall, compatibility float64) string {
	avg := (overall + compatibility) / 2
	switch {
	case avg >= strongRecommendThreshold:
		return types.TierStrongRecommend
	case avg >= recommendThreshold:
		return types.TierRecommend
	case avg >= considerThreshold:
		return types.TierConsider
	default:
		return types.TierNotRecommended
	}
}

// requiredSkillCoverage returns the fraction of required skills the
// candidate fully or partially covers, or -1 when the job lists none.
func requiredSkillCoverage(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	if len(job.RequiredSkills) == 0 {
		return -1
	}
	skills := candidate.AllSkills()
	covered := 0
	for _, want := range job.RequiredSkills {
		if skillMatches(skills, want) {
			covered++
		}
	}
	return float64(covered) / float64(len(job.RequiredSkills))
}

// skillMatches reports a case-insensitive substring match in either
// direction.
func skillMatches(skills []string, want string) bool {
	wantLower := strings.ToLower(strings.TrimSpace(want))
	if wantLower == "" {
		return false
	}
	for _, have := range skills {
		haveLower := strings.ToLower(strings.TrimSpace(have))
		if haveLower == "" {
			continue
		}
		if strings.Contains(haveLower, wantLower) || strings.Contains(wantLower, haveLower) {
			return true
		}
	}
	return false
}

// priorTitleMatches reports whether any prior title shares a significant
// word with the job title.
func priorTitleMatches(candidate *types.CandidateProfile, job *types.JobRequirements) bool {
	jobTokens := map[string]bool{}
	for _, token := range strings.Fields(strings.ToLower(job.Title)) {
		if len(token) >= 3 {
			jobTokens[token] = true
		}
	}
	for _, title := range candidate.PriorTitles {
		for _, token := range strings.Fields(strings.ToLower(title)) {
			if len(token) >= 3 && jobTokens[token] {
				return true
			}
		}
	}
	return false
}

// certificationOverlap returns the fraction of requested certifications
// the candidate holds, or 0 when the job requests none.
func certificationOverlap(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	if len(job.Certifications) == 0 {
		return 0
	}
	held := 0
	for _, want := range job.Certifications {
		if skillMatches(candidate.Certifications, want) {
			held++
		}
	}
	return float64(held) / float64(len(job.Certifications))
}

// suggestStage maps a recommendation tier to the next pipeline stage and
// an estimated number of days to reach it.
func suggestStage(tier string) types.StageSuggestion {
	switch tier {
	case types.TierStrongRecommend:
		return types.StageSuggestion{Stage: pipeline.StagePhoneInterview, EstimatedDays: 2}
	case types.TierRecommend:
		return types.StageSuggestion{Stage: pipeline.StageScreening, EstimatedDays: 3}
	case types.TierConsider:
		return types.StageSuggestion{Stage: pipeline.StageScreening, EstimatedDays: 5}
	default:
		return types.StageSuggestion{Stage: pipeline.StageRejected, EstimatedDays: 0}
	}
}
