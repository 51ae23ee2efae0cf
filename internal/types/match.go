//nolint:revive // types is a standard Go package name pattern
package types

// Recommendation tiers, ordered from best to worst.
const (
	TierStrongRecommend = "strong_recommend"
	TierRecommend       = "recommend"
	TierConsider        = "consider"
	TierNotRecommended  = "not_recommended"
)

// TierRank returns a numeric rank for a recommendation tier; higher is
// better. Unknown tiers rank 0.
func TierRank(tier string) int {
	switch tier {
	case TierStrongRecommend:
		return 4
	case TierRecommend:
		return 3
	case TierConsider:
		return 2
	case TierNotRecommended:
		return 1
	}
	return 0
}

// SalaryBand is an estimated salary range in whole currency units.
type SalaryBand struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// StageSuggestion is the recommended next pipeline stage for a candidate
// with an estimated number of days until the stage should be reached.
type StageSuggestion struct {
	Stage         string `json:"stage"`
	EstimatedDays int    `json:"estimated_days"`
}

// MatchResult is one (candidate, job) evaluation. Recomputed whenever
// either input changes, never mutated in place. Compatibility carries
// the bonus-adjusted, probability-blended score capped at 100.
type MatchResult struct {
	CandidateID        string          `json:"candidate_id"`
	JobID              string          `json:"job_id"`
	Categories         CategoryScores  `json:"categories"`
	OverallScore       float64         `json:"overall_score"`
	Compatibility      float64         `json:"compatibility"`
	Recommendation     string          `json:"recommendation"`
	MatchReasons       []string        `json:"match_reasons"`
	Concerns           []string        `json:"concerns"`
	InterviewQuestions []string        `json:"interview_questions"`
	EstimatedSalary    SalaryBand      `json:"estimated_salary"`
	SuggestedStage     StageSuggestion `json:"suggested_stage"`
	Confidence         float64         `json:"confidence"`
}

// RankedMatch pairs a match result with its 1-based rank within a cohort.
type RankedMatch struct {
	Rank  int         `json:"rank"`
	Match MatchResult `json:"match"`
}
