// Package recommend turns scoring, benchmarking, and pipeline outputs
// into prioritized advice items for recruiters. This is templating over
// the other engines' results, not new analysis.
package recommend

import (
	"fmt"
	"sort"

	"github.com/jonathan/talent-engine/internal/types"
)

// Priorities, best first.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityMedium   = "medium"
	PriorityLow      = "low"
)

var priorityRank = map[string]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// Recommendation is one advice item.
type Recommendation struct {
	Priority       string   `json:"priority"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExpectedImpact string   `json:"expected_impact"`
	Difficulty     string   `json:"difficulty"`
	Steps          []string `json:"steps"`
}

// Context carries the upstream results a generation pass draws from.
// Score is required; the rest are optional enrichments.
type Context struct {
	Score     types.PredictiveScore
	Match     *types.MatchResult
	Benchmark *types.BenchmarkData
	Pipeline  *types.PipelineStats
}

// categoryAdvice maps each weak category to its remediation template.
var categoryAdvice = map[string]Recommendation{
	"technical": {
		Title:          "Close the technical skill gap",
		Description:    "The candidate misses several required technical skills.",
		ExpectedImpact: "high",
		Difficulty:     "medium",
		Steps: []string{
			"List the required skills absent from the profile",
			"Probe adjacent or transferable skills in a screening call",
			"Consider a paid trial task covering the missing stack",
		},
	},
	"experience": {
		Title:          "Verify experience depth",
		Description:    "Years of experience fall short of the role requirement.",
		ExpectedImpact: "medium",
		Difficulty:     "low",
		Steps: []string{
			"Ask for concrete project outcomes from recent roles",
			"Weigh achievement density against raw tenure",
		},
	},
	"education": {
		Title:          "Assess education substitutes",
		Description:    "Formal education is below the stated requirement.",
		ExpectedImpact: "low",
		Difficulty:     "low",
		Steps: []string{
			"Check certifications and self-directed learning",
			"Confirm whether the education requirement is a hard constraint",
		},
	},
	"soft_skills": {
		Title:          "Screen communication skills early",
		Description:    "The profile signals weak soft-skill evidence.",
		ExpectedImpact: "medium",
		Difficulty:     "medium",
		Steps: []string{
			"Add a behavioral segment to the phone screen",
			"Request references that speak to collaboration",
		},
	},
	"cultural_fit": {
		Title:          "Clarify location and logistics",
		Description:    "Location or language coverage is a poor fit for the role.",
		ExpectedImpact: "medium",
		Difficulty:     "high",
		Steps: []string{
			"Confirm relocation or remote-work willingness",
			"Verify language requirements for the team",
		},
	},
	"growth_potential": {
		Title:          "Gauge learning trajectory",
		Description:    "The profile shows limited growth signals.",
		ExpectedImpact: "low",
		Difficulty:     "medium",
		Steps: []string{
			"Ask about recent upskilling and side projects",
			"Discuss the candidate's own development goals",
		},
	},
}

const weakCategoryThreshold = 60

// Generate produces prioritized advice from the given context. Ordering
// is stable: critical before high before medium before low, and items of
// equal priority keep the order they were generated in.
func Generate(ctx Context) []Recommendation {
	var items []Recommendation

	if ctx.Score.Overall < 50 {
		items = append(items, Recommendation{
			Priority:       PriorityCritical,
			Title:          "Overall fit is below the viable threshold",
			Description:    fmt.Sprintf("Overall score %.0f is under 50; proceeding wastes interview capacity.", ctx.Score.Overall),
			ExpectedImpact: "high",
			Difficulty:     "low",
			Steps: []string{
				"Send a templated rejection with feedback",
				"Keep the profile on file for better-matching roles",
			},
		})
	}

	for _, name := range ctx.Score.WeakestCategories() {
		if ctx.Score.CategoryByName(name) >= weakCategoryThreshold {
			break
		}
		advice, ok := categoryAdvice[name]
		if !ok {
			continue
		}
		advice.Priority = PriorityHigh
		items = append(items, advice)
	}

	if ctx.Score.Confidence < 60 {
		items = append(items, Recommendation{
			Priority:       PriorityMedium,
			Title:          "Low-confidence score",
			Description:    fmt.Sprintf("Confidence %.0f means the profile is sparse; treat the score as indicative only.", ctx.Score.Confidence),
			ExpectedImpact: "medium",
			Difficulty:     "low",
			Steps: []string{
				"Request an updated CV or portfolio links",
				"Re-score after the profile is enriched",
			},
		})
	}

	if ctx.Match != nil && ctx.Match.Recommendation == types.TierStrongRecommend {
		items = append(items, Recommendation{
			Priority:       PriorityHigh,
			Title:          "Move fast on a strong match",
			Description:    "Strongly recommended candidates are usually in multiple processes.",
			ExpectedImpact: "high",
			Difficulty:     "low",
			Steps: []string{
				fmt.Sprintf("Schedule the %s within %d days", ctx.Match.SuggestedStage.Stage, ctx.Match.SuggestedStage.EstimatedDays),
				"Prepare a salary band before the first interview",
			},
		})
	}

	if ctx.Benchmark != nil {
		switch ctx.Benchmark.Bucket {
		case types.BucketTop10:
			items = append(items, Recommendation{
				Priority:       PriorityHigh,
				Title:          "Top-decile candidate in the cohort",
				Description:    fmt.Sprintf("Ranked %d of %d in the comparison cohort.", ctx.Benchmark.Rank, ctx.Benchmark.CohortStats.Count),
				ExpectedImpact: "high",
				Difficulty:     "low",
				Steps: []string{
					"Prioritize this candidate over mid-cohort applicants",
					"Shorten the process where policy allows",
				},
			})
		case types.BucketBelowAverage:
			items = append(items, Recommendation{
				Priority:       PriorityMedium,
				Title:          "Below the cohort average",
				Description:    "Stronger candidates exist in the current applicant pool.",
				ExpectedImpact: "medium",
				Difficulty:     "low",
				Steps: []string{
					"Compare against the cohort's top quartile before advancing",
				},
			})
		}
	}

	if ctx.Pipeline != nil {
		for _, stage := range ctx.Pipeline.Bottlenecks {
			items = append(items, Recommendation{
				Priority:       PriorityMedium,
				Title:          fmt.Sprintf("Pipeline bottleneck at %s", stage),
				Description:    fmt.Sprintf("The %s stage holds a disproportionate share of candidates or dwell time.", stage),
				ExpectedImpact: "medium",
				Difficulty:     "medium",
				Steps: []string{
					"Review candidates overdue for a next action in this stage",
					"Add reviewer capacity or tighten the stage's exit criteria",
				},
			})
		}
	}

	if len(items) == 0 {
		items = append(items, Recommendation{
			Priority:       PriorityLow,
			Title:          "No blocking issues found",
			Description:    "Scores and pipeline signals are within normal ranges.",
			ExpectedImpact: "low",
			Difficulty:     "low",
			Steps: []string{
				"Proceed with the standard process for the suggested stage",
			},
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return priorityRank[items[i].Priority] < priorityRank[items[j].Priority]
	})
	return items
}
