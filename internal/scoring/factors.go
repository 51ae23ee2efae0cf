package scoring

import "github.com/jonathan/talent-engine/internal/types"

// Factor thresholds: a category at or above strengthThreshold is a
// strength; below concernThreshold it is a concern with a matching
// recommendation.
const (
	strengthThreshold = 80.0
	concernThreshold  = 60.0
)

// factorRule is one declarative (condition, message) pair over a
// category score.
type factorRule struct {
	category       string
	strength       string
	concern        string
	recommendation string
}

// factorRules drive narrative factor generation. Order is fixed so that
// identical inputs produce identical output.
var factorRules = []factorRule{
	{
		category:       "technical",
		strength:       "Strong technical skill coverage for this role",
		concern:        "Technical skill coverage is below expectations",
		recommendation: "Assess missing required skills in a technical screen",
	},
	{
		category:       "experience",
		strength:       "Experience level fits the role requirements well",
		concern:        "Experience falls short of the stated minimum",
		recommendation: "Probe depth of experience on comparable projects",
	},
	{
		category:       "education",
		strength:       "Education matches the role requirements",
		concern:        "Education is below the requested level",
		recommendation: "Weigh practical experience against the education gap",
	},
	{
		category:       "soft_skills",
		strength:       "CV shows strong communication and soft-skill signals",
		concern:        "Few soft-skill signals found in the CV",
		recommendation: "Evaluate communication skills in a behavioral interview",
	},
	{
		category:       "cultural_fit",
		strength:       "Location and profile align well with the position",
		concern:        "Location or profile constraints may be an obstacle",
		recommendation: "Clarify relocation or remote-work expectations early",
	},
	{
		category:       "growth_potential",
		strength:       "Profile suggests high growth potential",
		concern:        "Limited growth indicators in the profile",
		recommendation: "Discuss learning goals and certification plans",
	},
}

// buildFactors applies the declarative factor rules to the category
// scores.
func buildFactors(score *types.PredictiveScore) types.ScoreFactors {
	factors := types.ScoreFactors{
		Strengths:       []string{},
		Concerns:        []string{},
		Recommendations: []string{},
	}
	for _, rule := range factorRules {
		value := score.CategoryByName(rule.category)
		if value >= strengthThreshold {
			factors.Strengths = append(factors.Strengths, rule.strength)
		} else if value < concernThreshold {
			factors.Concerns = append(factors.Concerns, rule.concern)
			factors.Recommendations = append(factors.Recommendations, rule.recommendation)
		}
	}
	return factors
}
