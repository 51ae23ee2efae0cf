package matching

import (
	"strings"

	"github.com/jonathan/talent-engine/internal/types"
)

// salaryTier maps an experience ceiling to a base salary figure.
type salaryTier struct {
	maxYears float64
	base     float64
}

// salaryTiers is evaluated in order; the first tier whose ceiling covers
// the candidate's experience wins. The zero ceiling on the last row
// means "no ceiling".
var salaryTiers = []salaryTier{
	{maxYears: 2, base: 55000},
	{maxYears: 5, base: 75000},
	{maxYears: 10, base: 95000},
	{maxYears: 0, base: 120000},
}

// Band spread around the base figure.
const (
	salarySpreadDown = 0.15
	salarySpreadUp   = 0.25
)

// Rare-skill uplift: +8% per detected rare skill, capped at +20%;
// more than two certifications add another +5%.
const (
	rareSkillUplift    = 0.08
	rareSkillUpliftCap = 0.20
	certUplift         = 0.05
)

// rareSkillKeywords is the externally editable list of market-scarce
// skill keywords that push the estimate upward.
var rareSkillKeywords = []string{
	"distributed systems",
	"machine learning",
	"kubernetes",
	"terraform",
	"rust",
	"kafka",
	"site reliability",
	"security",
}

// estimateSalary derives a salary band from the experience tier, widened
// by the documented spread and increased for rare skills and a large
// certification count.
func estimateSalary(candidate *types.CandidateProfile) types.SalaryBand {
	base := salaryTiers[len(salaryTiers)-1].base
	for _, tier := range salaryTiers {
		if tier.maxYears > 0 && candidate.YearsExperience < tier.maxYears {
			base = tier.base
			break
		}
	}

	uplift := rareSkillBoost(candidate.TechnicalSkills)
	if len(candidate.Certifications) > 2 {
		uplift += certUplift
	}
	base *= 1 + uplift

	return types.SalaryBand{
		Min:      int(base * (1 - salarySpreadDown)),
		Max:      int(base * (1 + salarySpreadUp)),
		Currency: "EUR",
	}
}

// rareSkillBoost sums the per-skill uplift for every rare keyword found
// in the skill list, capped.
func rareSkillBoost(skills []string) float64 {
	boost := 0.0
	for _, keyword := range rareSkillKeywords {
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), keyword) {
				boost += rareSkillUplift
				break
			}
		}
	}
	if boost > rareSkillUpliftCap {
		boost = rareSkillUpliftCap
	}
	return boost
}
