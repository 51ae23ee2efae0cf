package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Weights holds the per-category weights for one job family. The six
// weights must sum to 1.0 exactly; NewEngine rejects tables where any
// row does not.
type Weights struct {
	Technical       float64 `json:"technical"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	SoftSkills      float64 `json:"soft_skills"`
	CulturalFit     float64 `json:"cultural_fit"`
	GrowthPotential float64 `json:"growth_potential"`
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.Technical + w.Experience + w.Education + w.SoftSkills + w.CulturalFit + w.GrowthPotential
}

// WeightProfile selects a weight row when any of its keywords appears in
// the job title (case-insensitive substring). Profiles are data, not
// branching code, so weighting policy can be tuned without code changes.
type WeightProfile struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Weights  Weights  `json:"weights"`
}

// WeightTable is an ordered list of profiles plus a default row used
// when no profile keyword matches the job title. Earlier profiles win.
type WeightTable struct {
	Profiles []WeightProfile `json:"profiles"`
	Default  Weights         `json:"default"`
}

// DefaultWeightTable returns the built-in weight lookup table.
func DefaultWeightTable() WeightTable {
	return WeightTable{
		Profiles: []WeightProfile{
			{
				Name:     "technical",
				Keywords: []string{"developer", "engineer", "programmer", "architect"},
				Weights: Weights{
					Technical:       0.35,
					Experience:      0.25,
					Education:       0.10,
					SoftSkills:      0.10,
					CulturalFit:     0.10,
					GrowthPotential: 0.10,
				},
			},
			{
				Name:     "leadership",
				Keywords: []string{"manager", "director", "lead", "head of"},
				Weights: Weights{
					Technical:       0.15,
					Experience:      0.30,
					Education:       0.10,
					SoftSkills:      0.25,
					CulturalFit:     0.10,
					GrowthPotential: 0.10,
				},
			},
			{
				Name:     "entry",
				Keywords: []string{"junior", "intern", "graduate", "trainee"},
				Weights: Weights{
					Technical:       0.20,
					Experience:      0.10,
					Education:       0.25,
					SoftSkills:      0.15,
					CulturalFit:     0.15,
					GrowthPotential: 0.15,
				},
			},
		},
		Default: Weights{
			Technical:       0.25,
			Experience:      0.20,
			Education:       0.15,
			SoftSkills:      0.15,
			CulturalFit:     0.10,
			GrowthPotential: 0.15,
		},
	}
}

// weightSumTolerance absorbs float accumulation noise when checking that
// a row sums to 1.0.
const weightSumTolerance = 1e-9

// Validate checks every row of the table sums to 1.0. A table that fails
// here is a configuration error and must be rejected at load time, not
// per evaluation.
func (t WeightTable) Validate() error {
	for _, profile := range t.Profiles {
		if math.Abs(profile.Weights.Sum()-1.0) > weightSumTolerance {
			return fmt.Errorf("weight profile %q sums to %.6f, want 1.0", profile.Name, profile.Weights.Sum())
		}
		if len(profile.Keywords) == 0 {
			return fmt.Errorf("weight profile %q has no keywords", profile.Name)
		}
	}
	if math.Abs(t.Default.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("default weights sum to %.6f, want 1.0", t.Default.Sum())
	}
	return nil
}

// Select returns the weights and profile name for a job title. The
// entry-level profile is checked before the technical one so that titles
// like "Junior Developer" resolve to the entry row; otherwise profiles
// are matched in table order.
func (t WeightTable) Select(jobTitle string) (Weights, string) {
	title := strings.ToLower(jobTitle)

	// Entry-level keywords take precedence over family keywords.
	for _, profile := range t.Profiles {
		if profile.Name != "entry" {
			continue
		}
		for _, kw := range profile.Keywords {
			if strings.Contains(title, kw) {
				return profile.Weights, profile.Name
			}
		}
	}

	for _, profile := range t.Profiles {
		for _, kw := range profile.Keywords {
			if strings.Contains(title, kw) {
				return profile.Weights, profile.Name
			}
		}
	}

	return t.Default, "default"
}
