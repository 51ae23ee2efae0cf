//nolint:revive // types is a standard Go package name pattern
package types

// CategoryScores holds the six per-category sub-scores, each 0-100.
type CategoryScores struct {
	Technical       float64 `json:"technical"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	SoftSkills      float64 `json:"soft_skills"`
	CulturalFit     float64 `json:"cultural_fit"`
	GrowthPotential float64 `json:"growth_potential"`
}

// OutcomeProbabilities holds predicted outcome likelihoods, each capped
// at a fixed ceiling (interview 95, offer 90, retention 95, performance 95).
type OutcomeProbabilities struct {
	InterviewSuccess float64 `json:"interview_success"`
	Offer            float64 `json:"offer"`
	Retention        float64 `json:"retention"`
	Performance      float64 `json:"performance"`
}

// ScoreFactors holds categorized narrative factors derived from threshold
// rules over the category scores.
type ScoreFactors struct {
	Strengths       []string `json:"strengths"`
	Concerns        []string `json:"concerns"`
	Recommendations []string `json:"recommendations"`
}

// PredictiveScore is the output of the scoring engine for one
// (candidate, job) pair. Overall is always the documented weighted sum of
// the category scores and lies in [0,100]. Derived data; callers persist
// if needed.
type PredictiveScore struct {
	CandidateID   string               `json:"candidate_id"`
	JobID         string               `json:"job_id"`
	Categories    CategoryScores       `json:"categories"`
	Overall       float64              `json:"overall"`
	Probabilities OutcomeProbabilities `json:"probabilities"`
	Confidence    float64              `json:"confidence"` // 50-95
	Factors       ScoreFactors         `json:"factors"`
	WeightProfile string               `json:"weight_profile"`
}

// WeakestCategories returns category names ordered from lowest score to
// highest. Ties resolve in the fixed category order, keeping the result
// deterministic for identical inputs.
func (s *PredictiveScore) WeakestCategories() []string {
	type entry struct {
		name  string
		score float64
	}
	entries := []entry{
		{"technical", s.Categories.Technical},
		{"experience", s.Categories.Experience},
		{"education", s.Categories.Education},
		{"soft_skills", s.Categories.SoftSkills},
		{"cultural_fit", s.Categories.CulturalFit},
		{"growth_potential", s.Categories.GrowthPotential},
	}

	// Insertion sort keeps equal scores in fixed category order.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].score < entries[j-1].score; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// CategoryByName returns the named category score, or 0 for an unknown name.
func (s *PredictiveScore) CategoryByName(name string) float64 {
	switch name {
	case "technical":
		return s.Categories.Technical
	case "experience":
		return s.Categories.Experience
	case "education":
		return s.Categories.Education
	case "soft_skills":
		return s.Categories.SoftSkills
	case "cultural_fit":
		return s.Categories.CulturalFit
	case "growth_potential":
		return s.Categories.GrowthPotential
	}
	return 0
}

// MaxCategory returns the highest category score.
func (s *PredictiveScore) MaxCategory() float64 {
	max := s.Categories.Technical
	for _, v := range []float64{
		s.Categories.Experience,
		s.Categories.Education,
		s.Categories.SoftSkills,
		s.Categories.CulturalFit,
		s.Categories.GrowthPotential,
	} {
		if v > max {
			max = v
		}
	}
	return max
}
