package scoring

import (
	"testing"

	"github.com/jonathan/talent-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strongCandidate() *types.CandidateProfile {
	return &types.CandidateProfile{
		ID:                     "cand_001",
		Name:                   "Strong Candidate",
		TechnicalSkills:        []string{"Go", "Kubernetes", "PostgreSQL", "Docker", "Terraform"},
		SoftSkills:             []string{"communication", "leadership", "mentoring"},
		YearsExperience:        6,
		EducationLevel:         "Bachelor of Science",
		Certifications:         []string{"CKA", "AWS SA"},
		Location:               "Berlin",
		PriorTitles:            []string{"Software Engineer"},
		QuantifiedAchievements: 3,
		ActionVerbCount:        8,
		CVQualityScore:         85,
	}
}

func engineerJob() *types.JobRequirements {
	return &types.JobRequirements{
		ID:              "job_001",
		Title:           "Senior Software Engineer",
		RequiredSkills:  []string{"Go", "Kubernetes", "PostgreSQL", "Docker", "Terraform"},
		MinExperience:   3,
		MaxExperience:   7,
		EducationLevels: []string{"bachelor"},
		Location:        "Berlin",
	}
}

func TestScore_IsPure(t *testing.T) {
	engine := MustDefault()
	candidate := strongCandidate()
	job := engineerJob()

	first := engine.Score(candidate, job)
	second := engine.Score(candidate, job)

	assert.Equal(t, first, second)
}

func TestScore_AllScoresWithinRange(t *testing.T) {
	engine := MustDefault()

	profiles := []*types.CandidateProfile{
		strongCandidate(),
		{}, // fully empty profile must still score
		{TechnicalSkills: []string{"COBOL"}, YearsExperience: 40},
	}
	jobs := []*types.JobRequirements{
		engineerJob(),
		{}, // empty job
		{Title: "Junior Intern", RequiredSkills: []string{"Excel"}, MinExperience: 10},
	}

	for _, candidate := range profiles {
		for _, job := range jobs {
			score := engine.Score(candidate, job)

			for name, v := range map[string]float64{
				"technical":        score.Categories.Technical,
				"experience":       score.Categories.Experience,
				"education":        score.Categories.Education,
				"soft_skills":      score.Categories.SoftSkills,
				"cultural_fit":     score.Categories.CulturalFit,
				"growth_potential": score.Categories.GrowthPotential,
				"overall":          score.Overall,
			} {
				assert.GreaterOrEqual(t, v, 0.0, "%s below range", name)
				assert.LessOrEqual(t, v, 100.0, "%s above range", name)
			}

			assert.LessOrEqual(t, score.Probabilities.InterviewSuccess, interviewCeiling)
			assert.LessOrEqual(t, score.Probabilities.Offer, offerCeiling)
			assert.LessOrEqual(t, score.Probabilities.Retention, retentionCeiling)
			assert.LessOrEqual(t, score.Probabilities.Performance, performanceCeiling)

			assert.GreaterOrEqual(t, score.Confidence, confidenceMin)
			assert.LessOrEqual(t, score.Confidence, confidenceMax)
		}
	}
}

func TestScore_StrongCandidateScenario(t *testing.T) {
	engine := MustDefault()

	score := engine.Score(strongCandidate(), engineerJob())

	assert.InDelta(t, 100.0, score.Categories.Technical, 0.01)
	assert.GreaterOrEqual(t, score.Categories.Experience, 90.0)
	assert.LessOrEqual(t, score.Categories.Experience, 100.0)
	assert.Equal(t, 100.0, score.Categories.Education)
	assert.GreaterOrEqual(t, score.Overall, 85.0)
	assert.Equal(t, "technical", score.WeightProfile)
}

func TestScore_WeakCandidateScenario(t *testing.T) {
	engine := MustDefault()

	candidate := &types.CandidateProfile{
		ID:              "cand_002",
		TechnicalSkills: []string{"PHP", "Ruby"},
		SoftSkills:      []string{"communication", "teamwork"},
		YearsExperience: 0,
		EducationLevel:  "Bachelor",
		CVQualityScore:  50,
	}
	job := &types.JobRequirements{
		ID:              "job_002",
		Title:           "Platform Engineer",
		RequiredSkills:  []string{"Kubernetes", "PostgreSQL", "Terraform", "Rust"},
		MinExperience:   3,
		EducationLevels: []string{"bachelor"},
	}

	score := engine.Score(candidate, job)

	assert.Equal(t, 0.0, score.Categories.Technical)
	assert.Equal(t, 20.0, score.Categories.Experience)
	assert.Less(t, score.Overall, 50.0)
}

func TestScore_MissingFieldsReduceConfidence(t *testing.T) {
	engine := MustDefault()

	sparse := engine.Score(&types.CandidateProfile{}, engineerJob())
	complete := engine.Score(strongCandidate(), engineerJob())

	assert.Less(t, sparse.Confidence, complete.Confidence)
	assert.Equal(t, confidenceMin+5, sparse.Confidence) // 70 - 10 - 5, floored at 50
}

func TestScore_FactorsFollowThresholds(t *testing.T) {
	engine := MustDefault()

	score := engine.Score(strongCandidate(), engineerJob())
	assert.Contains(t, score.Factors.Strengths, "Strong technical skill coverage for this role")

	weak := engine.Score(&types.CandidateProfile{CVQualityScore: 40}, engineerJob())
	assert.Contains(t, weak.Factors.Concerns, "Technical skill coverage is below expectations")
	assert.NotEmpty(t, weak.Factors.Recommendations)
}

func TestScore_EmptyInputsNeverPanic(t *testing.T) {
	engine := MustDefault()

	require.NotPanics(t, func() {
		score := engine.Score(&types.CandidateProfile{}, &types.JobRequirements{})
		assert.GreaterOrEqual(t, score.Overall, 0.0)
	})
}

func TestWeakestCategories_DeterministicOrder(t *testing.T) {
	score := &types.PredictiveScore{
		Categories: types.CategoryScores{
			Technical:       40,
			Experience:      90,
			Education:       40,
			SoftSkills:      70,
			CulturalFit:     60,
			GrowthPotential: 80,
		},
	}

	order := score.WeakestCategories()

	// Ties (technical/education at 40) keep the fixed category order.
	assert.Equal(t, []string{"technical", "education", "cultural_fit", "soft_skills", "growth_potential", "experience"}, order)
}
