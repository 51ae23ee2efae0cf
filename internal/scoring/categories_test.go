package scoring

import (
	"testing"

	"github.com/jonathan/talent-engine/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestComputeTechnicalScore_FullRequiredCoverage(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"Go", "Kubernetes", "PostgreSQL", "Docker", "Terraform"},
	}
	job := &types.JobRequirements{
		RequiredSkills: []string{"Go", "Kubernetes", "PostgreSQL", "Docker", "Terraform"},
	}

	score := computeTechnicalScore(candidate, job)

	// No preferred list, so required coverage carries the full weight.
	assert.InDelta(t, 100.0, score, 0.01)
}

func TestComputeTechnicalScore_NoMatches(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"PHP", "Ruby"},
	}
	job := &types.JobRequirements{
		RequiredSkills: []string{"Kubernetes", "PostgreSQL", "Terraform", "Rust"},
	}

	score := computeTechnicalScore(candidate, job)

	assert.Equal(t, 0.0, score)
}

func TestComputeTechnicalScore_PartialCredit(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"distributed computing"},
	}
	job := &types.JobRequirements{
		RequiredSkills: []string{"distributed systems"},
	}

	score := computeTechnicalScore(candidate, job)

	// Shared token "distributed" earns partial credit 0.7.
	assert.InDelta(t, 70.0, score, 0.01)
}

func TestComputeTechnicalScore_BlendsPreferredSkills(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"Kubernetes"},
	}
	job := &types.JobRequirements{
		RequiredSkills:  []string{"Kubernetes"},
		PreferredSkills: []string{"Helm", "Prometheus"},
	}

	score := computeTechnicalScore(candidate, job)

	// Required coverage 1.0 at 80%, preferred coverage 0.0 at 20%.
	assert.InDelta(t, 80.0, score, 0.01)
}

func TestComputeTechnicalScore_NoRequirementsIsNeutral(t *testing.T) {
	candidate := &types.CandidateProfile{TechnicalSkills: []string{"Go"}}
	job := &types.JobRequirements{}

	score := computeTechnicalScore(candidate, job)

	assert.InDelta(t, 50.0, score, 0.01)
}

func TestComputeTechnicalScore_KeywordDensityBonus(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"Kubernetes"},
		KeywordDensity:  0.5,
	}
	job := &types.JobRequirements{
		RequiredSkills: []string{"Kubernetes", "Terraform"},
	}

	score := computeTechnicalScore(candidate, job)

	// Coverage 0.5 -> 50, plus density bonus 0.5*10.
	assert.InDelta(t, 55.0, score, 0.01)
}

func TestComputeExperienceScore_MeetsMinimum(t *testing.T) {
	candidate := &types.CandidateProfile{YearsExperience: 5}
	job := &types.JobRequirements{MinExperience: 3}

	score := computeExperienceScore(candidate, job)

	assert.InDelta(t, experienceMeets, score, 0.01)
}

func TestComputeExperienceScore_NearlyMeetsMinimum(t *testing.T) {
	candidate := &types.CandidateProfile{YearsExperience: 2.5}
	job := &types.JobRequirements{MinExperience: 3}

	score := computeExperienceScore(candidate, job)

	assert.InDelta(t, experienceNearly, score, 0.01)
}

func TestComputeExperienceScore_MissesMinimum(t *testing.T) {
	candidate := &types.CandidateProfile{YearsExperience: 0}
	job := &types.JobRequirements{MinExperience: 3}

	score := computeExperienceScore(candidate, job)

	assert.InDelta(t, experienceMisses, score, 0.01)
}

func TestComputeExperienceScore_WithinRangeAndTitleOverlap(t *testing.T) {
	candidate := &types.CandidateProfile{
		YearsExperience:        6,
		PriorTitles:            []string{"Software Engineer"},
		QuantifiedAchievements: 3,
	}
	job := &types.JobRequirements{
		Title:         "Senior Software Engineer",
		MinExperience: 3,
		MaxExperience: 7,
	}

	score := computeExperienceScore(candidate, job)

	// 60 base + 15 in-range + 15 title overlap + 6 achievements.
	assert.InDelta(t, 96.0, score, 0.01)
}

func TestComputeEducationScore_TextualMatch(t *testing.T) {
	candidate := &types.CandidateProfile{EducationLevel: "Bachelor of Science"}
	job := &types.JobRequirements{EducationLevels: []string{"bachelor"}}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 100.0, score)
}

func TestComputeEducationScore_NoRequirementIsNeutral(t *testing.T) {
	candidate := &types.CandidateProfile{EducationLevel: "Master"}
	job := &types.JobRequirements{}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 50.0, score)
}

func TestComputeEducationScore_ExceedsRequirement(t *testing.T) {
	candidate := &types.CandidateProfile{EducationLevel: "Doctorate in Physics"}
	job := &types.JobRequirements{EducationLevels: []string{"master"}}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 90.0, score)
}

func TestComputeEducationScore_OneLevelBelow(t *testing.T) {
	candidate := &types.CandidateProfile{EducationLevel: "Bachelor"}
	job := &types.JobRequirements{EducationLevels: []string{"master"}}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 60.0, score)
}

func TestComputeEducationScore_TwoLevelsBelow(t *testing.T) {
	candidate := &types.CandidateProfile{EducationLevel: "Associate"}
	job := &types.JobRequirements{EducationLevels: []string{"master"}}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 35.0, score)
}

func TestComputeEducationScore_MissingLevel(t *testing.T) {
	candidate := &types.CandidateProfile{}
	job := &types.JobRequirements{EducationLevels: []string{"bachelor"}}

	score := computeEducationScore(candidate, job)

	assert.Equal(t, 40.0, score)
}

func TestComputeSoftSkillsScore_Baseline(t *testing.T) {
	candidate := &types.CandidateProfile{CVQualityScore: 50}

	score := computeSoftSkillsScore(candidate)

	assert.InDelta(t, 50.0, score, 0.01)
}

func TestComputeSoftSkillsScore_FullSignals(t *testing.T) {
	candidate := &types.CandidateProfile{
		SoftSkills:      []string{"communication", "leadership", "teamwork", "mentoring", "negotiation"},
		ActionVerbCount: 12,
		CVQualityScore:  100,
	}

	score := computeSoftSkillsScore(candidate)

	// 50 + 25 (skills, capped) + 15 (verbs, capped) + 10 (quality, capped).
	assert.InDelta(t, 100.0, score, 0.01)
}

func TestComputeCulturalFitScore_ExactLocation(t *testing.T) {
	candidate := &types.CandidateProfile{Location: "Berlin"}
	job := &types.JobRequirements{Location: "Berlin"}

	score := computeCulturalFitScore(candidate, job)

	assert.InDelta(t, locationExact, score, 0.01)
}

func TestComputeCulturalFitScore_RemoteAllowedFallback(t *testing.T) {
	candidate := &types.CandidateProfile{Location: "Lisbon"}
	job := &types.JobRequirements{Location: "Berlin", RemoteAllowed: true}

	score := computeCulturalFitScore(candidate, job)

	assert.InDelta(t, locationRemote, score, 0.01)
}

func TestComputeCulturalFitScore_LocationMismatch(t *testing.T) {
	candidate := &types.CandidateProfile{Location: "Lisbon"}
	job := &types.JobRequirements{Location: "Berlin"}

	score := computeCulturalFitScore(candidate, job)

	assert.InDelta(t, locationMismatch, score, 0.01)
}

func TestComputeCulturalFitScore_LanguageCoverageBonus(t *testing.T) {
	candidate := &types.CandidateProfile{
		Location:  "Berlin",
		Languages: []string{"German", "English"},
	}
	job := &types.JobRequirements{
		Location:  "Berlin",
		Languages: []string{"German", "English"},
	}

	score := computeCulturalFitScore(candidate, job)

	assert.InDelta(t, locationExact+4, score, 0.01)
}

func TestComputeGrowthPotentialScore_EarlyCareer(t *testing.T) {
	candidate := &types.CandidateProfile{
		TechnicalSkills: []string{"Go", "Python"},
		YearsExperience: 2,
	}

	score := computeGrowthPotentialScore(candidate)

	// 50 + 4 (skill diversity) + 10 (early career).
	assert.InDelta(t, 64.0, score, 0.01)
}

func TestMatchCredit_CaseInsensitiveSubstring(t *testing.T) {
	credit := matchCredit([]string{"kubernetes administration"}, "Kubernetes")
	assert.Equal(t, fullMatchCredit, credit)
}

func TestMatchCredit_NoMatch(t *testing.T) {
	credit := matchCredit([]string{"PHP"}, "Terraform")
	assert.Equal(t, 0.0, credit)
}
