// Package types provides type definitions for structured data used throughout the talent-engine system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile represents one candidate as produced by the external
// CV-analysis collaborator. It is an immutable input to scoring; the
// engine never mutates it. Optional fields may be empty and are handled
// with neutral defaults downstream.
type CandidateProfile struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	YearsExperience float64  `json:"years_experience"`
	EducationLevel  string   `json:"education_level,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Location        string   `json:"location,omitempty"`
	PriorTitles     []string `json:"prior_titles,omitempty"`

	// Signals extracted by the CV-analysis collaborator.
	QuantifiedAchievements int     `json:"quantified_achievements"`
	ActionVerbCount        int     `json:"action_verb_count"`
	CVQualityScore         float64 `json:"cv_quality_score"` // 0-100
	KeywordDensity         float64 `json:"keyword_density"`  // 0.0-1.0
}

// AllSkills returns the candidate's technical and soft skills as one list.
func (c *CandidateProfile) AllSkills() []string {
	skills := make([]string, 0, len(c.TechnicalSkills)+len(c.SoftSkills))
	skills = append(skills, c.TechnicalSkills...)
	skills = append(skills, c.SoftSkills...)
	return skills
}
