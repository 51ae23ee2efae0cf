//nolint:revive // types is a standard Go package name pattern
package types

// JobRequirements represents one job specification, typically authored
// via an administrative UI. Immutable input; every constraint beyond the
// title and required skills is optional.
type JobRequirements struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
	MinExperience   float64  `json:"min_experience"`
	MaxExperience   float64  `json:"max_experience,omitempty"`
	EducationLevels []string `json:"education_levels,omitempty"`
	Certifications  []string `json:"certifications,omitempty"`
	Languages       []string `json:"languages,omitempty"`
	Location        string   `json:"location,omitempty"`
	RemoteAllowed   bool     `json:"remote_allowed"`
}
