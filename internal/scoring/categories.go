package scoring

import (
	"strings"

	"github.com/jonathan/talent-engine/internal/types"
)

// Skill match credit levels. A full match is an exact or containing
// substring match; a partial match shares at least one word token.
const (
	fullMatchCredit    = 1.0
	partialMatchCredit = 0.7
)

// Technical blend: required coverage dominates preferred coverage.
const (
	requiredSkillWeight  = 0.8
	preferredSkillWeight = 0.2
)

// Experience base tiers: meets the minimum, nearly meets it (>=70%), misses.
const (
	experienceMeets  = 60.0
	experienceNearly = 40.0
	experienceMisses = 20.0
)

// matchCredit returns the credit for one wanted skill against the
// candidate's skill list: 1.0 for a case-insensitive substring match in
// either direction, 0.7 when the two share a word token, else 0.
func matchCredit(candidateSkills []string, want string) float64 {
	wantLower := strings.ToLower(strings.TrimSpace(want))
	if wantLower == "" {
		return 0
	}

	best := 0.0
	wantTokens := strings.Fields(wantLower)
	for _, have := range candidateSkills {
		haveLower := strings.ToLower(strings.TrimSpace(have))
		if haveLower == "" {
			continue
		}
		if strings.Contains(haveLower, wantLower) || strings.Contains(wantLower, haveLower) {
			return fullMatchCredit
		}
		for _, token := range wantTokens {
			if len(token) < 3 {
				continue
			}
			if strings.Contains(haveLower, token) {
				best = partialMatchCredit
			}
		}
	}
	return best
}

// skillCoverage returns the average match credit over the wanted skills,
// in [0,1]. An empty wanted list returns -1 so callers can distinguish
// "nothing required" from "nothing matched".
func skillCoverage(candidateSkills, wanted []string) float64 {
	if len(wanted) == 0 {
		return -1
	}
	total := 0.0
	for _, want := range wanted {
		total += matchCredit(candidateSkills, want)
	}
	return total / float64(len(wanted))
}

// computeTechnicalScore blends required-skill coverage (80%) and
// preferred-skill coverage (20%), plus a small keyword-density bonus
// from the source CV. A job that lists no skills at all scores the
// neutral default 50.
func computeTechnicalScore(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	skills := candidate.AllSkills()
	required := skillCoverage(skills, job.RequiredSkills)
	preferred := skillCoverage(skills, job.PreferredSkills)

	var score float64
	switch {
	case required < 0 && preferred < 0:
		score = 50 // no skill requirements at all
	case required < 0:
		score = preferred * 100
	case preferred < 0:
		score = required * 100
	default:
		score = required*requiredSkillWeight*100 + preferred*preferredSkillWeight*100
	}

	// Keyword-density signal from the CV analysis, up to +10.
	score += clamp(candidate.KeywordDensity, 0, 1) * 10

	return clamp(score, 0, 100)
}

// computeExperienceScore tiers the candidate's years of experience
// against the job minimum, with bonuses for staying within the stated
// range, title overlap, and quantified achievements.
func computeExperienceScore(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	score := experienceMisses
	switch {
	case candidate.YearsExperience >= job.MinExperience:
		score = experienceMeets
	case job.MinExperience > 0 && candidate.YearsExperience >= job.MinExperience*0.7:
		score = experienceNearly
	}

	// Within the stated range, not overqualified.
	if job.MaxExperience > 0 &&
		candidate.YearsExperience >= job.MinExperience &&
		candidate.YearsExperience <= job.MaxExperience {
		score += 15
	}

	if titleOverlaps(candidate.PriorTitles, job.Title) {
		score += 15
	}

	score += min(float64(candidate.QuantifiedAchievements)*2, 10)

	return clamp(score, 0, 100)
}

// titleOverlaps reports whether any prior role title shares a
// significant word with the job title.
func titleOverlaps(priorTitles []string, jobTitle string) bool {
	jobTokens := significantTokens(jobTitle)
	if len(jobTokens) == 0 {
		return false
	}
	for _, title := range priorTitles {
		for token := range significantTokens(title) {
			if jobTokens[token] {
				return true
			}
		}
	}
	return false
}

// significantTokens lowercases and tokenizes a title, dropping short
// filler words.
func significantTokens(title string) map[string]bool {
	tokens := make(map[string]bool)
	for _, token := range strings.Fields(strings.ToLower(title)) {
		if len(token) < 3 {
			continue
		}
		tokens[token] = true
	}
	return tokens
}

// educationRank maps education levels to positions on a fixed ladder.
var educationRank = map[string]int{
	"secondary": 1,
	"associate": 2,
	"bachelor":  3,
	"master":    4,
	"doctorate": 5,
	"phd":       5,
}

// rankEducation resolves a free-text education level to its ladder
// position via case-insensitive substring matching. Unknown levels rank 0.
func rankEducation(level string) int {
	lower := strings.ToLower(level)
	best := 0
	for name, rank := range educationRank {
		if strings.Contains(lower, name) && rank > best {
			best = rank
		}
	}
	return best
}

// computeEducationScore returns 100 for a textual match against any
// required level, otherwise a graded score from the ordinal distance on
// the ladder. No requirement yields the neutral default 50.
func computeEducationScore(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	if len(job.EducationLevels) == 0 {
		return 50
	}

	candLower := strings.ToLower(strings.TrimSpace(candidate.EducationLevel))
	if candLower != "" {
		for _, required := range job.EducationLevels {
			reqLower := strings.ToLower(strings.TrimSpace(required))
			if reqLower == "" {
				continue
			}
			if strings.Contains(candLower, reqLower) || strings.Contains(reqLower, candLower) {
				return 100
			}
		}
	}

	candRank := rankEducation(candidate.EducationLevel)
	if candRank == 0 {
		return 40 // education level unknown or missing
	}

	// Lowest acceptable required rank on the ladder.
	minRequired := 0
	for _, required := range job.EducationLevels {
		if rank := rankEducation(required); rank > 0 && (minRequired == 0 || rank < minRequired) {
			minRequired = rank
		}
	}
	if minRequired == 0 {
		return 40
	}

	switch {
	case candRank >= minRequired:
		return 90
	case candRank == minRequired-1:
		return 60
	case candRank == minRequired-2:
		return 35
	default:
		return 20
	}
}

// computeSoftSkillsScore blends soft-skill count, action-verb usage, and
// the externally supplied CV-quality score.
func computeSoftSkillsScore(candidate *types.CandidateProfile) float64 {
	score := 50.0
	score += min(float64(len(candidate.SoftSkills))*5, 25)
	score += min(float64(candidate.ActionVerbCount)*1.5, 15)
	score += clamp((candidate.CVQualityScore-50)/5, 0, 10)
	return clamp(score, 0, 100)
}

// Location match tiers for cultural fit.
const (
	locationExact    = 90.0
	locationPartial  = 75.0
	locationRemote   = 70.0
	locationMismatch = 40.0
	locationNeutral  = 70.0
)

// computeCulturalFitScore tiers the location match, then adds bonuses
// for certifications and language-requirement coverage.
func computeCulturalFitScore(candidate *types.CandidateProfile, job *types.JobRequirements) float64 {
	score := locationNeutral
	if job.Location != "" {
		candLoc := strings.ToLower(strings.TrimSpace(candidate.Location))
		jobLoc := strings.ToLower(strings.TrimSpace(job.Location))
		switch {
		case candLoc != "" && candLoc == jobLoc:
			score = locationExact
		case candLoc != "" && (strings.Contains(candLoc, jobLoc) || strings.Contains(jobLoc, candLoc)):
			score = locationPartial
		case job.RemoteAllowed:
			score = locationRemote
		default:
			score = locationMismatch
		}
	}

	score += min(float64(len(candidate.Certifications))*2, 6)

	if len(job.Languages) > 0 {
		covered := 0
		for _, want := range job.Languages {
			if matchCredit(candidate.Languages, want) >= partialMatchCredit {
				covered++
			}
		}
		score += float64(covered) / float64(len(job.Languages)) * 4
	}

	return clamp(score, 0, 100)
}

// computeGrowthPotentialScore rewards certifications, skill diversity,
// an early career, and a strong record of quantified achievements.
func computeGrowthPotentialScore(candidate *types.CandidateProfile) float64 {
	score := 50.0
	score += min(float64(len(candidate.Certifications))*5, 15)
	score += min(float64(len(candidate.AllSkills()))*2, 20)
	if candidate.YearsExperience < 5 {
		score += 10
	}
	if candidate.QuantifiedAchievements >= 3 {
		score += 5
	}
	return clamp(score, 0, 100)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
