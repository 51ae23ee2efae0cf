package benchmark

import (
	"math"
	"sort"

	"github.com/jonathan/talent-engine/internal/types"
)

// CohortEntry is one member of a benchmarking cohort: an id, an overall
// score, and optional per-category scores.
type CohortEntry struct {
	CandidateID string               `json:"candidate_id"`
	Score       float64              `json:"score"`
	Categories  types.CategoryScores `json:"categories,omitempty"`
}

// Benchmark computes one candidate's standing within a cohort. The
// candidate is included in the population whether or not it already
// appears in the cohort slice. An empty cohort yields a rank of 1 over
// a population of one.
func Benchmark(candidate CohortEntry, cohort []CohortEntry) types.BenchmarkData {
	population := make([]CohortEntry, 0, len(cohort)+1)
	seen := false
	for _, entry := range cohort {
		if entry.CandidateID == candidate.CandidateID {
			seen = true
		}
		population = append(population, entry)
	}
	if !seen {
		population = append(population, candidate)
	}

	scores := make([]float64, len(population))
	for i, entry := range population {
		scores[i] = entry.Score
	}
	stats := Stats(scores)

	rank := rankDescending(candidate.Score, scores)
	n := len(scores)
	percentile := math.Round(float64(n-rank+1) / float64(n) * 100)

	return types.BenchmarkData{
		CandidateID:         candidate.CandidateID,
		Score:               candidate.Score,
		Rank:                rank,
		Percentile:          percentile,
		Bucket:              bucketFor(candidate.Score, stats),
		CategoryPercentiles: categoryPercentiles(candidate, population),
		CohortStats:         stats,
	}
}

// rankDescending returns the 1-based rank of a score when the cohort is
// sorted descending; equal scores share the better rank.
func rankDescending(score float64, scores []float64) int {
	rank := 1
	for _, other := range scores {
		if other > score {
			rank++
		}
	}
	return rank
}

// bucketFor assigns the coarse comparison bucket using the cohort's own
// p90/p75/p50 thresholds.
func bucketFor(score float64, stats types.BenchmarkStats) string {
	switch {
	case score >= stats.P90:
		return types.BucketTop10
	case score >= stats.P75:
		return types.BucketTop25
	case score >= stats.Median:
		return types.BucketAverage
	default:
		return types.BucketBelowAverage
	}
}

// categoryPercentiles computes the candidate's percentile position for
// each score category across the population. Entries without category
// data contribute zeroes, which matches how absent sub-scores are
// treated elsewhere.
func categoryPercentiles(candidate CohortEntry, population []CohortEntry) map[string]float64 {
	extractors := map[string]func(types.CategoryScores) float64{
		"technical":        func(c types.CategoryScores) float64 { return c.Technical },
		"experience":       func(c types.CategoryScores) float64 { return c.Experience },
		"education":        func(c types.CategoryScores) float64 { return c.Education },
		"soft_skills":      func(c types.CategoryScores) float64 { return c.SoftSkills },
		"cultural_fit":     func(c types.CategoryScores) float64 { return c.CulturalFit },
		"growth_potential": func(c types.CategoryScores) float64 { return c.GrowthPotential },
	}

	result := make(map[string]float64, len(extractors))
	n := len(population)
	for name, extract := range extractors {
		values := make([]float64, n)
		for i, entry := range population {
			values[i] = extract(entry.Categories)
		}
		sort.Float64s(values)

		// Fraction of the population at or below the candidate's value.
		own := extract(candidate.Categories)
		below := 0
		for _, v := range values {
			if v <= own {
				below++
			}
		}
		result[name] = math.Round(float64(below) / float64(n) * 100)
	}
	return result
}
