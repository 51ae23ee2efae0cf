// Package benchmark computes population statistics over cohorts of
// candidate scores and a candidate's relative standing within a cohort.
// All functions are pure; callers must pass an immutable cohort
// snapshot. Degenerate cohorts yield zeroed statistics, never an error.
package benchmark

import (
	"math"
	"sort"

	"github.com/jonathan/talent-engine/internal/types"
)

// Percentile returns the value at percentile p over scores sorted
// ascending, using the nearest-rank index ceil(p/100*n)-1 clamped to
// [0, n-1]. Percentile(100) is always the maximum. An empty slice
// returns 0.
func Percentile(p float64, sortedAsc []float64) float64 {
	n := len(sortedAsc)
	if n == 0 {
		return 0
	}
	idx := int(math.Ceil(p/100*float64(n))) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return sortedAsc[idx]
}

// Median returns the arithmetic mean of the two middle elements for an
// even count, else the middle element. An empty slice returns 0.
func Median(sortedAsc []float64) float64 {
	n := len(sortedAsc)
	if n == 0 {
		return 0
	}
	if n%2 == 0 {
		return (sortedAsc[n/2-1] + sortedAsc[n/2]) / 2
	}
	return sortedAsc[n/2]
}

// Stats computes cohort statistics over a set of scores. Thresholds
// derived here are relative to this cohort only; recompute whenever the
// cohort changes.
func Stats(scores []float64) types.BenchmarkStats {
	n := len(scores)
	if n == 0 {
		return types.BenchmarkStats{}
	}

	sorted := append([]float64{}, scores...)
	sort.Float64s(sorted)

	sum := 0.0
	for _, s := range sorted {
		sum += s
	}
	mean := sum / float64(n)

	variance := 0.0
	for _, s := range sorted {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(n)

	return types.BenchmarkStats{
		Count:  n,
		Mean:   round2(mean),
		Median: Median(sorted),
		StdDev: round2(math.Sqrt(variance)),
		Min:    sorted[0],
		Max:    sorted[n-1],
		P25:    Percentile(25, sorted),
		P75:    Percentile(75, sorted),
		P90:    Percentile(90, sorted),
	}
}

// round2 rounds to two decimal places for stable JSON output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
