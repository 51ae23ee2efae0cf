//nolint:revive // types is a standard Go package name pattern
package types

// Comparison buckets for a candidate's standing within a cohort. The
// thresholds are relative to the cohort (its own p90/p75/p50), never
// absolute scores.
const (
	BucketTop10        = "top_10_percent"
	BucketTop25        = "top_25_percent"
	BucketAverage      = "average"
	BucketBelowAverage = "below_average"
)

// BenchmarkStats holds population statistics for one cohort of scores.
// An empty cohort yields the zero value, not an error.
type BenchmarkStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
}

// BenchmarkData is one candidate's relative standing within a supplied
// cohort. Stale once the cohort changes; callers recompute.
type BenchmarkData struct {
	CandidateID         string             `json:"candidate_id"`
	Score               float64            `json:"score"`
	Rank                int                `json:"rank"`       // 1-based, descending by score
	Percentile          float64            `json:"percentile"` // round((n-rank+1)/n*100)
	Bucket              string             `json:"bucket"`
	CategoryPercentiles map[string]float64 `json:"category_percentiles,omitempty"`
	CohortStats         BenchmarkStats     `json:"cohort_stats"`
}
