package pipeline

import (
	"math"
	"time"

	"github.com/jonathan/talent-engine/internal/types"
)

// Bottleneck thresholds: a stage is a bottleneck when its occupancy
// exceeds 20% of the cohort or its average dwell time exceeds 10 days.
const (
	bottleneckOccupancyPct = 20.0
	bottleneckDwellDays    = 10.0
)

// Stats computes per-stage counts, average dwell times and bottleneck
// flags over a cohort snapshot. The caller must pass an immutable
// snapshot; an empty cohort yields zeroed statistics.
func Stats(candidates []types.PipelineCandidate, now time.Time) types.PipelineStats {
	counts := make(map[string]int)
	dwellTotals := make(map[string]float64)
	for _, candidate := range candidates {
		counts[candidate.CurrentStage]++
		dwellTotals[candidate.CurrentStage] += DwellDays(&candidate, now)
	}

	total := len(candidates)
	stats := types.PipelineStats{Total: total}

	allStages := append(append([]string{}, StageOrder...), StageRejected)
	for _, stage := range allStages {
		count := counts[stage]
		entry := types.StageStats{Stage: stage, Count: count}
		if count > 0 {
			entry.AvgDwellDays = round2(dwellTotals[stage] / float64(count))
			entry.OccupancyPct = round2(float64(count) / float64(total) * 100)
		}
		if !IsTerminal(stage) && count > 0 &&
			(entry.OccupancyPct > bottleneckOccupancyPct || entry.AvgDwellDays > bottleneckDwellDays) {
			entry.IsBottleneck = true
			stats.Bottlenecks = append(stats.Bottlenecks, stage)
		}
		stats.Stages = append(stats.Stages, entry)
	}

	return stats
}

// round2 rounds to two decimal places for stable JSON output.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
