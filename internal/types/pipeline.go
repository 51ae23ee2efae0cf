//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// PipelineCandidate tracks one candidate's position in the hiring
// pipeline for one job. Created when the candidate enters the pipeline,
// mutated only by stage-transition operations, retired (not deleted) on
// reaching a terminal stage.
type PipelineCandidate struct {
	CandidateID    string    `json:"candidate_id"`
	JobID          string    `json:"job_id"`
	CurrentStage   string    `json:"current_stage"`
	Score          float64   `json:"score"`
	EnteredStageAt time.Time `json:"entered_stage_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	NextActionDue  time.Time `json:"next_action_due"`
	Assignee       string    `json:"assignee,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	TriggeredRules []string  `json:"triggered_rules,omitempty"`
}

// StageStats holds statistics for one pipeline stage.
type StageStats struct {
	Stage        string  `json:"stage"`
	Count        int     `json:"count"`
	AvgDwellDays float64 `json:"avg_dwell_days"`
	IsBottleneck bool    `json:"is_bottleneck"`
	OccupancyPct float64 `json:"occupancy_pct"`
}

// PipelineStats aggregates stage statistics for a cohort of pipeline
// candidates.
type PipelineStats struct {
	Total       int          `json:"total"`
	Stages      []StageStats `json:"stages"`
	Bottlenecks []string     `json:"bottlenecks"`
}
