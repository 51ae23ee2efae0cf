//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Workflow execution statuses.
const (
	ExecutionSuccess = "success"
	ExecutionPartial = "partial"
	ExecutionFailed  = "failed"
)

// ActionOutcome records one dispatched action within a workflow execution.
type ActionOutcome struct {
	Action   string `json:"action"`
	Target   string `json:"target,omitempty"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Duration int64  `json:"duration_ms"`
}

// WorkflowExecution is an immutable log record of one rule-evaluation
// pass that fired at least one automation rule. Already-applied actions
// are never rolled back; a partial failure leaves Status "partial" with
// a concatenated error description.
type WorkflowExecution struct {
	ID          string          `json:"id"`
	CandidateID string          `json:"candidate_id"`
	JobID       string          `json:"job_id"`
	FiredRules  []string        `json:"fired_rules"`
	FromStage   string          `json:"from_stage"`
	ToStage     string          `json:"to_stage"`
	Actions     []ActionOutcome `json:"actions"`
	Status      string          `json:"status"`
	Error       string          `json:"error,omitempty"`
	ExecutedAt  time.Time       `json:"executed_at"`
}
