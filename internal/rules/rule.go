// Package rules implements the prioritized condition/action automation
// layer over pipeline candidates. Rules are declarative data: conditions
// and actions are tagged variants, so rule sets can be serialized,
// audited, and tested independently of the engine that executes them.
package rules

import (
	"fmt"
	"time"

	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/types"
)

// Condition kinds.
const (
	CondMinOverall      = "min_overall"       // match overall score >= Threshold
	CondMaxOverallBelow = "max_overall_below" // match overall score < Threshold
	CondRecommendation  = "recommendation_is" // recommendation tier == Tier
	CondDwellExceeds    = "dwell_exceeds_days"
	CondCategoryAtLeast = "category_at_least" // named category >= Threshold
	CondAlways          = "always"
)

// Action kinds. The first three request a stage change; the rest are
// side effects dispatched to registered handlers by name.
const (
	ActionAdvanceStage     = "advance_stage"
	ActionAdvanceTwoStages = "advance_two_stages"
	ActionReject           = "reject"

	ActionSendMessage       = "send_message"
	ActionUpdateStatus      = "update_status"
	ActionAssignOwner       = "assign_owner"
	ActionScheduleInterview = "schedule_interview"
	ActionCreateTask        = "create_task"
	ActionSendNotification  = "send_notification"
	ActionGenerateReport    = "generate_report"
)

var validConditionKinds = map[string]bool{
	CondMinOverall:      true,
	CondMaxOverallBelow: true,
	CondRecommendation:  true,
	CondDwellExceeds:    true,
	CondCategoryAtLeast: true,
	CondAlways:          true,
}

var validActionKinds = map[string]bool{
	ActionAdvanceStage:      true,
	ActionAdvanceTwoStages:  true,
	ActionReject:            true,
	ActionSendMessage:       true,
	ActionUpdateStatus:      true,
	ActionAssignOwner:       true,
	ActionScheduleInterview: true,
	ActionCreateTask:        true,
	ActionSendNotification:  true,
	ActionGenerateReport:    true,
}

// Condition is a side-effect-free predicate over an evaluation context.
// Kind selects the predicate; the remaining fields parameterize it.
type Condition struct {
	Kind      string  `json:"kind"`
	Threshold float64 `json:"threshold,omitempty"`
	Tier      string  `json:"tier,omitempty"`
	Category  string  `json:"category,omitempty"`
	Days      float64 `json:"days,omitempty"`
}

// Action describes one effect a fired rule requests. Target names the
// message template, owner, or task for side-effect kinds.
type Action struct {
	Kind   string `json:"kind"`
	Target string `json:"target,omitempty"`
}

// Rule is one automation rule. Rules are configuration data, never
// per-candidate state. Lower priority runs first.
type Rule struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Priority int       `json:"priority"`
	When     Condition `json:"when"`
	Then     []Action  `json:"then"`
}

// EvalContext is the read-only input one evaluation pass sees.
type EvalContext struct {
	Candidate types.PipelineCandidate
	Match     types.MatchResult
	Now       time.Time
}

// Matches evaluates the condition against the context. Unknown kinds
// never match; Validate catches them before evaluation.
func (c Condition) Matches(ctx EvalContext) bool {
	switch c.Kind {
	case CondMinOverall:
		return ctx.Match.OverallScore >= c.Threshold
	case CondMaxOverallBelow:
		return ctx.Match.OverallScore < c.Threshold
	case CondRecommendation:
		return ctx.Match.Recommendation == c.Tier
	case CondDwellExceeds:
		if pipeline.IsTerminal(ctx.Candidate.CurrentStage) {
			return false
		}
		return pipeline.DwellDays(&ctx.Candidate, ctx.Now) > c.Days
	case CondCategoryAtLeast:
		score := types.PredictiveScore{Categories: ctx.Match.Categories}
		if c.Category == "" {
			return score.MaxCategory() >= c.Threshold
		}
		return score.CategoryByName(c.Category) >= c.Threshold
	case CondAlways:
		return true
	}
	return false
}

// RequestedStage returns the stage this action requests for a candidate
// currently at fromStage, or "" when the action is a pure side effect.
func (a Action) RequestedStage(fromStage string) string {
	switch a.Kind {
	case ActionAdvanceStage:
		return pipeline.NextStage(fromStage)
	case ActionAdvanceTwoStages:
		return pipeline.StageAfter(fromStage, 2)
	case ActionReject:
		return pipeline.StageRejected
	}
	return ""
}

// IsStageChange reports whether the action kind requests a stage change.
func (a Action) IsStageChange() bool {
	switch a.Kind {
	case ActionAdvanceStage, ActionAdvanceTwoStages, ActionReject:
		return true
	}
	return false
}

// Validate checks a rule for structural errors. Malformed rules are
// programmer errors and fail fast at engine construction.
func (r Rule) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("rule has empty id")
	}
	if !validConditionKinds[r.When.Kind] {
		return fmt.Errorf("rule %s: unknown condition kind %q", r.ID, r.When.Kind)
	}
	if len(r.Then) == 0 {
		return fmt.Errorf("rule %s: no actions", r.ID)
	}
	for _, action := range r.Then {
		if !validActionKinds[action.Kind] {
			return fmt.Errorf("rule %s: unknown action kind %q", r.ID, action.Kind)
		}
	}
	return nil
}
