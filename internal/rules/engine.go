package rules

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/store"
	"github.com/jonathan/talent-engine/internal/types"
)

// DefaultActionTimeout bounds each side-effect handler invocation. No
// response by the deadline counts as an action failure, not a process
// failure.
const DefaultActionTimeout = 5 * time.Second

// Invocation is the context object passed to side-effect handlers.
type Invocation struct {
	Action    Action
	Candidate types.PipelineCandidate
	Match     types.MatchResult
}

// ActionHandler performs one side-effecting action. Handlers are
// external collaborators registered by action kind; the engine defines
// only the invocation contract.
type ActionHandler func(ctx context.Context, inv Invocation) error

// Options configures an Engine. Zero values get sensible defaults: a
// no-op handler set, a bounded in-memory execution store, a no-op
// logger, and DefaultActionTimeout.
type Options struct {
	Handlers      map[string]ActionHandler
	Store         store.ExecutionStore
	Logger        *zap.Logger
	ActionTimeout time.Duration
	Clock         func() time.Time
}

// Engine evaluates an ordered rule set against one candidate at a time.
// Evaluation order is ascending priority with rule id as tie-break, so
// repeated evaluation of fixed inputs always produces the same fired
// sequence and final stage.
type Engine struct {
	rules         []Rule
	handlers      map[string]ActionHandler
	store         store.ExecutionStore
	log           *zap.Logger
	actionTimeout time.Duration
	now           func() time.Time
}

// NewEngine validates the rule set and builds an engine. A malformed
// rule is a programmer error and fails construction.
func NewEngine(ruleSet []Rule, opts Options) (*Engine, error) {
	for _, rule := range ruleSet {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rule set: %w", err)
		}
	}

	ordered := make([]Rule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority < ordered[j].Priority
		}
		return ordered[i].ID < ordered[j].ID
	})

	engine := &Engine{
		rules:         ordered,
		handlers:      opts.Handlers,
		store:         opts.Store,
		log:           opts.Logger,
		actionTimeout: opts.ActionTimeout,
		now:           opts.Clock,
	}
	if engine.handlers == nil {
		engine.handlers = map[string]ActionHandler{}
	}
	if engine.store == nil {
		engine.store = store.NewMemoryStore(0)
	}
	if engine.log == nil {
		engine.log = zap.NewNop()
	}
	if engine.actionTimeout <= 0 {
		engine.actionTimeout = DefaultActionTimeout
	}
	if engine.now == nil {
		engine.now = time.Now
	}
	return engine, nil
}

// MustDefault builds an engine over the builtin rule set with default
// options, panicking on the impossible construction failure.
func MustDefault() *Engine {
	engine, err := NewEngine(BuiltinRules(), Options{})
	if err != nil {
		panic(err)
	}
	return engine
}

// Rules returns the evaluation-ordered rule set.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Evaluate runs one pass of all rules over the candidate and match.
// Every rule whose condition holds fires: its name is appended to the
// candidate's rule history and its actions are dispatched in order.
// Stage-change actions compute their target from the candidate's stage
// at the start of the pass; when several fire, the last one evaluated
// wins. Side effects are at-least-once: applied actions are never
// rolled back, and a failing action leaves the execution "partial"
// while evaluation continues.
//
// When no rule fires, the candidate is returned unchanged and the
// execution is nil.
func (e *Engine) Evaluate(ctx context.Context, candidate types.PipelineCandidate, match types.MatchResult) (types.PipelineCandidate, *types.WorkflowExecution, error) {
	now := e.now()
	evalCtx := EvalContext{Candidate: candidate, Match: match, Now: now}
	fromStage := candidate.CurrentStage

	var (
		firedRules []string
		outcomes   []types.ActionOutcome
		finalStage string
	)

	for _, rule := range e.rules {
		if !rule.When.Matches(evalCtx) {
			continue
		}
		firedRules = append(firedRules, rule.Name)
		e.log.Debug("automation rule fired",
			zap.String("rule_id", rule.ID),
			zap.String("candidate_id", candidate.CandidateID),
			zap.String("stage", fromStage))

		for _, action := range rule.Then {
			if action.IsStageChange() {
				outcome := e.requestStageChange(action, fromStage)
				if outcome.Success {
					finalStage = outcome.Target
				}
				outcomes = append(outcomes, outcome)
				continue
			}
			outcomes = append(outcomes, e.dispatch(ctx, action, Invocation{
				Action:    action,
				Candidate: candidate,
				Match:     match,
			}))
		}
	}

	if len(firedRules) == 0 {
		return candidate, nil, nil
	}

	candidate.TriggeredRules = append(candidate.TriggeredRules, firedRules...)

	toStage := fromStage
	if finalStage != "" {
		moved, err := pipeline.Transition(candidate, finalStage, now)
		if err != nil {
			outcomes = append(outcomes, types.ActionOutcome{
				Action: "apply_stage_change",
				Target: finalStage,
				Error:  err.Error(),
			})
		} else {
			candidate = moved
			toStage = finalStage
		}
	}

	execution := &types.WorkflowExecution{
		ID:          uuid.NewString(),
		CandidateID: candidate.CandidateID,
		JobID:       candidate.JobID,
		FiredRules:  firedRules,
		FromStage:   fromStage,
		ToStage:     toStage,
		Actions:     outcomes,
		ExecutedAt:  now,
	}
	execution.Status, execution.Error = summarize(outcomes)

	if err := e.store.Append(ctx, *execution); err != nil {
		e.log.Error("failed to record workflow execution",
			zap.String("execution_id", execution.ID),
			zap.Error(err))
		return candidate, execution, fmt.Errorf("failed to record workflow execution: %w", err)
	}

	e.log.Info("workflow execution recorded",
		zap.String("execution_id", execution.ID),
		zap.String("candidate_id", candidate.CandidateID),
		zap.Strings("fired_rules", firedRules),
		zap.String("from_stage", fromStage),
		zap.String("to_stage", toStage),
		zap.String("status", execution.Status))

	return candidate, execution, nil
}

// requestStageChange resolves a stage-change action against the stage
// the candidate held when the pass started. An unreachable target (for
// example advancing a terminal candidate) is a failed action, not an
// engine error.
func (e *Engine) requestStageChange(action Action, fromStage string) types.ActionOutcome {
	requested := action.RequestedStage(fromStage)
	if requested == "" || !pipeline.CanTransition(fromStage, requested) {
		return types.ActionOutcome{
			Action: action.Kind,
			Target: requested,
			Error:  fmt.Sprintf("no valid stage change from %q", fromStage),
		}
	}
	return types.ActionOutcome{
		Action:  action.Kind,
		Target:  requested,
		Success: true,
	}
}

// dispatch invokes the registered handler for a side-effect action with
// the per-action timeout. Kinds with no registered handler are no-ops.
func (e *Engine) dispatch(ctx context.Context, action Action, inv Invocation) types.ActionOutcome {
	outcome := types.ActionOutcome{Action: action.Kind, Target: action.Target}
	handler, ok := e.handlers[action.Kind]
	if !ok {
		outcome.Success = true
		return outcome
	}

	started := time.Now()
	actionCtx, cancel := context.WithTimeout(ctx, e.actionTimeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- handler(actionCtx, inv)
	}()

	var err error
	select {
	case err = <-done:
	case <-actionCtx.Done():
		err = fmt.Errorf("action %s did not respond within %s", action.Kind, e.actionTimeout)
	}
	outcome.Duration = time.Since(started).Milliseconds()

	if err != nil {
		outcome.Error = err.Error()
		e.log.Warn("automation action failed",
			zap.String("action", action.Kind),
			zap.String("target", action.Target),
			zap.Error(err))
		return outcome
	}
	outcome.Success = true
	return outcome
}

// summarize folds action outcomes into an execution status. All good is
// "success", all bad is "failed", anything mixed is "partial" with the
// errors concatenated.
func summarize(outcomes []types.ActionOutcome) (string, string) {
	var failures []string
	succeeded := 0
	for _, outcome := range outcomes {
		if outcome.Success {
			succeeded++
			continue
		}
		failures = append(failures, fmt.Sprintf("%s: %s", outcome.Action, outcome.Error))
	}
	if len(failures) == 0 {
		return types.ExecutionSuccess, ""
	}
	joined := strings.Join(failures, "; ")
	if succeeded == 0 {
		return types.ExecutionFailed, joined
	}
	return types.ExecutionPartial, joined
}
