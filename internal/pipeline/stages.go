// Package pipeline models a candidate's position in the fixed sequence
// of hiring stages and computes stage statistics for a cohort.
package pipeline

import (
	"fmt"
	"time"

	"github.com/jonathan/talent-engine/internal/types"
)

// Hiring stages in their fixed order. Hired and rejected are terminal;
// rejected is reachable from any non-terminal stage.
const (
	StageReceived       = "received"
	StageScreening      = "screening"
	StagePhoneInterview = "phone_interview"
	StageTechnicalTest  = "technical_test"
	StageInterview      = "interview"
	StageFinalReview    = "final_review"
	StageOffer          = "offer"
	StageHired          = "hired"
	StageRejected       = "rejected"
)

// StageOrder is the forward progression of stages, excluding rejected.
var StageOrder = []string{
	StageReceived,
	StageScreening,
	StagePhoneInterview,
	StageTechnicalTest,
	StageInterview,
	StageFinalReview,
	StageOffer,
	StageHired,
}

// nextActionOffsets maps each stage to the number of days until the next
// action is due after entering it.
var nextActionOffsets = map[string]int{
	StageReceived:       1,
	StageScreening:      2,
	StagePhoneInterview: 3,
	StageTechnicalTest:  5,
	StageInterview:      7,
	StageFinalReview:    10,
	StageOffer:          14,
	StageHired:          0,
	StageRejected:       0,
}

// stageIndex maps stages to their position in StageOrder; rejected is
// absent.
var stageIndex = func() map[string]int {
	idx := make(map[string]int, len(StageOrder))
	for i, stage := range StageOrder {
		idx[stage] = i
	}
	return idx
}()

// IsTerminal reports whether a stage ends the pipeline.
func IsTerminal(stage string) bool {
	return stage == StageHired || stage == StageRejected
}

// IsValidStage reports whether the name is a known stage.
func IsValidStage(stage string) bool {
	if stage == StageRejected {
		return true
	}
	_, ok := stageIndex[stage]
	return ok
}

// CanTransition reports whether a candidate may move from one stage to
// another: only forward in the defined order, or directly to rejected
// from any non-terminal stage. Stages never regress.
func CanTransition(from, to string) bool {
	if IsTerminal(from) {
		return false
	}
	if to == StageRejected {
		return true
	}
	fromIdx, okFrom := stageIndex[from]
	toIdx, okTo := stageIndex[to]
	if !okFrom || !okTo {
		return false
	}
	return toIdx > fromIdx
}

// NextStage returns the stage that follows the given one in order, or ""
// when there is none.
func NextStage(stage string) string {
	idx, ok := stageIndex[stage]
	if !ok || idx+1 >= len(StageOrder) {
		return ""
	}
	return StageOrder[idx+1]
}

// StageAfter returns the stage n steps ahead of the given one, clamped
// to the final forward stage.
func StageAfter(stage string, steps int) string {
	idx, ok := stageIndex[stage]
	if !ok {
		return ""
	}
	idx += steps
	if idx >= len(StageOrder) {
		idx = len(StageOrder) - 1
	}
	return StageOrder[idx]
}

// NextActionDue computes the next-action deadline for a stage entered at
// the given time, using the fixed per-stage day-offset table.
func NextActionDue(stage string, enteredAt time.Time) time.Time {
	return enteredAt.AddDate(0, 0, nextActionOffsets[stage])
}

// Enter creates a pipeline record for a candidate entering the pipeline
// at the received stage.
func Enter(candidateID, jobID string, score float64, now time.Time) types.PipelineCandidate {
	return types.PipelineCandidate{
		CandidateID:    candidateID,
		JobID:          jobID,
		CurrentStage:   StageReceived,
		Score:          score,
		EnteredStageAt: now,
		UpdatedAt:      now,
		NextActionDue:  NextActionDue(StageReceived, now),
	}
}

// Transition moves a candidate to a new stage, updating the timestamps
// and next-action deadline. Returns an error for transitions that would
// regress the stage or leave a terminal stage.
func Transition(candidate types.PipelineCandidate, to string, now time.Time) (types.PipelineCandidate, error) {
	if !IsValidStage(to) {
		return candidate, fmt.Errorf("unknown stage %q", to)
	}
	if !CanTransition(candidate.CurrentStage, to) {
		return candidate, fmt.Errorf("cannot transition from %q to %q", candidate.CurrentStage, to)
	}
	candidate.CurrentStage = to
	candidate.EnteredStageAt = now
	candidate.UpdatedAt = now
	candidate.NextActionDue = NextActionDue(to, now)
	return candidate, nil
}

// DwellDays returns the number of whole days the candidate has spent in
// its current stage as of now.
func DwellDays(candidate *types.PipelineCandidate, now time.Time) float64 {
	if candidate.EnteredStageAt.IsZero() || now.Before(candidate.EnteredStageAt) {
		return 0
	}
	return now.Sub(candidate.EnteredStageAt).Hours() / 24
}
