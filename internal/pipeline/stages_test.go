package pipeline

import (
	"testing"
	"time"

	"github.com/jonathan/talent-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func TestCanTransition_ForwardOnly(t *testing.T) {
	assert.True(t, CanTransition(StageReceived, StageScreening))
	assert.True(t, CanTransition(StageReceived, StagePhoneInterview)) // skipping ahead is allowed
	assert.True(t, CanTransition(StageOffer, StageHired))

	assert.False(t, CanTransition(StageScreening, StageReceived), "stages never regress")
	assert.False(t, CanTransition(StageInterview, StageScreening))
}

func TestCanTransition_RejectedFromAnyNonTerminal(t *testing.T) {
	for _, stage := range StageOrder {
		if IsTerminal(stage) {
			continue
		}
		assert.True(t, CanTransition(stage, StageRejected), "stage %s", stage)
	}
}

func TestCanTransition_TerminalStagesAreFinal(t *testing.T) {
	assert.False(t, CanTransition(StageHired, StageRejected))
	assert.False(t, CanTransition(StageRejected, StageScreening))
	assert.False(t, CanTransition(StageRejected, StageRejected))
}

func TestStageAfter_ClampsAtHired(t *testing.T) {
	assert.Equal(t, StagePhoneInterview, StageAfter(StageReceived, 2))
	assert.Equal(t, StageHired, StageAfter(StageOffer, 5))
	assert.Equal(t, "", StageAfter(StageRejected, 1))
}

func TestNextActionDue_UsesOffsetTable(t *testing.T) {
	entered := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, entered.AddDate(0, 0, 1), NextActionDue(StageReceived, entered))
	assert.Equal(t, entered.AddDate(0, 0, 5), NextActionDue(StageTechnicalTest, entered))
	assert.Equal(t, entered.AddDate(0, 0, 14), NextActionDue(StageOffer, entered))
	assert.Equal(t, entered, NextActionDue(StageHired, entered))
	assert.Equal(t, entered, NextActionDue(StageRejected, entered))
}

func TestEnter_StartsAtReceived(t *testing.T) {
	candidate := Enter("cand_001", "job_001", 88, testNow)

	assert.Equal(t, StageReceived, candidate.CurrentStage)
	assert.Equal(t, testNow, candidate.EnteredStageAt)
	assert.Equal(t, testNow.AddDate(0, 0, 1), candidate.NextActionDue)
}

func TestTransition_UpdatesTimestamps(t *testing.T) {
	candidate := Enter("cand_001", "job_001", 88, testNow)
	later := testNow.Add(48 * time.Hour)

	moved, err := Transition(candidate, StageScreening, later)
	require.NoError(t, err)

	assert.Equal(t, StageScreening, moved.CurrentStage)
	assert.Equal(t, later, moved.EnteredStageAt)
	assert.Equal(t, later.AddDate(0, 0, 2), moved.NextActionDue)
}

func TestTransition_RejectsRegression(t *testing.T) {
	candidate := Enter("cand_001", "job_001", 88, testNow)
	candidate.CurrentStage = StageInterview

	_, err := Transition(candidate, StageScreening, testNow)
	require.Error(t, err)
}

func TestTransition_UnknownStage(t *testing.T) {
	candidate := Enter("cand_001", "job_001", 88, testNow)

	_, err := Transition(candidate, "limbo", testNow)
	require.Error(t, err)
}

func TestDwellDays(t *testing.T) {
	candidate := types.PipelineCandidate{EnteredStageAt: testNow.Add(-72 * time.Hour)}

	assert.InDelta(t, 3.0, DwellDays(&candidate, testNow), 0.01)
	assert.Equal(t, 0.0, DwellDays(&types.PipelineCandidate{}, testNow))
}
