package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-engine/internal/types"
)

func makeExecution(i int) types.WorkflowExecution {
	return types.WorkflowExecution{
		ID:          fmt.Sprintf("exec_%03d", i),
		CandidateID: "cand_001",
		JobID:       "job_001",
		Status:      types.ExecutionSuccess,
		ExecutedAt:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute),
	}
}

func TestMemoryStoreRecentNewestFirst(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, makeExecution(i)))
	}

	recent, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "exec_004", recent[0].ID)
	assert.Equal(t, "exec_003", recent[1].ID)
	assert.Equal(t, "exec_002", recent[2].ID)
}

func TestMemoryStoreEvictsOldest(t *testing.T) {
	s := NewMemoryStore(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Append(ctx, makeExecution(i)))
	}

	recent, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "exec_004", recent[0].ID)
	assert.Equal(t, "exec_002", recent[2].ID)
}

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore(0)

	recent, err := s.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestMemoryStoreLimitLargerThanHistory(t *testing.T) {
	s := NewMemoryStore(10)
	ctx := context.Background()

	require.NoError(t, s.Append(ctx, makeExecution(0)))

	recent, err := s.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
