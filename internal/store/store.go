// Package store persists workflow execution records. The rule engine
// only knows the ExecutionStore interface; the bounded in-memory store
// is the default and a PostgreSQL-backed store is available for
// deployments that need durable history.
package store

import (
	"context"
	"sync"

	"github.com/jonathan/talent-engine/internal/types"
)

// ExecutionStore is the append-only boundary for workflow execution
// history. History is never mutated after the fact.
type ExecutionStore interface {
	Append(ctx context.Context, execution types.WorkflowExecution) error
	Recent(ctx context.Context, limit int) ([]types.WorkflowExecution, error)
}

// DefaultMemoryCapacity bounds the in-memory store so automation history
// cannot grow without limit.
const DefaultMemoryCapacity = 1000

// MemoryStore is a bounded, concurrency-safe ring of execution records.
// When full, the oldest record is evicted.
type MemoryStore struct {
	mu       sync.Mutex
	capacity int
	records  []types.WorkflowExecution
}

// NewMemoryStore creates a bounded in-memory store. A non-positive
// capacity uses the default.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryStore{capacity: capacity}
}

// Append records one execution, evicting the oldest when the store is
// full.
func (s *MemoryStore) Append(_ context.Context, execution types.WorkflowExecution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, execution)
	if len(s.records) > s.capacity {
		s.records = s.records[len(s.records)-s.capacity:]
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *MemoryStore) Recent(_ context.Context, limit int) ([]types.WorkflowExecution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.records) {
		limit = len(s.records)
	}
	result := make([]types.WorkflowExecution, 0, limit)
	for i := len(s.records) - 1; i >= len(s.records)-limit; i-- {
		result = append(result, s.records[i])
	}
	return result, nil
}
