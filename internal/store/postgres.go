package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/talent-engine/internal/types"
)

// PostgresStore persists execution records in a workflow_executions
// table. Fired rules and action outcomes are stored as JSONB.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres opens a connection pool and verifies it with a ping.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

func (s *PostgresStore) Append(ctx context.Context, execution types.WorkflowExecution) error {
	firedRules, err := json.Marshal(execution.FiredRules)
	if err != nil {
		return fmt.Errorf("failed to marshal fired rules: %w", err)
	}
	actions, err := json.Marshal(execution.Actions)
	if err != nil {
		return fmt.Errorf("failed to marshal action outcomes: %w", err)
	}

	query := `
		INSERT INTO workflow_executions
			(id, candidate_id, job_id, fired_rules, from_stage, to_stage, actions, status, error, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = s.pool.Exec(ctx, query,
		execution.ID,
		execution.CandidateID,
		execution.JobID,
		firedRules,
		execution.FromStage,
		execution.ToStage,
		actions,
		execution.Status,
		execution.Error,
		execution.ExecutedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert workflow execution: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context, limit int) ([]types.WorkflowExecution, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT id, candidate_id, job_id, fired_rules, from_stage, to_stage, actions, status, error, executed_at
		FROM workflow_executions
		ORDER BY executed_at DESC
		LIMIT $1`

	rows, err := s.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query workflow executions: %w", err)
	}
	defer rows.Close()

	var executions []types.WorkflowExecution
	for rows.Next() {
		var (
			execution  types.WorkflowExecution
			firedRules []byte
			actions    []byte
		)
		err := rows.Scan(
			&execution.ID,
			&execution.CandidateID,
			&execution.JobID,
			&firedRules,
			&execution.FromStage,
			&execution.ToStage,
			&actions,
			&execution.Status,
			&execution.Error,
			&execution.ExecutedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workflow execution: %w", err)
		}
		if err := json.Unmarshal(firedRules, &execution.FiredRules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fired rules: %w", err)
		}
		if err := json.Unmarshal(actions, &execution.Actions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action outcomes: %w", err)
		}
		executions = append(executions, execution)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate workflow executions: %w", err)
	}
	return executions, nil
}
