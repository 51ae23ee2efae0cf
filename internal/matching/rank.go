package matching

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-engine/internal/types"
)

// maxParallelEvaluations bounds concurrent scoring in batch operations.
// Evaluations share no mutable state, so the limit only guards CPU.
const maxParallelEvaluations = 8

// RankCandidatesForJob matches every candidate against one job in
// parallel and returns matches at or above minScore, sorted by
// compatibility descending. Ties break by candidate id so the order is
// deterministic.
func (e *Engine) RankCandidatesForJob(ctx context.Context, job *types.JobRequirements, candidates []*types.CandidateProfile, minScore float64) ([]types.RankedMatch, error) {
	matches := make([]types.MatchResult, len(candidates))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelEvaluations)
	var mu sync.Mutex
	for i, candidate := range candidates {
		g.Go(func() error {
			match := e.Match(candidate, job, nil)
			mu.Lock()
			matches[i] = match
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := make([]types.MatchResult, 0, len(matches))
	for _, match := range matches {
		if match.Compatibility >= minScore {
			filtered = append(filtered, match)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Compatibility != filtered[j].Compatibility {
			return filtered[i].Compatibility > filtered[j].Compatibility
		}
		return filtered[i].CandidateID < filtered[j].CandidateID
	})

	ranked := make([]types.RankedMatch, len(filtered))
	for i, match := range filtered {
		ranked[i] = types.RankedMatch{Rank: i + 1, Match: match}
	}
	return ranked, nil
}

// FindMatchingJobsForCandidate matches one candidate against every job
// and returns matches at or above minScore, sorted by compatibility
// descending with deterministic job-id tie-breaks.
func (e *Engine) FindMatchingJobsForCandidate(ctx context.Context, candidate *types.CandidateProfile, jobs []*types.JobRequirements, minScore float64) ([]types.RankedMatch, error) {
	matches := make([]types.MatchResult, len(jobs))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelEvaluations)
	var mu sync.Mutex
	for i, job := range jobs {
		g.Go(func() error {
			match := e.Match(candidate, job, nil)
			mu.Lock()
			matches[i] = match
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := make([]types.MatchResult, 0, len(matches))
	for _, match := range matches {
		if match.Compatibility >= minScore {
			filtered = append(filtered, match)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Compatibility != filtered[j].Compatibility {
			return filtered[i].Compatibility > filtered[j].Compatibility
		}
		return filtered[i].JobID < filtered[j].JobID
	})

	ranked := make([]types.RankedMatch, len(filtered))
	for i, match := range filtered {
		ranked[i] = types.RankedMatch{Rank: i + 1, Match: match}
	}
	return ranked, nil
}
