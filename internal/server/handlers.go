package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/talent-engine/internal/benchmark"
	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/recommend"
	"github.com/jonathan/talent-engine/internal/types"
)

// maxRequestBody bounds request payloads at 4 MiB; cohort-sized
// requests fit comfortably under it.
const maxRequestBody = 4 << 20

// decodeJSON decodes the request body into dst with a size cap and
// unknown-field rejection.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

type scoreRequest struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Job       *types.JobRequirements  `json:"job"`
}

func (req *scoreRequest) validate() error {
	if req.Candidate == nil {
		return fmt.Errorf("candidate is required")
	}
	if req.Job == nil {
		return fmt.Errorf("job is required")
	}
	return nil
}

// handleScore computes a predictive score for one candidate/job pair.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	score := s.scorer.Score(req.Candidate, req.Job)
	s.jsonResponse(w, http.StatusOK, score)
}

// handleMatch evaluates one candidate against one job.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if err := req.validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	match := s.matcher.Match(req.Candidate, req.Job, nil)
	s.jsonResponse(w, http.StatusOK, match)
}

type rankCandidatesRequest struct {
	Job        *types.JobRequirements    `json:"job"`
	Candidates []*types.CandidateProfile `json:"candidates"`
	MinScore   *float64                  `json:"min_score,omitempty"`
}

// handleRankCandidates ranks a cohort of candidates for one job.
func (s *Server) handleRankCandidates(w http.ResponseWriter, r *http.Request) {
	var req rankCandidatesRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Job == nil {
		s.errorResponse(w, http.StatusBadRequest, "job is required")
		return
	}

	minScore := s.minScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	ranked, err := s.matcher.RankCandidatesForJob(r.Context(), req.Job, req.Candidates, minScore)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ranked)
}

type rankJobsRequest struct {
	Candidate *types.CandidateProfile  `json:"candidate"`
	Jobs      []*types.JobRequirements `json:"jobs"`
	MinScore  *float64                 `json:"min_score,omitempty"`
}

// handleRankJobs finds the best matching jobs for one candidate.
func (s *Server) handleRankJobs(w http.ResponseWriter, r *http.Request) {
	var req rankJobsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Candidate == nil {
		s.errorResponse(w, http.StatusBadRequest, "candidate is required")
		return
	}

	minScore := s.minScore
	if req.MinScore != nil {
		minScore = *req.MinScore
	}

	ranked, err := s.matcher.FindMatchingJobsForCandidate(r.Context(), req.Candidate, req.Jobs, minScore)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, ranked)
}

type benchmarkRequest struct {
	Candidate benchmark.CohortEntry   `json:"candidate"`
	Cohort    []benchmark.CohortEntry `json:"cohort"`
}

// handleBenchmark computes one candidate's standing within a cohort.
func (s *Server) handleBenchmark(w http.ResponseWriter, r *http.Request) {
	var req benchmarkRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Candidate.CandidateID == "" {
		s.errorResponse(w, http.StatusBadRequest, "candidate.candidate_id is required")
		return
	}

	s.jsonResponse(w, http.StatusOK, benchmark.Benchmark(req.Candidate, req.Cohort))
}

type benchmarkStatsRequest struct {
	Scores []float64 `json:"scores"`
}

// handleBenchmarkStats computes population statistics for raw scores.
func (s *Server) handleBenchmarkStats(w http.ResponseWriter, r *http.Request) {
	var req benchmarkStatsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, benchmark.Stats(req.Scores))
}

type advanceRequest struct {
	Candidate *types.PipelineCandidate `json:"candidate"`
	Match     *types.MatchResult       `json:"match"`
}

type advanceResponse struct {
	Candidate types.PipelineCandidate  `json:"candidate"`
	Execution *types.WorkflowExecution `json:"execution,omitempty"`
}

// handlePipelineAdvance applies the rule engine once to a candidate.
func (s *Server) handlePipelineAdvance(w http.ResponseWriter, r *http.Request) {
	var req advanceRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Candidate == nil || req.Match == nil {
		s.errorResponse(w, http.StatusBadRequest, "candidate and match are required")
		return
	}
	if !pipeline.IsValidStage(req.Candidate.CurrentStage) {
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown stage %q", req.Candidate.CurrentStage))
		return
	}

	updated, execution, err := s.ruleEngine.Evaluate(r.Context(), *req.Candidate, *req.Match)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, advanceResponse{Candidate: updated, Execution: execution})
}

type pipelineStatsRequest struct {
	Candidates []types.PipelineCandidate `json:"candidates"`
}

// handlePipelineStats computes per-stage statistics for a cohort.
func (s *Server) handlePipelineStats(w http.ResponseWriter, r *http.Request) {
	var req pipelineStatsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	s.jsonResponse(w, http.StatusOK, pipeline.Stats(req.Candidates, time.Now()))
}

type recommendationsRequest struct {
	Score     *types.PredictiveScore `json:"score"`
	Match     *types.MatchResult     `json:"match,omitempty"`
	Benchmark *types.BenchmarkData   `json:"benchmark,omitempty"`
	Pipeline  *types.PipelineStats   `json:"pipeline,omitempty"`
}

// handleRecommendations generates prioritized advice items.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	var req recommendationsRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}
	if req.Score == nil {
		s.errorResponse(w, http.StatusBadRequest, "score is required")
		return
	}

	items := recommend.Generate(recommend.Context{
		Score:     *req.Score,
		Match:     req.Match,
		Benchmark: req.Benchmark,
		Pipeline:  req.Pipeline,
	})
	s.jsonResponse(w, http.StatusOK, items)
}

// handleListExecutions returns recent workflow executions, newest first.
func (s *Server) handleListExecutions(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	executions, err := s.executions.Recent(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if executions == nil {
		executions = []types.WorkflowExecution{}
	}
	s.jsonResponse(w, http.StatusOK, executions)
}
