package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/observability"
	"github.com/jonathan/talent-engine/internal/pipeline"
	"github.com/jonathan/talent-engine/internal/rules"
	"github.com/jonathan/talent-engine/internal/types"
)

var advanceCmd = &cobra.Command{
	Use:   "advance",
	Short: "Apply the automation rules to a pipeline candidate",
	Long:  "Runs one rule-engine pass over a pipeline candidate and its match result, applying any requested stage change and recording a workflow execution.",
	RunE:  runAdvance,
}

var pipelineStatsCmd = &cobra.Command{
	Use:   "pipeline-stats",
	Short: "Compute pipeline stage statistics",
	Long:  "Computes per-stage candidate counts, occupancy, average dwell time and bottleneck flags for a cohort of pipeline candidates.",
	RunE:  runPipelineStats,
}

var (
	advanceCandidatePath string
	advanceMatchPath     string
	advanceRulesPath     string
	advanceOutput        string

	statsCandidatesPath string
	statsOutput         string
)

type advanceResult struct {
	Candidate types.PipelineCandidate  `json:"candidate"`
	Execution *types.WorkflowExecution `json:"execution,omitempty"`
}

func init() {
	advanceCmd.Flags().StringVarP(&advanceCandidatePath, "candidate", "c", "", "Path to input PipelineCandidate JSON file (required)")
	advanceCmd.Flags().StringVarP(&advanceMatchPath, "match", "m", "", "Path to input MatchResult JSON file (required)")
	advanceCmd.Flags().StringVarP(&advanceRulesPath, "rules", "r", "", "Path to a JSON rule file (defaults to the builtin rule set)")
	advanceCmd.Flags().StringVarP(&advanceOutput, "out", "o", "", "Path to output JSON file (required)")
	markRequired(advanceCmd, "candidate", "match", "out")
	rootCmd.AddCommand(advanceCmd)

	pipelineStatsCmd.Flags().StringVarP(&statsCandidatesPath, "candidates", "c", "", "Path to input JSON array of PipelineCandidate (required)")
	pipelineStatsCmd.Flags().StringVarP(&statsOutput, "out", "o", "", "Path to output PipelineStats JSON file (required)")
	markRequired(pipelineStatsCmd, "candidates", "out")
	rootCmd.AddCommand(pipelineStatsCmd)
}

func runAdvance(_ *cobra.Command, _ []string) error {
	var candidate types.PipelineCandidate
	if err := readJSONFile(advanceCandidatePath, &candidate); err != nil {
		return err
	}
	if !pipeline.IsValidStage(candidate.CurrentStage) {
		return fmt.Errorf("unknown stage %q", candidate.CurrentStage)
	}

	var match types.MatchResult
	if err := readJSONFile(advanceMatchPath, &match); err != nil {
		return err
	}

	ruleSet := rules.BuiltinRules()
	if advanceRulesPath != "" {
		loaded, err := rules.LoadRules(advanceRulesPath)
		if err != nil {
			return err
		}
		ruleSet = loaded
	}

	engine, err := rules.NewEngine(ruleSet, rules.Options{})
	if err != nil {
		return err
	}

	updated, execution, err := engine.Evaluate(context.Background(), candidate, match)
	if err != nil {
		return fmt.Errorf("rule evaluation failed: %w", err)
	}

	if err := writeJSONFile(advanceOutput, advanceResult{Candidate: updated, Execution: execution}); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintExecution(execution)
	}

	if execution == nil {
		_, _ = fmt.Fprintf(os.Stdout, "No rules fired for %s (stage %s)\n", candidate.CandidateID, candidate.CurrentStage)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Applied %d rules to %s: %s -> %s\n",
			len(execution.FiredRules), candidate.CandidateID, execution.FromStage, execution.ToStage)
	}
	return nil
}

func runPipelineStats(_ *cobra.Command, _ []string) error {
	var candidates []types.PipelineCandidate
	if err := readJSONFile(statsCandidatesPath, &candidates); err != nil {
		return err
	}

	stats := pipeline.Stats(candidates, time.Now())

	if err := writeJSONFile(statsOutput, stats); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintPipelineStats(&stats)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Computed stats for %d candidates (%d bottlenecks)\n",
		stats.Total, len(stats.Bottlenecks))
	return nil
}
