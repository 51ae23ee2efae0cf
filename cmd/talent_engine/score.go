package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/observability"
	"github.com/jonathan/talent-engine/internal/scoring"
	"github.com/jonathan/talent-engine/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a candidate against a job",
	Long:  "Deterministically computes the six category scores, weighted overall score, outcome probabilities and confidence for one candidate/job pair, producing a PredictiveScore JSON.",
	RunE:  runScore,
}

var (
	scoreCandidatePath string
	scoreJobPath       string
	scoreOutput        string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreCandidatePath, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to input JobRequirements JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to output PredictiveScore JSON file (required)")
	markRequired(scoreCmd, "candidate", "job", "out")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(scoreCandidatePath, &candidate); err != nil {
		return err
	}

	var job types.JobRequirements
	if err := readJSONFile(scoreJobPath, &job); err != nil {
		return err
	}

	score := scoring.MustDefault().Score(&candidate, &job)

	if err := writeJSONFile(scoreOutput, score); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintScore(&score)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Scored %s against %s: overall %.1f (confidence %.0f)\n",
		candidate.ID, job.ID, score.Overall, score.Confidence)
	return nil
}
