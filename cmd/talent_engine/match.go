package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/matching"
	"github.com/jonathan/talent-engine/internal/observability"
	"github.com/jonathan/talent-engine/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Evaluate a candidate/job match",
	Long:  "Turns a predictive score into an annotated match: compatibility, recommendation tier, reasons and concerns, interview questions, salary estimate and suggested next pipeline stage.",
	RunE:  runMatch,
}

var (
	matchCandidatePath string
	matchJobPath       string
	matchOutput        string
)

func init() {
	matchCmd.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to input CandidateProfile JSON file (required)")
	matchCmd.Flags().StringVarP(&matchJobPath, "job", "j", "", "Path to input JobRequirements JSON file (required)")
	matchCmd.Flags().StringVarP(&matchOutput, "out", "o", "", "Path to output MatchResult JSON file (required)")
	markRequired(matchCmd, "candidate", "job", "out")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	var candidate types.CandidateProfile
	if err := readJSONFile(matchCandidatePath, &candidate); err != nil {
		return err
	}

	var job types.JobRequirements
	if err := readJSONFile(matchJobPath, &job); err != nil {
		return err
	}

	match := matching.MustDefault().Match(&candidate, &job, nil)

	if err := writeJSONFile(matchOutput, match); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintMatch(&match)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Matched %s against %s: compatibility %.1f, %s\n",
		candidate.ID, job.ID, match.Compatibility, match.Recommendation)
	return nil
}
