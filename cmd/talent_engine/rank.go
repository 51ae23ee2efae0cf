package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/matching"
	"github.com/jonathan/talent-engine/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidates for a job",
	Long:  "Evaluates a cohort of candidates against one job in parallel, filters out matches below the minimum score, and produces a RankedMatch JSON sorted by compatibility.",
	RunE:  runRank,
}

var (
	rankJobPath        string
	rankCandidatesPath string
	rankOutput         string
	rankMinScore       float64
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobPath, "job", "j", "", "Path to input JobRequirements JSON file (required)")
	rankCmd.Flags().StringVarP(&rankCandidatesPath, "candidates", "c", "", "Path to input JSON array of CandidateProfile (required)")
	rankCmd.Flags().StringVarP(&rankOutput, "out", "o", "", "Path to output ranked matches JSON file (required)")
	rankCmd.Flags().Float64Var(&rankMinScore, "min-score", 50, "Minimum compatibility score to include")
	markRequired(rankCmd, "job", "candidates", "out")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, _ []string) error {
	var job types.JobRequirements
	if err := readJSONFile(rankJobPath, &job); err != nil {
		return err
	}

	var candidates []*types.CandidateProfile
	if err := readJSONFile(rankCandidatesPath, &candidates); err != nil {
		return err
	}

	ranked, err := matching.MustDefault().RankCandidatesForJob(context.Background(), &job, candidates, rankMinScore)
	if err != nil {
		return fmt.Errorf("failed to rank candidates: %w", err)
	}

	if err := writeJSONFile(rankOutput, ranked); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d of %d candidates for %s to %s\n",
		len(ranked), len(candidates), job.ID, rankOutput)
	return nil
}
