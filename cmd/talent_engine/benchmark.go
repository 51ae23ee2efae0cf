package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-engine/internal/benchmark"
	"github.com/jonathan/talent-engine/internal/observability"
)

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Benchmark a candidate against a cohort",
	Long:  "Computes one candidate's rank, percentile, comparison bucket and per-category percentiles relative to a cohort of scored candidates, producing a BenchmarkData JSON.",
	RunE:  runBenchmark,
}

var (
	benchmarkCandidatePath string
	benchmarkCohortPath    string
	benchmarkOutput        string
)

func init() {
	benchmarkCmd.Flags().StringVarP(&benchmarkCandidatePath, "candidate", "c", "", "Path to input cohort entry JSON for the candidate (required)")
	benchmarkCmd.Flags().StringVarP(&benchmarkCohortPath, "cohort", "p", "", "Path to input JSON array of cohort entries (required)")
	benchmarkCmd.Flags().StringVarP(&benchmarkOutput, "out", "o", "", "Path to output BenchmarkData JSON file (required)")
	markRequired(benchmarkCmd, "candidate", "cohort", "out")

	rootCmd.AddCommand(benchmarkCmd)
}

func runBenchmark(_ *cobra.Command, _ []string) error {
	var candidate benchmark.CohortEntry
	if err := readJSONFile(benchmarkCandidatePath, &candidate); err != nil {
		return err
	}

	var cohort []benchmark.CohortEntry
	if err := readJSONFile(benchmarkCohortPath, &cohort); err != nil {
		return err
	}

	data := benchmark.Benchmark(candidate, cohort)

	if err := writeJSONFile(benchmarkOutput, data); err != nil {
		return err
	}

	if verbose {
		observability.NewPrinter(os.Stdout).PrintBenchmark(&data)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Benchmarked %s: rank %d of %d (%s)\n",
		candidate.CandidateID, data.Rank, data.CohortStats.Count, data.Bucket)
	return nil
}
