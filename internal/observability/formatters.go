// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScore outputs a human-readable summary of a predictive score.
func (p *Printer) PrintScore(score *types.PredictiveScore) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate: %s\n", score.CandidateID))
	sb.WriteString(fmt.Sprintf("Job:       %s\n", score.JobID))
	sb.WriteString(fmt.Sprintf("Overall:   %.1f  (confidence %.0f, profile %s)\n", score.Overall, score.Confidence, score.WeightProfile))
	sb.WriteString("\n")

	sb.WriteString("Categories:\n")
	sb.WriteString(fmt.Sprintf("  technical         %5.1f\n", score.Categories.Technical))
	sb.WriteString(fmt.Sprintf("  experience        %5.1f\n", score.Categories.Experience))
	sb.WriteString(fmt.Sprintf("  education         %5.1f\n", score.Categories.Education))
	sb.WriteString(fmt.Sprintf("  soft_skills       %5.1f\n", score.Categories.SoftSkills))
	sb.WriteString(fmt.Sprintf("  cultural_fit      %5.1f\n", score.Categories.CulturalFit))
	sb.WriteString(fmt.Sprintf("  growth_potential  %5.1f\n", score.Categories.GrowthPotential))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Interview %.0f%%  Offer %.0f%%  Retention %.0f%%  Perf %.0f%%",
		score.Probabilities.InterviewSuccess,
		score.Probabilities.Offer,
		score.Probabilities.Retention,
		score.Probabilities.Performance))

	p.printBox("PREDICTIVE SCORE", sb.String())
}

// PrintMatch outputs a match result with reasons and concerns.
func (p *Printer) PrintMatch(match *types.MatchResult) {
	if match == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Compatibility:  %.1f\n", match.Compatibility))
	sb.WriteString(fmt.Sprintf("Recommendation: %s\n", match.Recommendation))
	sb.WriteString(fmt.Sprintf("Next stage:     %s (in %d days)\n", match.SuggestedStage.Stage, match.SuggestedStage.EstimatedDays))
	sb.WriteString(fmt.Sprintf("Salary:         %d-%d %s\n", match.EstimatedSalary.Min, match.EstimatedSalary.Max, match.EstimatedSalary.Currency))

	if len(match.MatchReasons) > 0 {
		sb.WriteString("\nReasons:\n")
		count := min(len(match.MatchReasons), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", match.MatchReasons[i]))
		}
		if len(match.MatchReasons) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.MatchReasons)-maxItemsToShow))
		}
	}

	if len(match.Concerns) > 0 {
		sb.WriteString("\nConcerns:\n")
		count := min(len(match.Concerns), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ⚠ %s\n", match.Concerns[i]))
		}
		if len(match.Concerns) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(match.Concerns)-3))
		}
	}

	p.printBox("MATCH RESULT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBenchmark outputs a candidate's standing within its cohort.
func (p *Printer) PrintBenchmark(data *types.BenchmarkData) {
	if data == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidate:  %s\n", data.CandidateID))
	sb.WriteString(fmt.Sprintf("Score:      %.1f\n", data.Score))
	sb.WriteString(fmt.Sprintf("Rank:       %d of %d\n", data.Rank, data.CohortStats.Count))
	sb.WriteString(fmt.Sprintf("Percentile: %.0f\n", data.Percentile))
	sb.WriteString(fmt.Sprintf("Bucket:     %s\n", data.Bucket))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Cohort: mean %.1f  median %.1f  p90 %.1f",
		data.CohortStats.Mean, data.CohortStats.Median, data.CohortStats.P90))

	p.printBox("BENCHMARK", sb.String())
}

// PrintPipelineStats outputs per-stage pipeline statistics.
func (p *Printer) PrintPipelineStats(stats *types.PipelineStats) {
	if stats == nil || stats.Total == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates in pipeline: %d\n\n", stats.Total))

	for _, stage := range stats.Stages {
		marker := " "
		if stage.IsBottleneck {
			marker = "⚠"
		}
		sb.WriteString(fmt.Sprintf("%s %-16s %3d  (%.0f%%, dwell %.1fd)\n",
			marker, stage.Stage, stage.Count, stage.OccupancyPct, stage.AvgDwellDays))
	}

	if len(stats.Bottlenecks) > 0 {
		sb.WriteString(fmt.Sprintf("\nBottlenecks: %s", strings.Join(stats.Bottlenecks, ", ")))
	}

	p.printBox("PIPELINE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExecution outputs one workflow execution record.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintExecution(execution *types.WorkflowExecution) {
	if execution == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO RULES FIRED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Status: %s\n", execution.Status))
	sb.WriteString(fmt.Sprintf("Stage:  %s → %s\n", execution.FromStage, execution.ToStage))
	sb.WriteString("\nFired rules:\n")
	for _, name := range execution.FiredRules {
		sb.WriteString(fmt.Sprintf("  • %s\n", name))
	}

	if len(execution.Actions) > 0 {
		sb.WriteString("\nActions:\n")
		for _, action := range execution.Actions {
			marker := "✓"
			if !action.Success {
				marker = "✗"
			}
			sb.WriteString(fmt.Sprintf("  %s %s", marker, action.Action))
			if action.Target != "" {
				sb.WriteString(fmt.Sprintf(" → %s", action.Target))
			}
			sb.WriteString("\n")
		}
	}

	if execution.Error != "" {
		errText := execution.Error
		if len(errText) > 45 {
			errText = errText[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nError: %s", errText))
	}

	p.printBox("WORKFLOW EXECUTION", strings.TrimSuffix(sb.String(), "\n"))
}
