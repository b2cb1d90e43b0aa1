package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"illuminate/internal/display"
)

var analyticsFlags struct {
	limit int
	json  bool
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show run analytics: per-oracle acuity, guardrail histogram, recent runs",
	RunE:  runAnalytics,
}

func init() {
	f := analyticsCmd.Flags()
	f.IntVar(&analyticsFlags.limit, "limit", 10, "Number of recent runs to include")
	f.BoolVar(&analyticsFlags.json, "json", false, "Emit raw JSON instead of a readable summary")
}

func runAnalytics(cmd *cobra.Command, _ []string) error {
	p, err := loadProfile()
	if err != nil {
		return err
	}
	st, err := openStore(p)
	if err != nil {
		return err
	}
	defer st.Close()

	oracleSummary, err := st.OracleAcuitySummary()
	if err != nil {
		return err
	}
	histogram, err := st.GuardrailHistogram()
	if err != nil {
		return err
	}
	runs, err := st.RecentRuns(analyticsFlags.limit)
	if err != nil {
		return err
	}

	if analyticsFlags.json {
		return printJSON(map[string]any{
			"oracles":     oracleSummary,
			"guardrails":  histogram,
			"recent_runs": runs,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Oracles:")
	for _, row := range oracleSummary {
		fmt.Fprintf(out, "  %-14s runs=%-4d avg acuity=%.3f\n", row.Oracle, row.Count, row.AvgAcuity)
	}
	fmt.Fprintln(out, "Guardrail findings:")
	for _, status := range []string{"pass", "degraded", "fail"} {
		if n, ok := histogram[status]; ok {
			fmt.Fprintf(out, "  %-10s %d\n", display.Verdict(status), n)
		}
	}
	fmt.Fprintf(out, "Recent runs: (%d)\n", len(runs))
	for _, r := range runs {
		fmt.Fprintf(out, "  %s  %s  [%s]  acuity=%.3f\n",
			r.Run.CreatedAt, r.Run.Source, display.Verdict(r.Run.GuardrailStatus), r.Run.OverallAcuity)
		for _, in := range r.Insights {
			fmt.Fprintf(out, "    %-14s %-13s %.3f\n", in.Oracle, display.Outcome(in.Outcome), in.Acuity)
		}
		if len(r.Findings) > 0 {
			statuses := make([]string, len(r.Findings))
			for i, f := range r.Findings {
				statuses[i] = f.Status
			}
			fmt.Fprintf(out, "    guardrails: %s\n", display.VerdictPath(statuses))
			for _, f := range r.Findings {
				if f.Status != "pass" {
					fmt.Fprintf(out, "      %s: %s\n", display.LayerWithCode(f.Layer), f.Rationale)
				}
			}
		}
		fmt.Fprintf(out, "    next: %s\n", r.Run.Question)
	}
	return nil
}
