package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"illuminate/internal/display"
	"illuminate/internal/store"
)

var cycleFlags struct {
	payload     string
	payloadFile string
	chain       int
	source      string
	noStore     bool
}

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Run one or more illumination cycles over a payload",
	Long: `Runs the payload through the full pipeline: pattern recognition, oracle
fan-out, acuity scoring, agentic enhancement, guardrail audit, and the
recursive feedback question. With --chain N, the follow-up question of each
cycle becomes the hypothesis of the next.`,
	RunE: runCycle,
}

func init() {
	f := cycleCmd.Flags()
	f.StringVarP(&cycleFlags.payload, "payload", "p", "", "Inline JSON payload to illuminate")
	f.StringVarP(&cycleFlags.payloadFile, "payload-file", "f", "", "Path to a JSON file containing the payload")
	f.IntVar(&cycleFlags.chain, "chain", 1, "Number of chained cycles to run")
	f.StringVar(&cycleFlags.source, "source", "cli", "Analytics source tag")
	f.BoolVar(&cycleFlags.noStore, "no-store", false, "Skip recording the run in the analytics store")
}

func runCycle(cmd *cobra.Command, _ []string) error {
	payload, err := loadPayload(cycleFlags.payload, cycleFlags.payloadFile)
	if err != nil {
		return err
	}
	if cycleFlags.chain < 1 {
		return fmt.Errorf("--chain must be at least 1")
	}

	p, err := loadProfile()
	if err != nil {
		return err
	}
	eng, registry := buildEngine(p)

	var st store.Store
	if !cycleFlags.noStore {
		s, err := openStore(p)
		if err != nil {
			return err
		}
		defer s.Close()
		st = s
	}

	out := cmd.OutOrStdout()
	for i := 0; i < cycleFlags.chain; i++ {
		result, err := eng.RunCycle(cmd.Context(), payload, registry)
		if err != nil {
			return err
		}

		if cycleFlags.chain > 1 {
			fmt.Fprintf(out, "--- cycle %d/%d [%s] ---\n", i+1, cycleFlags.chain,
				display.Verdict(result.Guardrails.Overall.String()))
		}
		if err := printJSON(result); err != nil {
			return err
		}

		if st != nil {
			if _, err := st.SaveResult(cycleFlags.source, payload, result); err != nil {
				return fmt.Errorf("record run: %w", err)
			}
		}

		// The follow-up question seeds the next cycle's hypothesis. The
		// chain lives here, outside the engine.
		next := payload.Clone()
		next["hypothesis"] = result.Question
		payload = next
	}
	return nil
}
