package engine

import (
	"fmt"

	"illuminate/pkg/oracle"
)

// FeedbackGenerator derives the next research question from a cycle's
// outcome. Exactly one non-empty question per cycle, deterministic given
// the result. Precedence: emergent vulnerability, then guardrail
// remediation, then lowest-acuity uncertainty.
type FeedbackGenerator struct{}

// NewFeedbackGenerator returns the default generator.
func NewFeedbackGenerator() *FeedbackGenerator { return &FeedbackGenerator{} }

// Question produces the follow-up question for the cycle.
func (g *FeedbackGenerator) Question(insights []oracle.Insight, report oracle.GuardrailReport, emergent bool) string {
	if emergent {
		n := 0
		for _, in := range insights {
			if in.Outcome == oracle.OutcomeExposed || in.Outcome == oracle.OutcomeChallenged {
				n++
			}
		}
		return fmt.Sprintf("What contains the emergent vulnerability signalled by %d correlated findings?", n)
	}

	if report.Overall != oracle.VerdictPass {
		layer, status := worstLayer(report)
		return fmt.Sprintf("What mitigates the %s guardrail layer's %s status?", layer, status)
	}

	if len(insights) == 0 {
		return "What new observation should be illuminated next?"
	}

	// Ties break toward registration order: the first insight wins.
	lowest := insights[0]
	for _, in := range insights[1:] {
		if in.Acuity < lowest.Acuity {
			lowest = in
		}
	}
	return fmt.Sprintf("What evidence would clarify the %s finding: %s", lowest.OracleName, lowest.Statement)
}

// worstLayer returns the first layer carrying the overall (worst) status,
// in layer order, so remediation questions are reproducible.
func worstLayer(report oracle.GuardrailReport) (string, oracle.Verdict) {
	for _, l := range report.Layers {
		if l.Status == report.Overall {
			return l.Layer, l.Status
		}
	}
	return oracle.LayerSelfAudit, report.Overall
}
