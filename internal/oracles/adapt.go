package oracles

import (
	"context"
	"fmt"

	"illuminate/pkg/oracle"
)

// Adapt always emits a prioritized action statement. This oracle exists to
// propose the next step, never to abstain, so its outcome class is
// actionable unconditionally.
type Adapt struct{}

func (Adapt) Name() string { return "adapt" }

var riskPriors = map[string]float64{
	"critical": 1.0,
	"high":     0.8,
	"moderate": 0.6,
	"low":      0.3,
}

var guardrailPriors = map[string]float64{
	"pass":     0.3,
	"degraded": 0.6,
	"fail":     0.9,
}

func (Adapt) Illuminate(_ context.Context, p oracle.Payload, patterns []oracle.Pattern) (oracle.Insight, error) {
	recommendation := p.Text("recommendation")
	if recommendation == "" {
		recommendation = "iterate protocols"
	}
	riskLevel := p.Text("risk_level")
	guardrailStatus := p.Text("guardrail_status")

	priority := (priorOr(riskPriors, riskLevel, 0.5) + priorOr(guardrailPriors, guardrailStatus, 0.5)) / 2

	posture := "optimize"
	if riskLevel == "critical" || riskLevel == "high" {
		posture = "stabilize"
	}
	guardrailNote := "with guardrails intact"
	if guardrailStatus == "degraded" || guardrailStatus == "fail" {
		guardrailNote = "after guardrail remediation"
	}

	in := oracle.Insight{
		Outcome: oracle.OutcomeActionable,
		Statement: fmt.Sprintf("priority %.2f: %s pathways to %s while operating %s",
			priority, posture, recommendation, guardrailNote),
	}
	if recommendation != "iterate protocols" {
		in.AddEvidence("field:recommendation")
	}
	if riskLevel != "" {
		in.AddEvidence("field:risk_level")
	}
	if constraints, ok := p["constraints"].([]any); ok && len(constraints) > 0 {
		in.Statement += fmt.Sprintf(" under %d constraints", len(constraints))
		in.AddEvidence("field:constraints")
	}
	if len(patterns) > 0 {
		in.Statement += "; first addressing the " + patterns[0].Name + " pattern"
	}
	return in, nil
}

func priorOr(m map[string]float64, key string, fallback float64) float64 {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}
