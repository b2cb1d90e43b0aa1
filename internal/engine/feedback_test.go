package engine

import (
	"strings"
	"testing"

	"illuminate/pkg/oracle"
)

func passReport() oracle.GuardrailReport {
	layers := []oracle.LayerFinding{
		{Layer: oracle.LayerCDIL, Status: oracle.VerdictPass},
		{Layer: oracle.LayerIAL, Status: oracle.VerdictPass},
		{Layer: oracle.LayerSelfAudit, Status: oracle.VerdictPass},
	}
	return oracle.GuardrailReport{Layers: layers, Overall: oracle.VerdictPass}
}

func TestQuestionEmergentPrecedence(t *testing.T) {
	g := NewFeedbackGenerator()
	insights := []oracle.Insight{
		{OracleName: "interpret", Outcome: oracle.OutcomeChallenged, Acuity: 0.4},
		{OracleName: "vulnerability", Outcome: oracle.OutcomeExposed, Acuity: 0.6},
	}
	report := passReport()
	report.Layers[2].Status = oracle.VerdictFail
	report.Overall = oracle.VerdictFail

	q := g.Question(insights, report, true)
	if !strings.Contains(q, "emergent vulnerability") || !strings.Contains(q, "2 correlated") {
		t.Errorf("Question = %q, want the emergent form naming 2 findings", q)
	}
}

func TestQuestionGuardrailRemediation(t *testing.T) {
	g := NewFeedbackGenerator()
	insights := []oracle.Insight{{OracleName: "dataset", Statement: "s", Acuity: 0.3}}
	report := passReport()
	report.Layers[0].Status = oracle.VerdictDegraded
	report.Overall = oracle.VerdictDegraded

	q := g.Question(insights, report, false)
	want := "What mitigates the CDIL guardrail layer's degraded status?"
	if q != want {
		t.Errorf("Question = %q, want %q", q, want)
	}
}

func TestQuestionLowestAcuity(t *testing.T) {
	g := NewFeedbackGenerator()
	insights := []oracle.Insight{
		{OracleName: "dataset", Statement: "figures hold", Acuity: 0.7},
		{OracleName: "interpret", Statement: "hypothesis shaky", Acuity: 0.2},
		{OracleName: "adapt", Statement: "do the thing", Acuity: 0.5},
	}
	q := g.Question(insights, passReport(), false)
	if !strings.Contains(q, "interpret") || !strings.Contains(q, "hypothesis shaky") {
		t.Errorf("Question = %q, want it to target the lowest-acuity insight", q)
	}
}

func TestQuestionTieBreaksToRegistrationOrder(t *testing.T) {
	g := NewFeedbackGenerator()
	insights := []oracle.Insight{
		{OracleName: "dataset", Statement: "first", Acuity: 0.3},
		{OracleName: "interpret", Statement: "second", Acuity: 0.3},
	}
	q := g.Question(insights, passReport(), false)
	if !strings.Contains(q, "dataset") {
		t.Errorf("Question = %q, want the tie broken toward the first oracle", q)
	}
}

func TestQuestionNeverEmpty(t *testing.T) {
	g := NewFeedbackGenerator()
	cases := []struct {
		name     string
		insights []oracle.Insight
		report   oracle.GuardrailReport
		emergent bool
	}{
		{"no insights pass", nil, passReport(), false},
		{"no insights fail", nil, oracle.GuardrailReport{Overall: oracle.VerdictFail}, false},
		{"emergent no insights", nil, passReport(), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if q := g.Question(tc.insights, tc.report, tc.emergent); q == "" {
				t.Error("Question returned empty string")
			}
		})
	}
}
