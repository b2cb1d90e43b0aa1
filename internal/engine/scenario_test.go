package engine

import (
	"context"
	"strings"
	"testing"

	"illuminate/internal/oracles"
	"illuminate/pkg/oracle"
)

// End-to-end cycles over the built-in oracles.

func TestCycleRevenueDecline(t *testing.T) {
	eng := New(DefaultConfig(), DefaultPatternDefs())
	payload := oracle.Payload{
		"summary":    "revenue dropped 20% in Q3",
		"hypothesis": "seasonal effect",
	}

	result, err := eng.RunCycle(context.Background(), payload, oracles.DefaultRegistry())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}

	byOracle := make(map[string]oracle.Insight, len(result.Insights))
	for _, in := range result.Insights {
		byOracle[in.OracleName] = in
	}

	if got := byOracle["dataset"].Outcome; got != oracle.OutcomeValidated {
		t.Errorf("dataset outcome = %q, want validated (quantitative signal present)", got)
	}
	if got := byOracle["interpret"].Outcome; got != oracle.OutcomeChallenged {
		t.Errorf("interpret outcome = %q, want challenged (Decline contradicts seasonal)", got)
	}
	if result.OverallAcuity <= 0.3 {
		t.Errorf("OverallAcuity = %v, want > 0.3", result.OverallAcuity)
	}
	if result.Guardrails.Overall != oracle.VerdictPass {
		t.Errorf("verdict = %v, want pass: %+v", result.Guardrails.Overall, result.Guardrails.Layers)
	}

	// The follow-up targets the lowest-acuity insight.
	lowest := result.Insights[0]
	for _, in := range result.Insights[1:] {
		if in.Acuity < lowest.Acuity {
			lowest = in
		}
	}
	if !strings.Contains(result.Question, lowest.OracleName) {
		t.Errorf("Question = %q, want it to reference the %s finding", result.Question, lowest.OracleName)
	}
}

func TestCycleEmergentExposure(t *testing.T) {
	eng := New(DefaultConfig(), DefaultPatternDefs())
	payload := oracle.Payload{
		"summary":    "credential leak suspected after the breach",
		"hypothesis": "our systems are secure",
	}

	result, err := eng.RunCycle(context.Background(), payload, oracles.DefaultRegistry())
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}

	byOracle := make(map[string]oracle.Insight, len(result.Insights))
	for _, in := range result.Insights {
		byOracle[in.OracleName] = in
	}

	if got := byOracle["vulnerability"].Outcome; got != oracle.OutcomeExposed {
		t.Errorf("vulnerability outcome = %q, want exposed", got)
	}
	if got := byOracle["interpret"].Outcome; got != oracle.OutcomeChallenged {
		t.Errorf("interpret outcome = %q, want challenged (Exposure contradicts secure)", got)
	}
	if !result.EmergentVulnerability {
		t.Error("EmergentVulnerability = false, want true for exposed + challenged")
	}

	// The adapt oracle always contributes an actionable mitigation, so
	// the self-audit layer accepts the emergent flag.
	for _, l := range result.Guardrails.Layers {
		if l.Layer == oracle.LayerSelfAudit && l.Status != oracle.VerdictPass {
			t.Errorf("self-audit = %v (%s), want pass with a mitigation present", l.Status, l.Rationale)
		}
	}
	if !strings.Contains(result.Question, "emergent vulnerability") {
		t.Errorf("Question = %q, want the emergent form", result.Question)
	}
}

func TestCycleEmergentWithoutMitigationFails(t *testing.T) {
	eng := New(DefaultConfig(), DefaultPatternDefs())
	registry := oracle.NewRegistry(oracles.Dataset{}, oracles.Interpret{}, oracles.Vulnerability{})
	payload := oracle.Payload{
		"summary":    "credential leak suspected after the breach",
		"hypothesis": "our systems are secure",
	}

	result, err := eng.RunCycle(context.Background(), payload, registry)
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if !result.EmergentVulnerability {
		t.Fatal("EmergentVulnerability = false, want true")
	}
	if result.Guardrails.Overall != oracle.VerdictFail {
		t.Errorf("verdict = %v, want fail without an actionable mitigation", result.Guardrails.Overall)
	}
}

func TestCycleFailingOracleKeepsIALClean(t *testing.T) {
	eng := New(DefaultConfig(), DefaultPatternDefs())
	registry := oracles.DefaultRegistry()
	registry.Register(oracle.Func{
		OracleName: "external",
		Fn: func(_ context.Context, _ oracle.Payload, _ []oracle.Pattern) (oracle.Insight, error) {
			panic("backend offline")
		},
	})

	result, err := eng.RunCycle(context.Background(), oracle.Payload{"summary": "revenue dropped 20%"}, registry)
	if err != nil {
		t.Fatalf("RunCycle: %v", err)
	}
	if len(result.Insights) != 5 {
		t.Fatalf("got %d insights, want 5 including the placeholder", len(result.Insights))
	}

	// A failed oracle fills its slot; the adherence layer checks result
	// schema, not oracle success.
	for _, l := range result.Guardrails.Layers {
		if l.Layer == oracle.LayerIAL && l.Status != oracle.VerdictPass {
			t.Errorf("IAL = %v (%s), want pass despite the failed oracle", l.Status, l.Rationale)
		}
	}
}
