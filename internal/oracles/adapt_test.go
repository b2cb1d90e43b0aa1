package oracles

import (
	"context"
	"strings"
	"testing"

	"illuminate/pkg/oracle"
)

func TestAdaptAlwaysActionable(t *testing.T) {
	payloads := []oracle.Payload{
		{"summary": "nothing remarkable"},
		{"summary": "incident", "risk_level": "critical", "guardrail_status": "fail"},
		{"hypothesis": "growth"},
	}
	for _, p := range payloads {
		in, err := Adapt{}.Illuminate(context.Background(), p, nil)
		if err != nil {
			t.Fatalf("Illuminate(%v): %v", p, err)
		}
		if in.Outcome != oracle.OutcomeActionable {
			t.Errorf("Outcome = %q for %v, want actionable unconditionally", in.Outcome, p)
		}
		if in.Statement == "" {
			t.Error("empty action statement")
		}
	}
}

func TestAdaptPriorityAndPosture(t *testing.T) {
	cases := []struct {
		name         string
		payload      oracle.Payload
		wantPriority string
		wantPosture  string
	}{
		{
			"critical risk failing guardrail",
			oracle.Payload{"summary": "s", "risk_level": "critical", "guardrail_status": "fail"},
			"priority 0.95", "stabilize",
		},
		{
			"low risk passing guardrail",
			oracle.Payload{"summary": "s", "risk_level": "low", "guardrail_status": "pass"},
			"priority 0.30", "optimize",
		},
		{
			"unknown levels fall back to midpoint",
			oracle.Payload{"summary": "s"},
			"priority 0.50", "optimize",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in, err := Adapt{}.Illuminate(context.Background(), tc.payload, nil)
			if err != nil {
				t.Fatalf("Illuminate: %v", err)
			}
			if !strings.Contains(in.Statement, tc.wantPriority) {
				t.Errorf("Statement = %q, want %q", in.Statement, tc.wantPriority)
			}
			if !strings.Contains(in.Statement, tc.wantPosture) {
				t.Errorf("Statement = %q, want posture %q", in.Statement, tc.wantPosture)
			}
		})
	}
}

func TestAdaptEvidenceRefs(t *testing.T) {
	p := oracle.Payload{
		"summary":        "s",
		"recommendation": "rotate credentials quarterly",
		"risk_level":     "high",
		"constraints":    []any{"budget freeze", "no downtime windows"},
	}
	in, err := Adapt{}.Illuminate(context.Background(), p, nil)
	if err != nil {
		t.Fatalf("Illuminate: %v", err)
	}
	for _, want := range []string{"field:recommendation", "field:risk_level", "field:constraints"} {
		if !hasRef(in, want) {
			t.Errorf("EvidenceRefs = %v, missing %s", in.EvidenceRefs, want)
		}
	}
	if !strings.Contains(in.Statement, "under 2 constraints") {
		t.Errorf("Statement = %q, want the constraint count", in.Statement)
	}
	if !strings.Contains(in.Statement, "rotate credentials quarterly") {
		t.Errorf("Statement = %q, want the recommendation echoed", in.Statement)
	}
}

func TestAdaptLeadsWithFirstPattern(t *testing.T) {
	patterns := []oracle.Pattern{{Name: "Decline", Weight: 0.8}, {Name: "Drift", Weight: 0.6}}
	in, err := Adapt{}.Illuminate(context.Background(), oracle.Payload{"summary": "s"}, patterns)
	if err != nil {
		t.Fatalf("Illuminate: %v", err)
	}
	if !strings.Contains(in.Statement, "first addressing the Decline pattern") {
		t.Errorf("Statement = %q, want the first recognized pattern addressed", in.Statement)
	}
}
