package oracle

import "testing"

func TestVerdictWorst(t *testing.T) {
	cases := []struct {
		a, b, want Verdict
	}{
		{VerdictPass, VerdictPass, VerdictPass},
		{VerdictPass, VerdictDegraded, VerdictDegraded},
		{VerdictDegraded, VerdictPass, VerdictDegraded},
		{VerdictDegraded, VerdictFail, VerdictFail},
		{VerdictFail, VerdictPass, VerdictFail},
		{VerdictFail, VerdictFail, VerdictFail},
	}
	for _, tc := range cases {
		if got := tc.a.Worst(tc.b); got != tc.want {
			t.Errorf("%v.Worst(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestWorstOfSingleFailDominates(t *testing.T) {
	layers := []LayerFinding{
		{Layer: LayerCDIL, Status: VerdictPass},
		{Layer: LayerIAL, Status: VerdictFail},
		{Layer: LayerSelfAudit, Status: VerdictPass},
	}
	if got := WorstOf(layers); got != VerdictFail {
		t.Errorf("WorstOf = %v, want fail", got)
	}
}

func TestWorstOfEmpty(t *testing.T) {
	if got := WorstOf(nil); got != VerdictPass {
		t.Errorf("WorstOf(nil) = %v, want pass", got)
	}
}

func TestVerdictMarshalText(t *testing.T) {
	cases := map[Verdict]string{
		VerdictPass:     "pass",
		VerdictDegraded: "degraded",
		VerdictFail:     "fail",
	}
	for v, want := range cases {
		b, err := v.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", v, err)
		}
		if string(b) != want {
			t.Errorf("MarshalText(%v) = %q, want %q", v, b, want)
		}
	}
}
