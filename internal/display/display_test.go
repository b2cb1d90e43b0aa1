package display

import "testing"

func TestOutcome(t *testing.T) {
	if got := Outcome("exposed"); got != "Exposed" {
		t.Errorf("Outcome(exposed) = %q", got)
	}
	if got := Outcome("xx999"); got != "xx999" {
		t.Errorf("unknown code should pass through, got %q", got)
	}
}

func TestLayerWithCode(t *testing.T) {
	if got := LayerWithCode("CDIL"); got != "Core Directive Isolation (CDIL)" {
		t.Errorf("LayerWithCode(CDIL) = %q", got)
	}
	if got := LayerWithCode("unknown"); got != "unknown" {
		t.Errorf("unknown layer should pass through, got %q", got)
	}
}

func TestVerdictPath(t *testing.T) {
	got := VerdictPath([]string{"pass", "degraded", "fail"})
	want := "PASS -> DEGRADED -> FAIL"
	if got != want {
		t.Errorf("VerdictPath = %q, want %q", got, want)
	}
}
