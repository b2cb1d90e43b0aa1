package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"illuminate/pkg/oracle"
)

func TestRecognize(t *testing.T) {
	r := NewRecognizer(DefaultPatternDefs())

	cases := []struct {
		name    string
		payload oracle.Payload
		want    []string
	}{
		{
			"decline keyword in summary",
			oracle.Payload{"summary": "Revenue dropped 20% in Q3"},
			[]string{"Decline"},
		},
		{
			"multiple patterns across fields",
			oracle.Payload{
				"summary":    "engagement spike after the launch",
				"hypothesis": "possible data leak",
			},
			[]string{"Immersive", "Pulse", "Exposure"},
		},
		{
			"case insensitive",
			oracle.Payload{"summary": "CHURN is accelerating"},
			[]string{"Pulse", "Decline"},
		},
		{
			"no patterns",
			oracle.Payload{"summary": "quarterly report attached"},
			nil,
		},
		{
			"non-text fields ignored",
			oracle.Payload{"summary": "steady quarter", "timeseries": []any{"drop", "spike"}},
			nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := oracle.PatternNames(r.Recognize(tc.payload))
			var gotNames []string
			if len(got) > 0 {
				gotNames = got
			}
			if diff := cmp.Diff(tc.want, gotNames); diff != "" {
				t.Errorf("Recognize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecognizeDeterministic(t *testing.T) {
	r := NewRecognizer(DefaultPatternDefs())
	p := oracle.Payload{
		"summary":    "churn surge with anomaly in the retention funnel",
		"hypothesis": "exposure via injection",
	}
	first := r.Recognize(p)
	for i := 0; i < 10; i++ {
		if diff := cmp.Diff(first, r.Recognize(p)); diff != "" {
			t.Fatalf("run %d differs (-first +got):\n%s", i, diff)
		}
	}
}

func TestRecognizerDedupesVocabulary(t *testing.T) {
	r := NewRecognizer([]PatternDef{
		{Name: "Pulse", Weight: 0.8, Keywords: []string{"spike"}},
		{Name: "Pulse", Weight: 0.1, Keywords: []string{"ignored"}},
	})
	got := r.Recognize(oracle.Payload{"summary": "a spike appeared"})
	if len(got) != 1 {
		t.Fatalf("got %d patterns, want 1", len(got))
	}
	if got[0].Weight != 0.8 {
		t.Errorf("weight = %v, want the first definition's 0.8", got[0].Weight)
	}
}

func TestRecognizeCarriesWeights(t *testing.T) {
	r := NewRecognizer(DefaultPatternDefs())
	got := r.Recognize(oracle.Payload{"summary": "a breach was reported"})
	want := []oracle.Pattern{{Name: "Exposure", Weight: 0.9}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Recognize() mismatch (-want +got):\n%s", diff)
	}
}
