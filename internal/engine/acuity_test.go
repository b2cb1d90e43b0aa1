package engine

import (
	"math"
	"testing"

	"illuminate/pkg/oracle"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestScore(t *testing.T) {
	s := NewScorer(DefaultConfig())
	patterns := []oracle.Pattern{
		{Name: "Decline", Weight: 0.8},
		{Name: "Pulse", Weight: 0.8},
	}

	cases := []struct {
		name    string
		insight oracle.Insight
		want    float64
	}{
		{
			// 0.3*0.5 + 0.60 + 0.05
			"validated referencing one of two patterns",
			oracle.Insight{
				Statement:    "the Decline pattern matches the drop",
				Outcome:      oracle.OutcomeValidated,
				EvidenceRefs: []string{"field:summary"},
			},
			0.80,
		},
		{
			// 0.3*1.0 + 0.40
			"challenged referencing both patterns",
			oracle.Insight{
				Statement: "Decline contradicts Pulse momentum",
				Outcome:   oracle.OutcomeChallenged,
			},
			0.70,
		},
		{
			// 0.10 prior only
			"inconclusive with nothing",
			oracle.Insight{Statement: "cannot determine", Outcome: oracle.OutcomeInconclusive},
			0.10,
		},
		{
			// evidence capped at 0.2: 0.55 + 0.2
			"exposed with many refs",
			oracle.Insight{
				Statement:    "vector found",
				Outcome:      oracle.OutcomeExposed,
				EvidenceRefs: []string{"a", "b", "c", "d", "e", "f"},
			},
			0.75,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Score(tc.insight, patterns)
			if !almostEqual(got, tc.want) {
				t.Errorf("Score() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestScoreNoPatterns(t *testing.T) {
	s := NewScorer(DefaultConfig())
	in := oracle.Insight{Statement: "Decline everywhere", Outcome: oracle.OutcomeValidated}
	if got := s.Score(in, nil); !almostEqual(got, 0.60) {
		t.Errorf("Score() with no recognized patterns = %v, want the bare prior 0.60", got)
	}
}

func TestScoreClamped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PatternWeight = 1.0
	cfg.EvidenceCap = 1.0
	cfg.EvidenceStep = 0.5
	s := NewScorer(cfg)

	in := oracle.Insight{
		Statement:    "Decline",
		Outcome:      oracle.OutcomeValidated,
		EvidenceRefs: []string{"a", "b", "c"},
	}
	got := s.Score(in, []oracle.Pattern{{Name: "Decline", Weight: 0.8}})
	if got != 1.0 {
		t.Errorf("Score() = %v, want clamped to 1.0", got)
	}
}

func TestOverall(t *testing.T) {
	s := NewScorer(DefaultConfig())

	if got := s.Overall(nil); got != 0 {
		t.Errorf("Overall(nil) = %v, want 0", got)
	}

	insights := []oracle.Insight{
		{Acuity: 0.8},
		{Acuity: 0.4},
		{Acuity: 0.6},
	}
	if got := s.Overall(insights); !almostEqual(got, 0.6) {
		t.Errorf("Overall() = %v, want 0.6", got)
	}
}

func TestScoreRange(t *testing.T) {
	s := NewScorer(DefaultConfig())
	patterns := []oracle.Pattern{{Name: "Exposure", Weight: 0.9}}
	for _, outcome := range []oracle.OutcomeClass{
		oracle.OutcomeValidated, oracle.OutcomeChallenged, oracle.OutcomeInconclusive,
		oracle.OutcomeActionable, oracle.OutcomeExposed,
	} {
		in := oracle.Insight{
			Statement:    "the Exposure pattern holds",
			Outcome:      outcome,
			EvidenceRefs: []string{"field:summary", "field:exposures"},
		}
		got := s.Score(in, patterns)
		if got < 0 || got > 1 {
			t.Errorf("Score(%s) = %v outside [0,1]", outcome, got)
		}
	}
}
