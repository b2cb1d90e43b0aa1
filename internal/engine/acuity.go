package engine

import (
	"strings"

	"illuminate/pkg/oracle"
)

// Scorer computes acuity: the 0..1 confidence attached to one insight or to
// a whole cycle.
type Scorer struct {
	cfg Config
}

// NewScorer returns a scorer using cfg's weights and priors.
func NewScorer(cfg Config) *Scorer { return &Scorer{cfg: cfg} }

// Score computes an insight's base acuity:
//
//	patternWeight * (fraction of recognized patterns the statement references)
//	+ per-outcome-class prior
//	+ evidenceStep per evidence ref, capped at evidenceCap
//
// clamped to [0,1].
func (s *Scorer) Score(in oracle.Insight, patterns []oracle.Pattern) float64 {
	base := s.cfg.PatternWeight * patternFraction(in.Statement, patterns)
	base += s.cfg.prior(in.Outcome)

	evidence := s.cfg.EvidenceStep * float64(len(in.EvidenceRefs))
	if evidence > s.cfg.EvidenceCap {
		evidence = s.cfg.EvidenceCap
	}
	return clamp01(base + evidence)
}

// Overall returns the arithmetic mean of the insights' acuity. Every
// oracle's voice counts equally; no weighting by outcome class.
func (s *Scorer) Overall(insights []oracle.Insight) float64 {
	if len(insights) == 0 {
		return 0
	}
	var sum float64
	for _, in := range insights {
		sum += in.Acuity
	}
	return sum / float64(len(insights))
}

// patternFraction is the share of recognized patterns whose name appears in
// the statement, case-insensitive. No patterns recognized means no pattern
// contribution.
func patternFraction(statement string, patterns []oracle.Pattern) float64 {
	if len(patterns) == 0 {
		return 0
	}
	lowered := strings.ToLower(statement)
	referenced := 0
	for _, p := range patterns {
		if strings.Contains(lowered, strings.ToLower(p.Name)) {
			referenced++
		}
	}
	return float64(referenced) / float64(len(patterns))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
