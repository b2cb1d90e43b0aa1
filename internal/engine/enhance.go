package engine

import (
	"context"
	"fmt"
	"strings"

	"illuminate/pkg/oracle"
)

// Enhancer is the agentic enhancement layer. It may trigger one bounded
// self-refinement pass per insight per cycle and amplifies vulnerability
// signals. The hard invariant: an insight's acuity never decreases here.
type Enhancer struct {
	cfg    Config
	scorer *Scorer
}

// NewEnhancer returns an enhancer using cfg's threshold and boost policy.
func NewEnhancer(cfg Config, scorer *Scorer) *Enhancer {
	return &Enhancer{cfg: cfg, scorer: scorer}
}

// exposedBoost is the autonomous acuity bump for exposed insights.
// Vulnerability signals are deliberately amplified, never suppressed.
const exposedBoost = 0.05

// Enhance applies the enhancement policy to one insight. When the insight
// scored below the refinement threshold and its producing oracle is still
// registered, the oracle is re-invoked once with enriched context; the
// refined insight is kept only if it re-scores strictly higher.
func (e *Enhancer) Enhance(ctx context.Context, in oracle.Insight, producer oracle.Oracle, payload oracle.Payload, patterns []oracle.Pattern) oracle.Insight {
	out := in.Clone()

	if out.Acuity < e.cfg.RefinementThreshold && producer != nil {
		refined := e.refine(ctx, out, producer, payload, patterns)
		if refined.Acuity > out.Acuity {
			out = refined
		}
	}

	if out.Outcome == oracle.OutcomeExposed {
		out.Acuity = clamp01(out.Acuity + exposedBoost)
	}
	return out
}

// refine re-derives the insight with expanded evidence context. At most one
// attempt per insight per cycle; there is no recursion beyond it.
func (e *Enhancer) refine(ctx context.Context, in oracle.Insight, producer oracle.Oracle, payload oracle.Payload, patterns []oracle.Pattern) oracle.Insight {
	enriched := payload.Clone()
	enriched["refinement_context"] = fmt.Sprintf(
		"prior finding (%s): %s | patterns: %s | evidence: %s",
		in.Outcome, in.Statement,
		strings.Join(oracle.PatternNames(patterns), ", "),
		strings.Join(in.EvidenceRefs, ", "),
	)

	refined := invokeOracle(ctx, producer, enriched, patterns, e.cfg.OracleTimeout)
	refined.AddEvidence("refinement:" + in.OracleName)
	refined.Acuity = e.scorer.Score(refined, patterns)
	return refined
}

// DetectEmergent reports a cycle-level emergent vulnerability: two or more
// insights concurrently exposed or challenged.
func DetectEmergent(insights []oracle.Insight) bool {
	n := 0
	for _, in := range insights {
		if in.Outcome == oracle.OutcomeExposed || in.Outcome == oracle.OutcomeChallenged {
			n++
		}
	}
	return n >= 2
}
