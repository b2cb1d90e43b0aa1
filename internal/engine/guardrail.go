package engine

import (
	"fmt"
	"strings"

	"illuminate/pkg/oracle"
)

// Auditor runs the guardrail layers: Core Directive Isolation (CDIL),
// Instruction Adherence (IAL), and the self-audit pass. Evaluation is pure
// and total over its inputs; there are no retries and no partial verdicts.
type Auditor struct {
	cfg Config
}

// NewAuditor returns an auditor using cfg's self-audit boundary.
func NewAuditor(cfg Config) *Auditor { return &Auditor{cfg: cfg} }

// AuditInput is everything the guardrail layers may inspect. HasFeedback
// records whether a feedback generator is wired; IAL runs before the
// question exists, so presence of the stage stands in for presence of the
// question (the generator itself is total).
type AuditInput struct {
	Insights        []oracle.Insight
	RegisteredNames []string
	OverallAcuity   float64
	Emergent        bool
	HasFeedback     bool
}

// Audit evaluates every layer independently and reduces to the worst-of
// overall verdict.
func (a *Auditor) Audit(in AuditInput) oracle.GuardrailReport {
	layers := []oracle.LayerFinding{
		a.cdil(in.Insights),
		a.ial(in),
		a.selfAudit(in),
	}
	return oracle.GuardrailReport{Layers: layers, Overall: oracle.WorstOf(layers)}
}

// breachPhrases are clear directive-isolation violations: statements that
// attempt to alter the oracle registry or the guardrail configuration.
var breachPhrases = []string{
	"alter the oracle registry",
	"register a new oracle",
	"unregister the oracle",
	"disable the guardrail",
	"rewrite the guardrail",
	"modify the guardrail",
	"override the directive",
}

// borderlinePhrases are suspicious without amounting to a clear breach.
var borderlinePhrases = []string{
	"bypass",
	"circumvent",
	"suppress the audit",
	"weaken the check",
}

func (a *Auditor) cdil(insights []oracle.Insight) oracle.LayerFinding {
	borderline := ""
	for _, in := range insights {
		statement := strings.ToLower(in.Statement)
		for _, phrase := range breachPhrases {
			if strings.Contains(statement, phrase) {
				return oracle.LayerFinding{
					Layer:     oracle.LayerCDIL,
					Status:    oracle.VerdictFail,
					Rationale: fmt.Sprintf("oracle %q attempts a directive breach: %q", in.OracleName, phrase),
				}
			}
		}
		if ref := undeclaredFieldRef(in); ref != "" {
			return oracle.LayerFinding{
				Layer:     oracle.LayerCDIL,
				Status:    oracle.VerdictFail,
				Rationale: fmt.Sprintf("oracle %q cites field outside the declared schema: %s", in.OracleName, ref),
			}
		}
		if borderline == "" {
			for _, phrase := range borderlinePhrases {
				if strings.Contains(statement, phrase) {
					borderline = fmt.Sprintf("oracle %q uses borderline phrasing: %q", in.OracleName, phrase)
					break
				}
			}
		}
	}
	if borderline != "" {
		return oracle.LayerFinding{Layer: oracle.LayerCDIL, Status: oracle.VerdictDegraded, Rationale: borderline}
	}
	return oracle.LayerFinding{Layer: oracle.LayerCDIL, Status: oracle.VerdictPass, Rationale: "no directive-isolation breach detected"}
}

// undeclaredFieldRef returns the first "field:<name>" evidence citation
// whose field is not in the declared payload schema.
func undeclaredFieldRef(in oracle.Insight) string {
	for _, ref := range in.EvidenceRefs {
		name, ok := strings.CutPrefix(ref, "field:")
		if !ok {
			continue
		}
		if !oracle.DeclaredField(name) {
			return ref
		}
	}
	return ""
}

func (a *Auditor) ial(in AuditInput) oracle.LayerFinding {
	if !in.HasFeedback {
		return oracle.LayerFinding{
			Layer:     oracle.LayerIAL,
			Status:    oracle.VerdictFail,
			Rationale: "result would omit the follow-up question: no feedback generator wired",
		}
	}

	byOracle := make(map[string]int, len(in.Insights))
	for _, insight := range in.Insights {
		byOracle[insight.OracleName]++
	}
	for _, name := range in.RegisteredNames {
		if byOracle[name] != 1 {
			return oracle.LayerFinding{
				Layer:     oracle.LayerIAL,
				Status:    oracle.VerdictFail,
				Rationale: fmt.Sprintf("registered oracle %q contributed %d insights, want exactly 1", name, byOracle[name]),
			}
		}
	}

	for _, insight := range in.Insights {
		if !insight.Outcome.Valid() {
			return oracle.LayerFinding{
				Layer:     oracle.LayerIAL,
				Status:    oracle.VerdictFail,
				Rationale: fmt.Sprintf("oracle %q reports outcome class %q outside the enumeration", insight.OracleName, insight.Outcome),
			}
		}
	}

	// Partial adherence: an inconclusive insight with no explanation at all.
	for _, insight := range in.Insights {
		if insight.Outcome == oracle.OutcomeInconclusive && strings.TrimSpace(insight.Statement) == "" && len(insight.EvidenceRefs) == 0 {
			return oracle.LayerFinding{
				Layer:     oracle.LayerIAL,
				Status:    oracle.VerdictDegraded,
				Rationale: fmt.Sprintf("oracle %q is inconclusive without rationale", insight.OracleName),
			}
		}
	}

	return oracle.LayerFinding{Layer: oracle.LayerIAL, Status: oracle.VerdictPass, Rationale: "result schema adhered to"}
}

func (a *Auditor) selfAudit(in AuditInput) oracle.LayerFinding {
	if in.OverallAcuity < a.cfg.SelfAuditMinAcuity {
		return oracle.LayerFinding{
			Layer:     oracle.LayerSelfAudit,
			Status:    oracle.VerdictFail,
			Rationale: fmt.Sprintf("overall acuity %.3f below minimum %.3f", in.OverallAcuity, a.cfg.SelfAuditMinAcuity),
		}
	}
	if in.Emergent && !hasMitigation(in.Insights) {
		return oracle.LayerFinding{
			Layer:     oracle.LayerSelfAudit,
			Status:    oracle.VerdictFail,
			Rationale: "emergent vulnerability with no actionable mitigation insight",
		}
	}
	return oracle.LayerFinding{Layer: oracle.LayerSelfAudit, Status: oracle.VerdictPass, Rationale: "cycle acuity and mitigation posture acceptable"}
}

// hasMitigation reports whether any insight proposes an actionable next
// step, which mitigates an emergent vulnerability flag.
func hasMitigation(insights []oracle.Insight) bool {
	for _, in := range insights {
		if in.Outcome == oracle.OutcomeActionable {
			return true
		}
	}
	return false
}
