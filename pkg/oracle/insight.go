package oracle

// OutcomeClass classifies what an insight concluded about the payload.
type OutcomeClass string

const (
	OutcomeValidated    OutcomeClass = "validated"
	OutcomeChallenged   OutcomeClass = "challenged"
	OutcomeInconclusive OutcomeClass = "inconclusive"
	OutcomeActionable   OutcomeClass = "actionable"
	OutcomeExposed      OutcomeClass = "exposed"
)

// Valid reports whether c is a member of the outcome-class enumeration.
func (c OutcomeClass) Valid() bool {
	switch c {
	case OutcomeValidated, OutcomeChallenged, OutcomeInconclusive, OutcomeActionable, OutcomeExposed:
		return true
	}
	return false
}

// Insight is the product of exactly one oracle. Acuity is assigned by the
// acuity engine and may only grow afterwards (the enhancement layer never
// decreases it). EvidenceRefs is append-only.
type Insight struct {
	OracleName   string       `json:"oracle"`
	Statement    string       `json:"statement"`
	Acuity       float64      `json:"acuity"`
	Outcome      OutcomeClass `json:"outcome_class"`
	EvidenceRefs []string     `json:"evidence_refs,omitempty"`
}

// AddEvidence appends citation refs, preserving order. Existing refs are
// never removed or reordered.
func (in *Insight) AddEvidence(refs ...string) {
	in.EvidenceRefs = append(in.EvidenceRefs, refs...)
}

// Clone returns a deep copy of the insight.
func (in Insight) Clone() Insight {
	c := in
	c.EvidenceRefs = append([]string(nil), in.EvidenceRefs...)
	return c
}
