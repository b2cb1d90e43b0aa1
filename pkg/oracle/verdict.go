package oracle

// Verdict is a guardrail layer's terminal status. The total order
// pass < degraded < fail makes worst-of aggregation a max-reduce.
type Verdict int

const (
	VerdictPass Verdict = iota
	VerdictDegraded
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "pass"
	case VerdictDegraded:
		return "degraded"
	case VerdictFail:
		return "fail"
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so verdicts serialize as
// their lowercase names in JSON and YAML.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Worst returns the more severe of v and other.
func (v Verdict) Worst(other Verdict) Verdict {
	if other > v {
		return other
	}
	return v
}

// Guardrail layer names.
const (
	LayerCDIL      = "CDIL"
	LayerIAL       = "IAL"
	LayerSelfAudit = "self_audit"
)

// LayerFinding is one guardrail layer's verdict with its rationale.
type LayerFinding struct {
	Layer     string  `json:"layer"`
	Status    Verdict `json:"status"`
	Rationale string  `json:"rationale"`
}

// GuardrailReport carries the per-layer findings and their worst-of overall
// verdict. A single failing layer is never diluted by passing ones.
type GuardrailReport struct {
	Layers  []LayerFinding `json:"layers"`
	Overall Verdict        `json:"overall"`
}

// WorstOf reduces layer findings to the overall verdict.
func WorstOf(layers []LayerFinding) Verdict {
	overall := VerdictPass
	for _, l := range layers {
		overall = overall.Worst(l.Status)
	}
	return overall
}
