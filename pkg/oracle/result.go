package oracle

// IlluminationResult is the immutable output of one cycle. Insights appear
// in oracle registration order, exactly one per registered oracle. The
// follow-up question may seed the hypothesis of the next cycle's payload;
// chaining is the caller's concern, the engine holds no cross-cycle state.
type IlluminationResult struct {
	Insights              []Insight       `json:"insights"`
	OverallAcuity         float64         `json:"overall_acuity"`
	Guardrails            GuardrailReport `json:"guardrails"`
	Patterns              []Pattern       `json:"patterns"`
	Question              string          `json:"question"`
	EmergentVulnerability bool            `json:"emergent_vulnerability"`
}
