package engine

import (
	"strings"

	"illuminate/pkg/oracle"
)

// PatternDef declares one recognizable pattern: a name, a confidence
// weight, and the case-insensitive keywords whose presence in any payload
// text field satisfies its predicate.
type PatternDef struct {
	Name     string   `json:"name" yaml:"name"`
	Weight   float64  `json:"weight" yaml:"weight"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// DefaultPatternDefs returns the built-in pattern vocabulary.
func DefaultPatternDefs() []PatternDef {
	return []PatternDef{
		{Name: "Immersive", Weight: 0.7, Keywords: []string{"immersive", "engagement", "retention", "experience"}},
		{Name: "Pulse", Weight: 0.8, Keywords: []string{"trend", "spike", "surge", "momentum", "accelerat"}},
		{Name: "Decline", Weight: 0.8, Keywords: []string{"drop", "decline", "fell", "shrink", "churn"}},
		{Name: "Drift", Weight: 0.6, Keywords: []string{"drift", "deviation", "anomaly", "outlier"}},
		{Name: "Exposure", Weight: 0.9, Keywords: []string{"vulnerability", "breach", "leak", "exposure", "exploit", "injection"}},
		{Name: "Recovery", Weight: 0.6, Keywords: []string{"recover", "rebound", "stabilize", "improve"}},
	}
}

// Recognizer classifies payloads against a registered pattern vocabulary.
// Recognition is deterministic: the same payload always yields the same
// pattern set, in vocabulary registration order.
type Recognizer struct {
	defs []PatternDef
}

// NewRecognizer builds a recognizer over the given vocabulary. Duplicate
// names keep the first definition (set semantics).
func NewRecognizer(defs []PatternDef) *Recognizer {
	seen := make(map[string]bool, len(defs))
	kept := make([]PatternDef, 0, len(defs))
	for _, d := range defs {
		if seen[d.Name] {
			continue
		}
		seen[d.Name] = true
		kept = append(kept, d)
	}
	return &Recognizer{defs: kept}
}

// Defs returns the registered vocabulary in order.
func (r *Recognizer) Defs() []PatternDef {
	return append([]PatternDef(nil), r.defs...)
}

// Recognize returns every pattern whose predicate is satisfied by at least
// one text field. An empty result is a valid, non-exceptional outcome.
func (r *Recognizer) Recognize(p oracle.Payload) []oracle.Pattern {
	fields := p.TextFields()
	lowered := make([]string, len(fields))
	for i, f := range fields {
		lowered[i] = strings.ToLower(f)
	}

	var out []oracle.Pattern
	for _, def := range r.defs {
		if matchesAny(lowered, def.Keywords) {
			out = append(out, oracle.Pattern{Name: def.Name, Weight: def.Weight})
		}
	}
	return out
}

func matchesAny(fields []string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		for _, f := range fields {
			if strings.Contains(f, kw) {
				return true
			}
		}
	}
	return false
}
