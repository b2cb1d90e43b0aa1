package oracles

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"illuminate/pkg/oracle"
)

// Interpret weighs the hypothesis against the recognized patterns. A
// recognized pattern whose contradiction keywords appear in the hypothesis
// challenges it; otherwise the interpretation validates.
type Interpret struct{}

func (Interpret) Name() string { return "interpret" }

// contradictions maps a pattern name to hypothesis keywords it undermines.
// A "Decline" reading contradicts a seasonal or stable-growth hypothesis;
// an "Exposure" reading contradicts a claimed-secure hypothesis.
var contradictions = map[string][]string{
	"Decline":  {"seasonal", "stable", "growth", "steady"},
	"Exposure": {"secure", "safe", "hardened"},
	"Drift":    {"stable", "steady", "calibrated"},
	"Pulse":    {"flat", "stagnant"},
}

func (Interpret) Illuminate(_ context.Context, p oracle.Payload, patterns []oracle.Pattern) (oracle.Insight, error) {
	hypothesis := p.Text("hypothesis")
	if hypothesis == "" {
		hypothesis = "emergent interpretation"
	}
	lowered := strings.ToLower(hypothesis)

	in := oracle.Insight{Outcome: oracle.OutcomeValidated}
	in.AddEvidence("field:hypothesis")

	for _, pat := range patterns {
		for _, kw := range contradictions[pat.Name] {
			if strings.Contains(lowered, kw) {
				in.Outcome = oracle.OutcomeChallenged
				in.Statement = fmt.Sprintf("the %s pattern contradicts the %q framing of hypothesis %q",
					pat.Name, kw, hypothesis)
				break
			}
		}
		if in.Outcome == oracle.OutcomeChallenged {
			break
		}
	}
	if in.Outcome == oracle.OutcomeValidated {
		in.Statement = fmt.Sprintf("recognized patterns are compatible with hypothesis %q", hypothesis)
	}

	for _, sig := range topSignals(p["signals"], 3) {
		in.AddEvidence("field:signals")
		in.Statement += fmt.Sprintf("; signal %s (%.2f)", sig.label, sig.strength)
	}
	return in, nil
}

type signal struct {
	label    string
	strength float64
}

// topSignals parses the payload's signals list ({label, strength} objects)
// and returns the strongest n, strength descending, label ascending on
// ties for determinism.
func topSignals(raw any, n int) []signal {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var sigs []signal
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		label, _ := m["label"].(string)
		if label == "" {
			label = fmt.Sprintf("signal-%d", i)
		}
		strength, _ := m["strength"].(float64)
		sigs = append(sigs, signal{label: label, strength: strength})
	}
	sort.Slice(sigs, func(i, j int) bool {
		if sigs[i].strength != sigs[j].strength {
			return sigs[i].strength > sigs[j].strength
		}
		return sigs[i].label < sigs[j].label
	})
	if len(sigs) > n {
		sigs = sigs[:n]
	}
	return sigs
}
