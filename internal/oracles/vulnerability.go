package oracles

import (
	"context"
	"fmt"
	"strings"

	"illuminate/pkg/oracle"
)

// Vulnerability scans for known exposure vectors: keywords in the text
// fields plus explicit entries in the exposures list. Any hit marks the
// insight exposed; a clean scan validates the current posture.
type Vulnerability struct{}

func (Vulnerability) Name() string { return "vulnerability" }

// exposureVectors are the recognized exposure-vector keywords.
var exposureVectors = []string{
	"sql injection",
	"injection",
	"xss",
	"credential",
	"breach",
	"leak",
	"exploit",
	"overflow",
	"phishing",
	"open port",
	"cve-",
}

func (Vulnerability) Illuminate(_ context.Context, p oracle.Payload, patterns []oracle.Pattern) (oracle.Insight, error) {
	var vectors []string
	seen := make(map[string]bool)

	for _, f := range p.TextFields() {
		lowered := strings.ToLower(f)
		for _, vec := range exposureVectors {
			if strings.Contains(lowered, vec) && !seen[vec] {
				seen[vec] = true
				vectors = append(vectors, vec)
			}
		}
	}
	if raw, ok := p["exposures"].([]any); ok {
		for _, item := range raw {
			switch v := item.(type) {
			case string:
				if !seen[v] {
					seen[v] = true
					vectors = append(vectors, v)
				}
			case map[string]any:
				if name, _ := v["vector"].(string); name != "" && !seen[name] {
					seen[name] = true
					vectors = append(vectors, name)
				}
			}
		}
	}

	coverage, hasCoverage := p["guardrail_coverage"].(float64)

	in := oracle.Insight{}
	if len(vectors) > 0 {
		in.Outcome = oracle.OutcomeExposed
		in.Statement = fmt.Sprintf("exposure vectors detected: %s; prioritize mitigation for %s",
			strings.Join(vectors, ", "), vectors[0])
		for _, vec := range vectors {
			in.AddEvidence("vector:" + vec)
		}
		if _, ok := p["exposures"]; ok {
			in.AddEvidence("field:exposures")
		}
		if len(mentionedPatterns(patterns, "Exposure")) > 0 {
			in.Statement += "; aligned with the Exposure pattern"
		}
	} else {
		in.Outcome = oracle.OutcomeValidated
		in.Statement = "no known exposure vectors found; maintain current guardrail posture and monitor drift"
	}

	if hasCoverage && coverage < 0.6 {
		in.Statement += fmt.Sprintf("; guardrail coverage %.0f%% is below the 60%% floor", coverage*100)
		in.AddEvidence("field:guardrail_coverage")
	}
	return in, nil
}
