package oracles

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"illuminate/pkg/oracle"
)

// Dataset inspects the payload's quantitative surface: the timeseries
// field, the metrics map, and trend/anomaly language in the text fields.
// Outcome is validated when corroborating quantitative signals are found,
// inconclusive otherwise.
type Dataset struct{}

func (Dataset) Name() string { return "dataset" }

func (Dataset) Illuminate(_ context.Context, p oracle.Payload, patterns []oracle.Pattern) (oracle.Insight, error) {
	series := extractSeries(p["timeseries"])
	metrics, _ := p["metrics"].(map[string]any)
	trend := trendDirection(series)
	anomalies := detectAnomalies(series, 2.0)

	quantText := hasQuantitativeLanguage(p)

	in := oracle.Insight{Outcome: oracle.OutcomeInconclusive}

	switch {
	case len(series) >= 2:
		in.Outcome = oracle.OutcomeValidated
		in.Statement = fmt.Sprintf("timeseries of %d samples shows a %s trajectory with %d anomalies",
			len(series), trend, len(anomalies))
		in.AddEvidence("field:timeseries")
	case quantText:
		in.Outcome = oracle.OutcomeValidated
		in.Statement = "quantitative signals in the narrative corroborate the dataset perspective"
		in.AddEvidence("field:summary")
	default:
		in.Statement = "no quantitative signal found; dataset perspective remains unresolved"
	}

	if len(metrics) > 0 {
		in.Statement += fmt.Sprintf("; %d metrics covered", len(metrics))
		in.AddEvidence("field:metrics")
	}
	for _, pat := range mentionedPatterns(patterns, "Pulse", "Decline", "Drift", "Recovery") {
		in.Statement += "; consistent with the " + pat.Name + " pattern"
	}
	if ctxNote := p.Text("refinement_context"); ctxNote != "" {
		in.Statement += "; re-examined with expanded evidence context"
		in.AddEvidence("field:refinement_context")
	}
	return in, nil
}

// hasQuantitativeLanguage reports digits or percent signs in any text
// field, the cheap proxy for trend/anomaly language in prose.
func hasQuantitativeLanguage(p oracle.Payload) bool {
	for _, f := range p.TextFields() {
		if strings.ContainsRune(f, '%') {
			return true
		}
		for _, r := range f {
			if unicode.IsDigit(r) {
				return true
			}
		}
	}
	return false
}
