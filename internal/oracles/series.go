// Package oracles ships the four built-in oracles: dataset, interpret,
// adapt, and vulnerability. Each is a standalone strategy over
// (payload, patterns) with no shared mutable state.
package oracles

import (
	"math"

	"illuminate/pkg/oracle"
)

// extractSeries pulls a numeric series out of a payload's timeseries field.
// Accepted elements: plain numbers, or objects carrying a numeric "value".
// Anything else is skipped.
func extractSeries(raw any) []float64 {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var series []float64
	for _, item := range items {
		switch v := item.(type) {
		case float64:
			series = append(series, v)
		case int:
			series = append(series, float64(v))
		case map[string]any:
			switch n := v["value"].(type) {
			case float64:
				series = append(series, n)
			case int:
				series = append(series, float64(n))
			}
		}
	}
	return series
}

// trendDirection classifies the series' first-to-last movement. The 5%
// threshold (floored at 1e-3) filters noise around a stable baseline.
func trendDirection(series []float64) string {
	if len(series) < 2 {
		return "insufficient-data"
	}
	delta := series[len(series)-1] - series[0]
	threshold := math.Max(math.Abs(series[0])*0.05, 1e-3)
	switch {
	case delta > threshold:
		return "upward"
	case delta < -threshold:
		return "downward"
	default:
		return "stable"
	}
}

// detectAnomalies returns the indices of values more than sigma population
// standard deviations from the mean. Fewer than 3 samples yields none.
func detectAnomalies(series []float64, sigma float64) []int {
	if len(series) < 3 {
		return nil
	}
	avg := mean(series)
	dev := pstdev(series, avg)
	if dev == 0 {
		return nil
	}
	var out []int
	for i, v := range series {
		if math.Abs(v-avg) > sigma*dev {
			out = append(out, i)
		}
	}
	return out
}

func mean(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

func pstdev(series []float64, avg float64) float64 {
	var sq float64
	for _, v := range series {
		d := v - avg
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(series)))
}

// mentionedPatterns returns the recognized patterns whose names are in the
// allow set, preserving recognition order.
func mentionedPatterns(patterns []oracle.Pattern, allow ...string) []oracle.Pattern {
	allowed := make(map[string]bool, len(allow))
	for _, a := range allow {
		allowed[a] = true
	}
	var out []oracle.Pattern
	for _, p := range patterns {
		if allowed[p.Name] {
			out = append(out, p)
		}
	}
	return out
}
