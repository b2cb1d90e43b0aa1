// Package display provides human-readable names for machine codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output, reports, and logs.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import "strings"

// --- Outcome classes ---

var outcomes = map[string]string{
	"validated":    "Validated",
	"challenged":   "Challenged",
	"inconclusive": "Inconclusive",
	"actionable":   "Actionable",
	"exposed":      "Exposed",
}

// Outcome returns the human-readable name for an outcome class code.
// Unknown codes are returned as-is.
func Outcome(code string) string {
	if name, ok := outcomes[code]; ok {
		return name
	}
	return code
}

// --- Guardrail layers ---

var layers = map[string]string{
	"CDIL":       "Core Directive Isolation",
	"IAL":        "Instruction Adherence",
	"self_audit": "Self-Audit",
}

// Layer returns the human-readable name for a guardrail layer code.
func Layer(code string) string {
	if name, ok := layers[code]; ok {
		return name
	}
	return code
}

// LayerWithCode returns "Core Directive Isolation (CDIL)" format.
func LayerWithCode(code string) string {
	if name, ok := layers[code]; ok {
		return name + " (" + code + ")"
	}
	return code
}

// --- Verdicts ---

// Verdict renders a verdict code with a terminal-friendly marker.
// "pass" -> "PASS", "degraded" -> "DEGRADED", "fail" -> "FAIL".
func Verdict(code string) string {
	return strings.ToUpper(code)
}

// VerdictPath converts a slice of per-layer verdicts to a readable line.
// ["pass", "degraded", "pass"] -> "PASS -> DEGRADED -> PASS"
func VerdictPath(codes []string) string {
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = Verdict(c)
	}
	return strings.Join(names, " -> ")
}
