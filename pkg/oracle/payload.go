package oracle

import (
	"sort"
	"strings"
)

// Payload is the input record of one illumination cycle: an open mapping of
// field names to scalar or text values. It is treated as immutable once a
// cycle starts; stages that need to enrich it work on a Clone.
type Payload map[string]any

// contentFields are the fields at least one of which must be present and
// non-empty for a payload to be illuminable.
var contentFields = []string{"summary", "hypothesis", "dataset"}

// declaredFields is the canonical payload schema. Oracles cite fields as
// "field:<name>" evidence references; citations outside this set are a
// directive-isolation breach.
var declaredFields = map[string]bool{
	"summary":            true,
	"hypothesis":         true,
	"dataset":            true,
	"metrics":            true,
	"timeseries":         true,
	"signals":            true,
	"exposures":          true,
	"recommendation":     true,
	"constraints":        true,
	"risk_level":         true,
	"guardrail_coverage": true,
	"guardrail_status":   true,
	"refinement_context": true,
	"source":             true,
}

// DeclaredField reports whether name belongs to the canonical payload schema.
func DeclaredField(name string) bool { return declaredFields[name] }

// Validate checks that the payload carries at least one recognizable content
// field (summary, hypothesis, or dataset) with a non-empty value.
func (p Payload) Validate() error {
	for _, f := range contentFields {
		v, ok := p[f]
		if !ok || v == nil {
			continue
		}
		if s, isStr := v.(string); isStr {
			if strings.TrimSpace(s) == "" {
				continue
			}
		}
		return nil
	}
	return ErrInvalidPayload
}

// Text returns the string value of field name, or "" if absent or non-text.
func (p Payload) Text(name string) string {
	s, _ := p[name].(string)
	return s
}

// TextFields returns the payload's text-valued fields in sorted key order.
// Sorted order keeps keyword matching deterministic across runs.
func (p Payload) TextFields() []string {
	keys := make([]string, 0, len(p))
	for k, v := range p {
		if _, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = p[k].(string)
	}
	return out
}

// Clone returns a shallow copy of the payload. Stages that enrich context
// (e.g. self-refinement) clone first so the cycle input stays untouched.
func (p Payload) Clone() Payload {
	c := make(Payload, len(p))
	for k, v := range p {
		c[k] = v
	}
	return c
}
