package oracle

// Pattern is a named tag recognized in a payload, with a confidence weight
// in [0,1]. A recognized set has set semantics on Name: no duplicates.
type Pattern struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// PatternNames returns the names of the given patterns in order.
func PatternNames(patterns []Pattern) []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.Name
	}
	return names
}
