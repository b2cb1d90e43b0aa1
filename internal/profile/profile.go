// Package profile loads an engine profile file: scoring overrides, extra
// pattern vocabulary, store path, and service options.
package profile

import (
	"time"

	"illuminate/internal/engine"
	"illuminate/internal/store"
)

// Profile is the on-disk engine configuration. Zero values mean "use the
// engine default"; pointers distinguish absent from explicit zero where the
// zero is meaningful.
type Profile struct {
	RefinementThreshold *float64 `yaml:"refinement_threshold" json:"refinement_threshold,omitempty"`
	SelfAuditMinAcuity  *float64 `yaml:"self_audit_min_acuity" json:"self_audit_min_acuity,omitempty"`
	OracleTimeoutMS     int      `yaml:"oracle_timeout_ms" json:"oracle_timeout_ms,omitempty"`
	Parallel            int      `yaml:"parallel" json:"parallel,omitempty"`
	PatternWeight       *float64 `yaml:"pattern_weight" json:"pattern_weight,omitempty"`
	EvidenceStep        *float64 `yaml:"evidence_step" json:"evidence_step,omitempty"`
	EvidenceCap         *float64 `yaml:"evidence_cap" json:"evidence_cap,omitempty"`

	// Patterns extends the built-in vocabulary. Names colliding with a
	// built-in override it.
	Patterns []engine.PatternDef `yaml:"patterns" json:"patterns,omitempty"`

	DBPath    string `yaml:"db_path" json:"db_path,omitempty"`
	Listen    string `yaml:"listen" json:"listen,omitempty"`
	LogLevel  string `yaml:"log_level" json:"log_level,omitempty"`
	LogFormat string `yaml:"log_format" json:"log_format,omitempty"`
}

// EngineConfig materializes the profile over the engine defaults.
func (p *Profile) EngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if p == nil {
		return cfg
	}
	if p.RefinementThreshold != nil {
		cfg.RefinementThreshold = *p.RefinementThreshold
	}
	if p.SelfAuditMinAcuity != nil {
		cfg.SelfAuditMinAcuity = *p.SelfAuditMinAcuity
	}
	if p.OracleTimeoutMS > 0 {
		cfg.OracleTimeout = time.Duration(p.OracleTimeoutMS) * time.Millisecond
	}
	if p.Parallel > 0 {
		cfg.Parallel = p.Parallel
	}
	if p.PatternWeight != nil {
		cfg.PatternWeight = *p.PatternWeight
	}
	if p.EvidenceStep != nil {
		cfg.EvidenceStep = *p.EvidenceStep
	}
	if p.EvidenceCap != nil {
		cfg.EvidenceCap = *p.EvidenceCap
	}
	return cfg
}

// PatternDefs merges the profile's vocabulary over the built-ins. A profile
// entry with a built-in's name replaces it in place.
func (p *Profile) PatternDefs() []engine.PatternDef {
	defs := engine.DefaultPatternDefs()
	if p == nil {
		return defs
	}
	index := make(map[string]int, len(defs))
	for i, d := range defs {
		index[d.Name] = i
	}
	for _, d := range p.Patterns {
		if i, ok := index[d.Name]; ok {
			defs[i] = d
			continue
		}
		index[d.Name] = len(defs)
		defs = append(defs, d)
	}
	return defs
}

// DB returns the configured DB path or the store default.
func (p *Profile) DB() string {
	if p != nil && p.DBPath != "" {
		return p.DBPath
	}
	return store.DefaultDBPath
}

// Addr returns the configured listen address or the service default.
func (p *Profile) Addr() string {
	if p != nil && p.Listen != "" {
		return p.Listen
	}
	return ":8080"
}
