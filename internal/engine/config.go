// Package engine implements the illumination cycle: pattern recognition,
// oracle fan-out, acuity scoring, agentic enhancement, guardrail audit, and
// the recursive feedback question, sequenced by RunCycle.
package engine

import (
	"fmt"
	"time"

	"illuminate/pkg/oracle"
)

// Config holds the engine options. The scoring weights are deliberately
// configurable rather than constants; the defaults are an internally
// consistent baseline, not a normative calibration.
type Config struct {
	// RefinementThreshold triggers one bounded self-refinement pass for any
	// insight scored below it.
	RefinementThreshold float64

	// SelfAuditMinAcuity is the self-audit layer's pass/fail boundary on the
	// overall cycle acuity.
	SelfAuditMinAcuity float64

	// OracleTimeout bounds a single oracle invocation. Exceeding it is an
	// oracle failure (inconclusive placeholder), never a cycle failure.
	OracleTimeout time.Duration

	// Parallel is the oracle fan-out width. 0 or 1 means serial.
	Parallel int

	// PatternWeight scales the pattern-reference fraction's contribution to
	// base acuity.
	PatternWeight float64

	// EvidenceStep and EvidenceCap shape the evidence-reference
	// contribution: EvidenceStep per ref, capped at EvidenceCap.
	EvidenceStep float64
	EvidenceCap  float64

	// Priors is the per-outcome-class base contribution.
	Priors map[oracle.OutcomeClass]float64
}

// DefaultConfig returns the baseline engine configuration.
func DefaultConfig() Config {
	return Config{
		RefinementThreshold: 0.5,
		SelfAuditMinAcuity:  0.2,
		OracleTimeout:       10 * time.Second,
		Parallel:            1,
		PatternWeight:       0.3,
		EvidenceStep:        0.05,
		EvidenceCap:         0.2,
		Priors: map[oracle.OutcomeClass]float64{
			oracle.OutcomeValidated:    0.60,
			oracle.OutcomeActionable:   0.50,
			oracle.OutcomeChallenged:   0.40,
			oracle.OutcomeExposed:      0.55,
			oracle.OutcomeInconclusive: 0.10,
		},
	}
}

// Validate checks every option's range. Any violation wraps
// oracle.ErrInvalidConfig so callers can classify it as a configuration
// error rather than a cycle outcome.
func (c Config) Validate() error {
	unit := func(name string, v float64) error {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %s %.3f outside [0,1]", oracle.ErrInvalidConfig, name, v)
		}
		return nil
	}
	if err := unit("refinement_threshold", c.RefinementThreshold); err != nil {
		return err
	}
	if err := unit("self_audit_min_acuity", c.SelfAuditMinAcuity); err != nil {
		return err
	}
	if err := unit("pattern_weight", c.PatternWeight); err != nil {
		return err
	}
	if err := unit("evidence_step", c.EvidenceStep); err != nil {
		return err
	}
	if err := unit("evidence_cap", c.EvidenceCap); err != nil {
		return err
	}
	if c.OracleTimeout <= 0 {
		return fmt.Errorf("%w: oracle_timeout must be positive", oracle.ErrInvalidConfig)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("%w: parallel must be >= 0", oracle.ErrInvalidConfig)
	}
	for class, prior := range c.Priors {
		if !class.Valid() {
			return fmt.Errorf("%w: prior for unknown outcome class %q", oracle.ErrInvalidConfig, class)
		}
		if err := unit("prior["+string(class)+"]", prior); err != nil {
			return err
		}
	}
	return nil
}

// prior returns the configured prior for class, falling back to the
// inconclusive prior for anything unknown.
func (c Config) prior(class oracle.OutcomeClass) float64 {
	if p, ok := c.Priors[class]; ok {
		return p
	}
	return c.Priors[oracle.OutcomeInconclusive]
}
