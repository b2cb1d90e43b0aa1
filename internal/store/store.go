// Package store persists illumination runs for downstream analytics. The
// engine is agnostic to storage; CLI and service use only the Store
// interface, backed by SQLite or an in-memory implementation.
package store

import "illuminate/pkg/oracle"

// DefaultDBPath is the default relative path for the SQLite DB.
// Resolve against cwd; Open() creates the parent dir (.illuminate).
const DefaultDBPath = ".illuminate/illuminate.db"

// Run is one recorded illumination cycle.
type Run struct {
	ID              string  `json:"id"`
	CreatedAt       string  `json:"created_at"`
	Source          string  `json:"source"`
	GuardrailStatus string  `json:"guardrail_status"`
	Question        string  `json:"question"`
	OverallAcuity   float64 `json:"overall_acuity"`
	Emergent        bool    `json:"emergent_vulnerability"`
	PayloadJSON     string  `json:"payload,omitempty"`
}

// InsightRow is one oracle's insight within a run.
type InsightRow struct {
	RunID        string  `json:"-"`
	Oracle       string  `json:"oracle"`
	Acuity       float64 `json:"acuity"`
	Outcome      string  `json:"outcome_class"`
	Statement    string  `json:"statement"`
	EvidenceJSON string  `json:"evidence,omitempty"`
}

// FindingRow is one guardrail layer finding within a run.
type FindingRow struct {
	RunID     string `json:"-"`
	Layer     string `json:"layer"`
	Status    string `json:"status"`
	Rationale string `json:"rationale"`
}

// RunDetail is a run with its nested insights and guardrail findings.
type RunDetail struct {
	Run      Run          `json:"run"`
	Insights []InsightRow `json:"insights"`
	Findings []FindingRow `json:"guardrails"`
}

// OracleAcuity is the per-oracle aggregation row.
type OracleAcuity struct {
	Oracle    string  `json:"oracle"`
	Count     int     `json:"count"`
	AvgAcuity float64 `json:"avg_acuity"`
}

// Store is the persistence facade for illumination analytics.
type Store interface {
	// SaveResult records a completed cycle and returns the run ID.
	SaveResult(source string, payload oracle.Payload, res *oracle.IlluminationResult) (string, error)
	// OracleAcuitySummary aggregates per-oracle insight counts and mean
	// acuity, ordered by mean acuity descending.
	OracleAcuitySummary() ([]OracleAcuity, error)
	// GuardrailHistogram counts guardrail findings per status.
	GuardrailHistogram() (map[string]int, error)
	// RecentRuns returns the most recent runs, newest first.
	RecentRuns(limit int) ([]RunDetail, error)
	Close() error
}
