package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"illuminate/pkg/oracle"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite DB at path and applies the schema.
// Creates the parent directory (e.g. .illuminate) if it does not exist.
func Open(path string) (*SqlStore, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	var version int
	err := s.db.QueryRow(`SELECT version FROM schema_version LIMIT 1`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		if _, err := s.db.Exec(`INSERT INTO schema_version(version) VALUES(?)`, schemaVersion); err != nil {
			return fmt.Errorf("set schema version: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("unsupported schema version %d (want %d)", version, schemaVersion)
	}
	return nil
}

// Close closes the underlying DB.
func (s *SqlStore) Close() error { return s.db.Close() }

// SaveResult records one completed cycle in a single transaction.
func (s *SqlStore) SaveResult(source string, payload oracle.Payload, res *oracle.IlluminationResult) (string, error) {
	if res == nil {
		return "", errors.New("result is nil")
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	runID := uuid.NewString()
	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs(id, created_at, source, guardrail_status, question, overall_acuity, emergent, payload)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, nowUTC(), source, res.Guardrails.Overall.String(), res.Question,
		res.OverallAcuity, boolToInt(res.EmergentVulnerability), string(payloadJSON),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, in := range res.Insights {
		evidence, err := json.Marshal(in.EvidenceRefs)
		if err != nil {
			return "", fmt.Errorf("marshal evidence: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO insights(run_id, oracle, acuity, outcome, statement, evidence)
			 VALUES(?, ?, ?, ?, ?, ?)`,
			runID, in.OracleName, in.Acuity, string(in.Outcome), in.Statement, string(evidence),
		)
		if err != nil {
			return "", fmt.Errorf("insert insight: %w", err)
		}
	}

	for _, f := range res.Guardrails.Layers {
		_, err = tx.Exec(
			`INSERT INTO guardrail_findings(run_id, layer, status, rationale) VALUES(?, ?, ?, ?)`,
			runID, f.Layer, f.Status.String(), f.Rationale,
		)
		if err != nil {
			return "", fmt.Errorf("insert finding: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return runID, nil
}

// OracleAcuitySummary aggregates insight counts and mean acuity per oracle.
func (s *SqlStore) OracleAcuitySummary() ([]OracleAcuity, error) {
	rows, err := s.db.Query(
		`SELECT oracle, COUNT(id), AVG(acuity) FROM insights
		 GROUP BY oracle ORDER BY AVG(acuity) DESC, oracle`,
	)
	if err != nil {
		return nil, fmt.Errorf("oracle summary: %w", err)
	}
	defer rows.Close()

	var out []OracleAcuity
	for rows.Next() {
		var row OracleAcuity
		var avg sql.NullFloat64
		if err := rows.Scan(&row.Oracle, &row.Count, &avg); err != nil {
			return nil, fmt.Errorf("scan oracle summary: %w", err)
		}
		row.AvgAcuity = avg.Float64
		out = append(out, row)
	}
	return out, rows.Err()
}

// GuardrailHistogram counts guardrail findings per status.
func (s *SqlStore) GuardrailHistogram() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT status, COUNT(id) FROM guardrail_findings GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("guardrail histogram: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan histogram: %w", err)
		}
		out[status] = count
	}
	return out, rows.Err()
}

// RecentRuns returns the most recent runs with nested rows, newest first.
func (s *SqlStore) RecentRuns(limit int) ([]RunDetail, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, created_at, source, guardrail_status, question, overall_acuity, emergent, payload
		 FROM runs ORDER BY seq DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var details []RunDetail
	for rows.Next() {
		var r Run
		var emergent int
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Source, &r.GuardrailStatus, &r.Question,
			&r.OverallAcuity, &emergent, &r.PayloadJSON); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Emergent = emergent != 0
		details = append(details, RunDetail{Run: r})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range details {
		insights, err := s.runInsights(details[i].Run.ID)
		if err != nil {
			return nil, err
		}
		findings, err := s.runFindings(details[i].Run.ID)
		if err != nil {
			return nil, err
		}
		details[i].Insights = insights
		details[i].Findings = findings
	}
	return details, nil
}

func (s *SqlStore) runInsights(runID string) ([]InsightRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, oracle, acuity, outcome, statement, evidence
		 FROM insights WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("run insights: %w", err)
	}
	defer rows.Close()

	var out []InsightRow
	for rows.Next() {
		var row InsightRow
		var evidence sql.NullString
		if err := rows.Scan(&row.RunID, &row.Oracle, &row.Acuity, &row.Outcome, &row.Statement, &evidence); err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}
		row.EvidenceJSON = evidence.String
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *SqlStore) runFindings(runID string) ([]FindingRow, error) {
	rows, err := s.db.Query(
		`SELECT run_id, layer, status, rationale FROM guardrail_findings WHERE run_id = ? ORDER BY id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("run findings: %w", err)
	}
	defer rows.Close()

	var out []FindingRow
	for rows.Next() {
		var row FindingRow
		var rationale sql.NullString
		if err := rows.Scan(&row.RunID, &row.Layer, &row.Status, &rationale); err != nil {
			return nil, fmt.Errorf("scan finding: %w", err)
		}
		row.Rationale = rationale.String
		out = append(out, row)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
