package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"illuminate/pkg/oracle"
)

// MemStore implements Store in memory, for tests and ephemeral runs.
type MemStore struct {
	mu       sync.Mutex
	runs     []Run
	insights []InsightRow
	findings []FindingRow
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore { return &MemStore{} }

// Close is a no-op for MemStore.
func (m *MemStore) Close() error { return nil }

// SaveResult records one completed cycle.
func (m *MemStore) SaveResult(source string, payload oracle.Payload, res *oracle.IlluminationResult) (string, error) {
	if res == nil {
		return "", errors.New("result is nil")
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	runID := uuid.NewString()
	m.runs = append(m.runs, Run{
		ID:              runID,
		CreatedAt:       nowUTC(),
		Source:          source,
		GuardrailStatus: res.Guardrails.Overall.String(),
		Question:        res.Question,
		OverallAcuity:   res.OverallAcuity,
		Emergent:        res.EmergentVulnerability,
		PayloadJSON:     string(payloadJSON),
	})

	for _, in := range res.Insights {
		evidence, err := json.Marshal(in.EvidenceRefs)
		if err != nil {
			return "", fmt.Errorf("marshal evidence: %w", err)
		}
		m.insights = append(m.insights, InsightRow{
			RunID:        runID,
			Oracle:       in.OracleName,
			Acuity:       in.Acuity,
			Outcome:      string(in.Outcome),
			Statement:    in.Statement,
			EvidenceJSON: string(evidence),
		})
	}
	for _, f := range res.Guardrails.Layers {
		m.findings = append(m.findings, FindingRow{
			RunID:     runID,
			Layer:     f.Layer,
			Status:    f.Status.String(),
			Rationale: f.Rationale,
		})
	}
	return runID, nil
}

// OracleAcuitySummary aggregates insight counts and mean acuity per oracle.
func (m *MemStore) OracleAcuitySummary() ([]OracleAcuity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int)
	sums := make(map[string]float64)
	for _, in := range m.insights {
		counts[in.Oracle]++
		sums[in.Oracle] += in.Acuity
	}

	out := make([]OracleAcuity, 0, len(counts))
	for name, count := range counts {
		out = append(out, OracleAcuity{Oracle: name, Count: count, AvgAcuity: sums[name] / float64(count)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgAcuity != out[j].AvgAcuity {
			return out[i].AvgAcuity > out[j].AvgAcuity
		}
		return out[i].Oracle < out[j].Oracle
	})
	return out, nil
}

// GuardrailHistogram counts guardrail findings per status.
func (m *MemStore) GuardrailHistogram() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]int)
	for _, f := range m.findings {
		out[f.Status]++
	}
	return out, nil
}

// RecentRuns returns the most recent runs, newest first (insertion order).
func (m *MemStore) RecentRuns(limit int) ([]RunDetail, error) {
	if limit <= 0 {
		limit = 10
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []RunDetail
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		run := m.runs[i]
		detail := RunDetail{Run: run}
		for _, in := range m.insights {
			if in.RunID == run.ID {
				detail.Insights = append(detail.Insights, in)
			}
		}
		for _, f := range m.findings {
			if f.RunID == run.ID {
				detail.Findings = append(detail.Findings, f)
			}
		}
		out = append(out, detail)
	}
	return out, nil
}
