// Package mcp exposes the illumination engine over the Model Context
// Protocol so agent hosts can run cycles and read analytics as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"illuminate/internal/engine"
	"illuminate/internal/store"
	"illuminate/pkg/oracle"
)

// Server wraps the MCP SDK server around the engine and analytics store.
type Server struct {
	MCPServer *sdkmcp.Server

	engine   *engine.Engine
	registry *oracle.Registry
	store    store.Store
	patterns []engine.PatternDef
}

// NewServer creates an MCP server exposing the illumination tools.
func NewServer(eng *engine.Engine, registry *oracle.Registry, st store.Store, patterns []engine.PatternDef) *Server {
	s := &Server{
		engine:   eng,
		registry: registry,
		store:    st,
		patterns: patterns,
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "illuminate", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "illuminate_cycle",
		Description: "Run one illumination cycle over a JSON payload. Returns scored insights, the guardrail verdict, and the follow-up question.",
	}, s.handleIlluminateCycle)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "get_analytics",
		Description: "Read run analytics: per-oracle acuity summary, guardrail status histogram, and recent runs.",
	}, s.handleGetAnalytics)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "list_oracles",
		Description: "List the registered oracles in invocation order and the recognizable pattern vocabulary.",
	}, s.handleListOracles)
}

// --- Tool input/output types ---

type illuminateCycleInput struct {
	PayloadJSON string `json:"payload_json" jsonschema:"JSON object with at least one of summary, hypothesis, or dataset"`
	Source      string `json:"source,omitempty" jsonschema:"analytics source tag (default mcp)"`
}

type illuminateCycleOutput struct {
	RunID  string                     `json:"run_id,omitempty"`
	Result *oracle.IlluminationResult `json:"result"`
}

type getAnalyticsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"number of recent runs to include (default 10)"`
}

type getAnalyticsOutput struct {
	Oracles    []store.OracleAcuity `json:"oracles"`
	Guardrails map[string]int       `json:"guardrails"`
	RecentRuns []store.RunDetail    `json:"recent_runs"`
}

type listOraclesInput struct{}

type listOraclesOutput struct {
	Oracles  []string            `json:"oracles"`
	Patterns []engine.PatternDef `json:"patterns"`
}

// --- Tool handlers ---

func (s *Server) handleIlluminateCycle(ctx context.Context, _ *sdkmcp.CallToolRequest, input illuminateCycleInput) (*sdkmcp.CallToolResult, illuminateCycleOutput, error) {
	var payload oracle.Payload
	if err := json.Unmarshal([]byte(input.PayloadJSON), &payload); err != nil {
		return nil, illuminateCycleOutput{}, fmt.Errorf("parse payload: %w", err)
	}

	result, err := s.engine.RunCycle(ctx, payload, s.registry)
	if err != nil {
		return nil, illuminateCycleOutput{}, fmt.Errorf("run cycle: %w", err)
	}

	out := illuminateCycleOutput{Result: result}
	if s.store != nil {
		source := input.Source
		if source == "" {
			source = "mcp"
		}
		if runID, err := s.store.SaveResult(source, payload, result); err == nil {
			out.RunID = runID
		}
	}
	return nil, out, nil
}

func (s *Server) handleGetAnalytics(_ context.Context, _ *sdkmcp.CallToolRequest, input getAnalyticsInput) (*sdkmcp.CallToolResult, getAnalyticsOutput, error) {
	if s.store == nil {
		return nil, getAnalyticsOutput{}, fmt.Errorf("no analytics store configured")
	}
	summary, err := s.store.OracleAcuitySummary()
	if err != nil {
		return nil, getAnalyticsOutput{}, fmt.Errorf("oracle summary: %w", err)
	}
	histogram, err := s.store.GuardrailHistogram()
	if err != nil {
		return nil, getAnalyticsOutput{}, fmt.Errorf("guardrail histogram: %w", err)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}
	runs, err := s.store.RecentRuns(limit)
	if err != nil {
		return nil, getAnalyticsOutput{}, fmt.Errorf("recent runs: %w", err)
	}
	return nil, getAnalyticsOutput{Oracles: summary, Guardrails: histogram, RecentRuns: runs}, nil
}

func (s *Server) handleListOracles(_ context.Context, _ *sdkmcp.CallToolRequest, _ listOraclesInput) (*sdkmcp.CallToolResult, listOraclesOutput, error) {
	return nil, listOraclesOutput{Oracles: s.registry.Names(), Patterns: s.patterns}, nil
}
