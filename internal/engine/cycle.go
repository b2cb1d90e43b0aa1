package engine

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"illuminate/internal/logging"
	"illuminate/pkg/oracle"
)

// Engine sequences the six illumination stages strictly in order:
// recognize, illuminate, score, enhance, audit, question. All components
// are pure over their inputs; the engine is the only place cross-stage
// state is assembled.
type Engine struct {
	cfg        Config
	recognizer *Recognizer
	scorer     *Scorer
	enhancer   *Enhancer
	auditor    *Auditor
	feedback   *FeedbackGenerator
	log        *slog.Logger
}

// New builds an engine from cfg and the pattern vocabulary. cfg must have
// been validated by the caller (RunCycle validates on every run).
func New(cfg Config, defs []PatternDef) *Engine {
	scorer := NewScorer(cfg)
	return &Engine{
		cfg:        cfg,
		recognizer: NewRecognizer(defs),
		scorer:     scorer,
		enhancer:   NewEnhancer(cfg, scorer),
		auditor:    NewAuditor(cfg),
		feedback:   NewFeedbackGenerator(),
		log:        logging.New("engine"),
	}
}

// RunCycle executes one illumination cycle. Only payload validation and
// configuration errors abort before a result; every other anomaly is
// absorbed into the result's data. Cancellation is cooperative at stage
// boundaries; once the guardrail audit starts it runs to its verdict.
func (e *Engine) RunCycle(ctx context.Context, payload oracle.Payload, registry *oracle.Registry) (*oracle.IlluminationResult, error) {
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	if err := payload.Validate(); err != nil {
		return nil, err
	}

	// Stage 1: pattern recognition.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	patterns := e.recognizer.Recognize(payload)
	e.log.Debug("patterns recognized", "count", len(patterns))

	// Stage 2: oracle fan-out in registration order.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	oracles := registry.Snapshot()
	insights := e.illuminate(ctx, oracles, payload, patterns)

	// Stage 3: acuity scoring.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range insights {
		insights[i].Acuity = e.scorer.Score(insights[i], patterns)
	}

	// Stage 4: agentic enhancement.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range insights {
		insights[i] = e.enhancer.Enhance(ctx, insights[i], oracles[i], payload, patterns)
	}
	emergent := DetectEmergent(insights)
	overall := e.scorer.Overall(insights)

	// Stage 5: guardrail audit. Runs to completion even if ctx is
	// cancelled mid-audit; partial audits are never surfaced.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report := e.auditor.Audit(AuditInput{
		Insights:        insights,
		RegisteredNames: registry.Names(),
		OverallAcuity:   overall,
		Emergent:        emergent,
		HasFeedback:     e.feedback != nil,
	})

	// Stage 6: recursive feedback question.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	question := e.feedback.Question(insights, report, emergent)

	e.log.Info("cycle complete",
		"oracles", len(insights),
		"overall_acuity", overall,
		"verdict", report.Overall.String(),
		"emergent", emergent,
	)

	return &oracle.IlluminationResult{
		Insights:              insights,
		OverallAcuity:         overall,
		Guardrails:            report,
		Patterns:              patterns,
		Question:              question,
		EmergentVulnerability: emergent,
	}, nil
}

// illuminate fans the payload out over the oracles. Serial by default; with
// cfg.Parallel > 1 the fan-out uses a bounded worker group and results are
// written back into registration-order slots, preserving determinism.
func (e *Engine) illuminate(ctx context.Context, oracles []oracle.Oracle, payload oracle.Payload, patterns []oracle.Pattern) []oracle.Insight {
	insights := make([]oracle.Insight, len(oracles))

	if e.cfg.Parallel <= 1 {
		for i, o := range oracles {
			insights[i] = invokeOracle(ctx, o, payload, patterns, e.cfg.OracleTimeout)
		}
		return insights
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Parallel)
	for i, o := range oracles {
		g.Go(func() error {
			insights[i] = invokeOracle(gctx, o, payload, patterns, e.cfg.OracleTimeout)
			return nil
		})
	}
	// Workers never return errors; faults become placeholder insights.
	_ = g.Wait()
	return insights
}
