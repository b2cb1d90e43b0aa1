package engine

import (
	"context"
	"fmt"
	"time"

	"illuminate/pkg/oracle"
)

// invokeOracle runs one oracle under the configured time budget with full
// fault isolation: an error, panic, or timeout yields an inconclusive
// placeholder insight, never a cycle failure.
func invokeOracle(ctx context.Context, o oracle.Oracle, p oracle.Payload, patterns []oracle.Pattern, timeout time.Duration) oracle.Insight {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		insight oracle.Insight
		err     error
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("oracle panic: %v", r)}
			}
		}()
		in, err := o.Illuminate(ctx, p, patterns)
		ch <- outcome{insight: in, err: err}
	}()

	select {
	case <-ctx.Done():
		return placeholderInsight(o.Name(), fmt.Sprintf("time budget exceeded: %v", ctx.Err()))
	case out := <-ch:
		if out.err != nil {
			return placeholderInsight(o.Name(), out.err.Error())
		}
		return normalizeInsight(o.Name(), out.insight)
	}
}

// placeholderInsight fills a failed oracle's slot so the cardinality
// invariant (one insight per registered oracle) holds.
func placeholderInsight(oracleName, rationale string) oracle.Insight {
	return oracle.Insight{
		OracleName: oracleName,
		Statement:  "oracle failed to illuminate: " + rationale,
		Outcome:    oracle.OutcomeInconclusive,
		Acuity:     0,
	}
}

// normalizeInsight pins the producer name, zeroes any acuity the oracle may
// have smuggled in (scoring belongs to the acuity engine), and coerces an
// out-of-enumeration outcome class to inconclusive.
func normalizeInsight(oracleName string, in oracle.Insight) oracle.Insight {
	in.OracleName = oracleName
	in.Acuity = 0
	if !in.Outcome.Valid() {
		in.Outcome = oracle.OutcomeInconclusive
	}
	return in
}
