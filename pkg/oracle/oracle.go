// Package oracle defines the public contract of the illumination engine:
// payloads, patterns, insights, the pluggable Oracle capability, the
// registry that orders oracle invocation, and guardrail verdicts.
package oracle

import (
	"context"
	"sync"
)

// Oracle is the single pluggable capability of the engine: turn one payload
// plus the recognized patterns into one Insight. Implementations must be
// pure functions of their inputs (no shared mutable state) and must honor
// ctx cancellation for anything that could block.
type Oracle interface {
	Name() string
	Illuminate(ctx context.Context, payload Payload, patterns []Pattern) (Insight, error)
}

// Func adapts a plain function to the Oracle interface.
type Func struct {
	OracleName string
	Fn         func(ctx context.Context, payload Payload, patterns []Pattern) (Insight, error)
}

func (f Func) Name() string { return f.OracleName }

func (f Func) Illuminate(ctx context.Context, payload Payload, patterns []Pattern) (Insight, error) {
	return f.Fn(ctx, payload, patterns)
}

// Registry holds oracles keyed by unique name. Registering a duplicate name
// replaces the prior entry but keeps its original slot, so invocation order
// stays stable across reconfiguration. Writes must never be concurrent with
// an in-flight cycle's reads; the mutex guards against misuse, not against
// that discipline being ignored.
type Registry struct {
	mu     sync.RWMutex
	order  []string
	byName map[string]Oracle
}

// NewRegistry returns a registry pre-populated with the given oracles in
// argument order.
func NewRegistry(oracles ...Oracle) *Registry {
	r := &Registry{byName: make(map[string]Oracle, len(oracles))}
	for _, o := range oracles {
		r.Register(o)
	}
	return r
}

// Register adds o under its name. Last write wins; a replaced oracle keeps
// the registration slot of its first registration.
func (r *Registry) Register(o Oracle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	name := o.Name()
	if _, exists := r.byName[name]; !exists {
		r.order = append(r.order, name)
	}
	r.byName[name] = o
}

// Get returns the oracle registered under name.
func (r *Registry) Get(name string) (Oracle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.byName[name]
	if !ok {
		return nil, ErrNotRegistered
	}
	return o, nil
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Snapshot returns the oracles in registration order. Cycles iterate over a
// snapshot so a concurrent (misbehaving) Register cannot change cardinality
// mid-flight.
func (r *Registry) Snapshot() []Oracle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Oracle, len(r.order))
	for i, name := range r.order {
		out[i] = r.byName[name]
	}
	return out
}

// Len returns the number of registered oracles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
