package worker

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentcrew/core"
)

// CapabilityFunc serves one named capability: it receives the task text and
// the auxiliary map chosen by the dispatcher and returns an opaque result.
type CapabilityFunc func(ctx context.Context, task string, aux map[string]any) (any, error)

// FunctionWorker adapts a map of plain Go functions into a core.Worker.
// Capabilities not present in the map report core.ErrNoCapability so the
// dispatcher can probe its fallback chain.
type FunctionWorker struct {
	kind         string
	capabilities map[string]CapabilityFunc
}

// NewFunctionWorker creates a FunctionWorker for the given kind. The
// capability map keys must come from the closed vocabulary in the core
// package (analyzeTask, research, createContent, ...).
func NewFunctionWorker(kind string, capabilities map[string]CapabilityFunc) *FunctionWorker {
	caps := make(map[string]CapabilityFunc, len(capabilities))
	for name, fn := range capabilities {
		caps[name] = fn
	}
	return &FunctionWorker{kind: kind, capabilities: caps}
}

// Kind implements core.Worker.
func (w *FunctionWorker) Kind() string { return w.kind }

// Capabilities implements core.Worker.
func (w *FunctionWorker) Capabilities() []string {
	caps := make([]string, 0, len(w.capabilities))
	for name := range w.capabilities {
		caps = append(caps, name)
	}
	return caps
}

// Invoke implements core.Worker.
func (w *FunctionWorker) Invoke(ctx context.Context, capability, task string, aux map[string]any) (any, error) {
	fn, ok := w.capabilities[capability]
	if !ok {
		return nil, fmt.Errorf("worker %q capability %q: %w", w.kind, capability, core.ErrNoCapability)
	}
	return fn(ctx, task, aux)
}
