package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/agentcrew/core"
)

// StubWorker is a configurable core.Worker for tests: canned results or
// errors per capability, plus a record of every invocation.
type StubWorker struct {
	WorkerKind string
	// Results maps capability name to the canned result.
	Results map[string]any
	// Errs maps capability name to the error to return.
	Errs map[string]error
	// PanicOn names a capability whose invocation panics.
	PanicOn string

	mu    sync.Mutex
	calls []StubCall
}

// StubCall records one Invoke on a StubWorker.
type StubCall struct {
	Capability string
	Task       string
	Aux        map[string]any
}

// NewStubWorker builds a StubWorker serving the given capability results.
func NewStubWorker(kind string, results map[string]any) *StubWorker {
	return &StubWorker{WorkerKind: kind, Results: results}
}

// Kind implements core.Worker.
func (w *StubWorker) Kind() string { return w.WorkerKind }

// Capabilities implements core.Worker.
func (w *StubWorker) Capabilities() []string {
	caps := make([]string, 0, len(w.Results)+len(w.Errs))
	for name := range w.Results {
		caps = append(caps, name)
	}
	for name := range w.Errs {
		caps = append(caps, name)
	}
	return caps
}

// Invoke implements core.Worker.
func (w *StubWorker) Invoke(_ context.Context, capability, task string, aux map[string]any) (any, error) {
	w.mu.Lock()
	w.calls = append(w.calls, StubCall{Capability: capability, Task: task, Aux: aux})
	w.mu.Unlock()

	if capability == w.PanicOn {
		panic(fmt.Sprintf("stub worker %s asked to panic", w.WorkerKind))
	}

	if err, ok := w.Errs[capability]; ok {
		return nil, err
	}

	if result, ok := w.Results[capability]; ok {
		return result, nil
	}

	return nil, fmt.Errorf("stub worker %q capability %q: %w", w.WorkerKind, capability, core.ErrNoCapability)
}

// Calls returns a copy of the recorded invocations.
func (w *StubWorker) Calls() []StubCall {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]StubCall, len(w.calls))
	copy(out, w.calls)
	return out
}

// StubResolver is a fixed-map core.WorkerResolver for tests.
type StubResolver struct {
	Workers map[string]core.Worker
	// FailKinds resolve with a hard (non not-found) error.
	FailKinds map[string]error
}

// NewStubResolver builds a resolver over the given workers.
func NewStubResolver(workers ...core.Worker) *StubResolver {
	m := make(map[string]core.Worker, len(workers))
	for _, w := range workers {
		m[w.Kind()] = w
	}
	return &StubResolver{Workers: m}
}

// Resolve implements core.WorkerResolver.
func (r *StubResolver) Resolve(kind string) (core.Worker, error) {
	if err, ok := r.FailKinds[kind]; ok {
		return nil, err
	}
	if w, ok := r.Workers[kind]; ok {
		return w, nil
	}
	return nil, fmt.Errorf("worker kind %q: %w", kind, core.ErrWorkerNotFound)
}
