package core

import (
	"context"
	"errors"
)

var (
	// ErrWorkerNotFound is returned by a WorkerResolver when no worker
	// implementation exists for the requested kind. The team treats it as a
	// soft absence for optional roles and as a fatal binding failure for
	// required ones.
	ErrWorkerNotFound = errors.New("worker not found")

	// ErrNoCapability is returned by a Worker when it does not implement the
	// requested capability. The dispatcher probes fallback capabilities and
	// finally synthesizes a default output instead of failing the step.
	ErrNoCapability = errors.New("capability not implemented")
)

// Worker is the only boundary the engine depends on: an opaque capability
// endpoint bound to a worker kind. The engine never inspects a worker beyond
// invoking named capabilities from the closed vocabulary in capability.go.
//
// Invoke receives the task text and an auxiliary map (the run context for
// analysis/execution capabilities, the accumulated worker outputs for
// generation capabilities) and returns an opaque result. Implementations
// must return ErrNoCapability (possibly wrapped) for capabilities they do
// not serve, so the dispatcher can fall back gracefully.
type Worker interface {
	Kind() string
	Capabilities() []string
	Invoke(ctx context.Context, capability, task string, aux map[string]any) (any, error)
}

// WorkerResolver binds a worker kind to a concrete Worker. Resolution
// failures for unknown kinds must be reported as ErrWorkerNotFound so the
// team can distinguish optional absence from hard failure.
type WorkerResolver interface {
	Resolve(kind string) (Worker, error)
}
