package worker

import (
	"fmt"
	"sync"

	"github.com/hupe1980/agentcrew/core"
)

// Factory constructs a worker instance for one kind. Called lazily at
// binding time; an error fails the binding (fatal for required roles).
type Factory func() (core.Worker, error)

// Registry maps worker kinds to factories and implements
// core.WorkerResolver. It is safe for concurrent use. Registries are
// explicit objects handed to teams and managers, never ambient globals, so
// tests can build independent ones.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty worker registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register installs a factory for a worker kind, replacing any prior one.
func (r *Registry) Register(kind string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[kind] = factory
}

// RegisterWorker installs an already constructed worker under its own kind.
func (r *Registry) RegisterWorker(w core.Worker) {
	r.Register(w.Kind(), func() (core.Worker, error) { return w, nil })
}

// Kinds returns the registered worker kinds.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	return kinds
}

// Resolve implements core.WorkerResolver. Unknown kinds yield
// core.ErrWorkerNotFound; factory errors are reported as hard binding
// failures.
func (r *Registry) Resolve(kind string) (core.Worker, error) {
	r.mu.RLock()
	factory, ok := r.factories[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("worker kind %q: %w", kind, core.ErrWorkerNotFound)
	}

	w, err := factory()
	if err != nil {
		return nil, fmt.Errorf("constructing worker %q: %w", kind, err)
	}

	return w, nil
}
