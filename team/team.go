// Package team implements the orchestration lifecycle: a Team owns one
// configuration and role set, lazily binds workers through a resolver,
// builds the execution plan and drives the dispatch loop to a compiled
// TeamResult.
package team

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/dispatch"
	"github.com/hupe1980/agentcrew/logging"
	"github.com/hupe1980/agentcrew/plan"
)

// Options holds dependency overrides passed to New().
type Options struct {
	// Resolver binds worker kinds to concrete workers. Required for any
	// team whose roles should actually execute; without one every step is
	// skipped (or the run fails fast on a required role).
	Resolver core.WorkerResolver
	// Dispatcher executes single plan steps; defaults to dispatch.New().
	Dispatcher *dispatch.Dispatcher
	// Logger receives team telemetry; defaults to NoOpLogger.
	Logger logging.Logger
}

// Team drives one task at a time through bind -> plan -> dispatch ->
// compile. Execute is serialized per instance; callers needing concurrent
// tasks use one Team instance per task. Status is safe to call concurrently
// with an in-flight Execute.
type Team struct {
	config     core.TeamConfig
	roles      []core.RoleDescriptor
	resolver   core.WorkerResolver
	dispatcher *dispatch.Dispatcher
	logger     logging.Logger

	runMu sync.Mutex // serializes Execute per team instance

	mu            sync.RWMutex // guards bound + currentTaskID
	bound         map[string]core.Worker
	currentTaskID string
}

// New constructs a Team from a config and role set. The config must
// validate and every role must carry a recognized role value. An empty role
// set is legal: its runs complete immediately with the fallback result.
func New(config core.TeamConfig, roles []core.RoleDescriptor, optFns ...func(o *Options)) (*Team, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	for _, rd := range roles {
		if !rd.Role.Valid() {
			return nil, fmt.Errorf("team %q: unknown role %q for worker kind %q", config.Name, rd.Role, rd.WorkerKind)
		}
	}

	opts := Options{
		Dispatcher: dispatch.New(),
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	rolesCopy := make([]core.RoleDescriptor, len(roles))
	copy(rolesCopy, roles)

	return &Team{
		config:     config,
		roles:      rolesCopy,
		resolver:   opts.Resolver,
		dispatcher: opts.Dispatcher,
		logger:     opts.Logger,
		bound:      map[string]core.Worker{},
	}, nil
}

// Name returns the team name.
func (t *Team) Name() string { return t.config.Name }

// Config returns the team's execution policy.
func (t *Team) Config() core.TeamConfig { return t.config }

// Roles returns a copy of the team's role descriptors.
func (t *Team) Roles() []core.RoleDescriptor {
	out := make([]core.RoleDescriptor, len(t.roles))
	copy(out, t.roles)
	return out
}

// Status is a read-only snapshot of a team, safe to take while a run is in
// flight.
type Status struct {
	Name          string                `json:"name"`
	Roles         []core.RoleDescriptor `json:"roles"`
	BoundWorkers  []string              `json:"bound_workers"`
	CurrentTaskID string                `json:"current_task_id,omitempty"`
}

// Status returns the current team snapshot.
func (t *Team) Status() Status {
	t.mu.RLock()
	defer t.mu.RUnlock()

	bound := make([]string, 0, len(t.bound))
	for kind := range t.bound {
		bound = append(bound, kind)
	}

	return Status{
		Name:          t.config.Name,
		Roles:         t.Roles(),
		BoundWorkers:  bound,
		CurrentTaskID: t.currentTaskID,
	}
}

// Execute synchronously drives the full lifecycle for one task and returns
// the compiled result. Failures surface inside the result, never as a
// returned error: a required binding failure or engine fault yields a Failed
// result, context cancellation or the configured timeout a Cancelled one,
// and per-worker failures are absorbed into the error log of an otherwise
// Completed run.
func (t *Team) Execute(ctx context.Context, task string, taskCtx map[string]any) core.TeamResult {
	t.runMu.Lock()
	defer t.runMu.Unlock()

	start := time.Now()

	state := core.NewSharedState(task)
	state.SetMetadata(t.config.Metadata)
	state.MergeContext(taskCtx)

	t.setCurrentTask(state.TaskID)
	defer t.setCurrentTask("")

	if t.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.config.Timeout)
		defer cancel()
	}

	iterations := t.run(ctx, task, state)

	status := state.GetStatus()

	var compiled string
	if status == core.StatusCompleted {
		compiled = compileResult(state)
	}

	duration := time.Since(start)

	if cl, ok := t.logger.(*logging.CrewLogger); ok {
		cl.LogTeamRun(t.config.Name, iterations, duration, status.String())
	} else {
		t.logger.Info("Team run finished", "team", t.config.Name, "status", status.String(), "iterations", iterations)
	}

	return core.TeamResult{
		TaskID:        state.TaskID,
		TeamName:      t.config.Name,
		Status:        status,
		Result:        compiled,
		Artifacts:     state.CopyArtifacts(),
		WorkerOutputs: state.Outputs(),
		Duration:      duration,
		Iterations:    iterations,
		Errors:        state.CopyErrors(),
		Metadata:      state.CopyMetadata(),
	}
}

// ExecuteAsync runs the synchronous path on its own goroutine and delivers
// the result on the returned channel. It does not parallelize individual
// plan steps.
func (t *Team) ExecuteAsync(ctx context.Context, task string, taskCtx map[string]any) <-chan core.TeamResult {
	ch := make(chan core.TeamResult, 1)

	go func() {
		defer close(ch)
		ch <- t.Execute(ctx, task, taskCtx)
	}()

	return ch
}

// run executes bind -> plan -> dispatch loop, mutating state, and returns
// the number of steps actually executed. An unexpected engine fault (panic
// outside step dispatch) transitions the run to Failed while keeping the
// partial state gathered so far.
func (t *Team) run(ctx context.Context, task string, state *core.SharedState) (iterations int) {
	defer func() {
		if r := recover(); r != nil {
			state.AppendError(fmt.Sprintf("engine fault: %v", r))
			state.SetStatus(core.StatusFailed)
			t.logger.Error("Engine fault during team run", "team", t.config.Name, "panic", fmt.Sprintf("%v", r))
		}
	}()

	state.SetStatus(core.StatusInitializing)

	if err := t.bindWorkers(); err != nil {
		state.AppendError(err.Error())
		state.SetStatus(core.StatusFailed)
		return 0
	}

	state.SetStatus(core.StatusRunning)

	steps := plan.Build(t.roles, task)
	state.SetPlan(steps)

	for i := range steps {
		if iterations >= t.config.MaxIterations {
			// Capacity limit, not a failure: the run still completes.
			t.logger.Debug("Iteration cap reached, stopping plan early",
				"team", t.config.Name, "max_iterations", t.config.MaxIterations)
			break
		}

		select {
		case <-ctx.Done():
			state.SetStatus(core.StatusCancelled)
			t.logger.Warn("Team run cancelled", "team", t.config.Name, "cause", ctx.Err().Error())
			return iterations
		default:
		}

		state.AdvanceTo(i, t.roleFor(steps[i].WorkerKind))
		t.dispatcher.Dispatch(ctx, t.boundWorker(steps[i].WorkerKind), steps[i], state)
		iterations++
	}

	state.SetStatus(core.StatusCompleted)

	return iterations
}

// bindWorkers resolves every role's worker, caching bindings across runs. A
// resolution failure aborts only for required roles; optional roles stay
// absent so their plan steps are skipped by the dispatcher.
func (t *Team) bindWorkers() error {
	for _, rd := range t.roles {
		if t.boundWorker(rd.WorkerKind) != nil {
			continue
		}

		w, err := t.resolve(rd.WorkerKind)
		if err != nil {
			if rd.Required {
				return fmt.Errorf("required worker %q failed to bind: %w", rd.WorkerKind, err)
			}
			t.logger.Warn("Optional worker failed to bind, role absent",
				"worker_kind", rd.WorkerKind, "role", rd.Role.String(), "error", err.Error())
			continue
		}

		t.mu.Lock()
		t.bound[rd.WorkerKind] = w
		t.mu.Unlock()
	}

	return nil
}

func (t *Team) resolve(kind string) (core.Worker, error) {
	if t.resolver == nil {
		return nil, fmt.Errorf("no resolver configured: %w", core.ErrWorkerNotFound)
	}

	w, err := t.resolver.Resolve(kind)
	if err != nil {
		if errors.Is(err, core.ErrWorkerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("resolving worker %q: %w", kind, err)
	}

	return w, nil
}

func (t *Team) boundWorker(kind string) core.Worker {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.bound[kind]
}

// roleFor returns the first role descriptor using the given worker kind.
func (t *Team) roleFor(kind string) *core.RoleDescriptor {
	for i := range t.roles {
		if t.roles[i].WorkerKind == kind {
			rd := t.roles[i]
			return &rd
		}
	}
	return nil
}

func (t *Team) setCurrentTask(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.currentTaskID = id
}
