// Package dispatch executes single plan steps against bound workers and
// folds each outcome into the run's shared state. A dispatch never returns
// an error: per-step worker failures are captured into the state's error log
// and output map so the plan as a whole keeps going (Continue policy).
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/internal/util"
	"github.com/hupe1980/agentcrew/logging"
)

// DefaultPreviewLength bounds the result preview recorded per message.
const DefaultPreviewLength = 120

// capabilityChains maps each plan action to the ordered capability names the
// dispatcher probes on a worker. The first capability the worker implements
// wins; when none match, a default output is synthesized instead of failing
// the step.
var capabilityChains = map[core.Action][]string{
	core.ActionAnalyzeTask: {core.CapabilityAnalyzeTask, core.CapabilityProcess, core.CapabilityRun},
	core.ActionResearch:    {core.CapabilityResearch, core.CapabilityQuery, core.CapabilityProcess, core.CapabilityRun},
	core.ActionAnalyze:     {core.CapabilityAnalyze, core.CapabilityQuery, core.CapabilityProcess, core.CapabilityRun},
	core.ActionGenerate:    {core.CapabilityCreateContent, core.CapabilityGenerate, core.CapabilityProcess, core.CapabilityRun},
	core.ActionExecute:     {core.CapabilityExecute, core.CapabilityRun, core.CapabilityProcess},
	core.ActionReview:      {core.CapabilityReview, core.CapabilityAnalyze, core.CapabilityProcess, core.CapabilityRun},
	core.ActionProcess:     {core.CapabilityProcess, core.CapabilityRun},
}

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives dispatch telemetry; defaults to NoOpLogger.
	Logger logging.Logger
	// PreviewLength bounds the truncated result preview per message.
	PreviewLength int
}

// Dispatcher invokes one worker capability per plan step and applies the
// three state merge policies: append one message always, overwrite the
// worker's output entry always, append an artifact only on non-empty
// success.
type Dispatcher struct {
	logger     logging.Logger
	previewLen int
}

// New constructs a Dispatcher with optional overrides.
func New(optFns ...func(o *Options)) *Dispatcher {
	opts := Options{
		Logger:        logging.NoOpLogger{},
		PreviewLength: DefaultPreviewLength,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Dispatcher{logger: opts.Logger, previewLen: opts.PreviewLength}
}

// Dispatch runs one plan step against the bound worker, mutating state in
// place. A nil worker means the step's kind never bound: the step is skipped
// with a warning and consumes no error slot. A worker failure is absorbed
// into state (error log + failed output entry); it is never fatal to the
// run.
func (d *Dispatcher) Dispatch(ctx context.Context, worker core.Worker, step core.PlanStep, state *core.SharedState) {
	if worker == nil {
		d.logger.Warn("No bound worker for plan step, skipping",
			"worker_kind", step.WorkerKind, "action", step.Action.String(), "step", step.Index)
		return
	}

	start := time.Now()
	result, err := d.invoke(ctx, worker, step, state)

	out := core.WorkerOutput{
		WorkerKind: step.WorkerKind,
		Action:     step.Action,
		Timestamp:  time.Now(),
	}

	var preview string

	if err != nil {
		out.Error = err.Error()
		state.AppendError(fmt.Sprintf("%s: %s", step.WorkerKind, err))
		preview = err.Error()
	} else {
		out.Success = true
		out.Result = result
		preview = util.Stringify(result)
	}

	state.SetOutput(out)
	state.AppendMessage(core.Message{
		Worker:    step.WorkerKind,
		Action:    step.Action,
		Preview:   util.Truncate(preview, d.previewLen),
		Timestamp: time.Now(),
	})

	if out.Success && util.Stringify(result) != "" {
		state.AppendArtifact(core.Artifact{
			Source:  step.WorkerKind,
			Type:    step.Action,
			Content: result,
		})
	}

	if cl, ok := d.logger.(*logging.CrewLogger); ok {
		cl.LogDispatch(step.WorkerKind, step.Action.String(), time.Since(start), out.Success, err)
	} else if err != nil {
		d.logger.Error("Step dispatch failed", "worker_kind", step.WorkerKind, "action", step.Action.String(), "error", err.Error())
	} else {
		d.logger.Debug("Step dispatch completed", "worker_kind", step.WorkerKind, "action", step.Action.String())
	}
}

// invoke probes the step's capability chain on the worker. Capabilities the
// worker does not implement are skipped; when the whole chain misses, a
// default output object is synthesized so the step still contributes to the
// run.
func (d *Dispatcher) invoke(ctx context.Context, worker core.Worker, step core.PlanStep, state *core.SharedState) (any, error) {
	aux := auxFor(step.Action, state)

	for _, capability := range capabilityChains[step.Action] {
		result, err := safeInvoke(ctx, worker, capability, state.Task, aux)
		if errors.Is(err, core.ErrNoCapability) {
			continue
		}
		return result, err
	}

	d.logger.Debug("Worker implements no capability for action, synthesizing output",
		"worker_kind", step.WorkerKind, "action", step.Action.String())

	return map[string]any{
		"worker": worker.Kind(),
		"action": step.Action.String(),
		"note":   fmt.Sprintf("no capability matched action %s; task acknowledged", step.Action),
	}, nil
}

// auxFor selects the auxiliary argument per capability family: generation
// capabilities receive the accumulated worker outputs so writers can build
// on earlier contributions; everything else receives the caller context.
func auxFor(action core.Action, state *core.SharedState) map[string]any {
	if action == core.ActionGenerate {
		return state.OutputValues()
	}
	return state.ContextSnapshot()
}

// safeInvoke shields the dispatch loop from panicking workers by converting
// a panic into a per-step error.
func safeInvoke(ctx context.Context, worker core.Worker, capability, task string, aux map[string]any) (result any, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("worker panic in %s: %v", capability, r)
		}
	}()

	return worker.Invoke(ctx, capability, task, aux)
}
