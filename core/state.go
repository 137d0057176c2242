package core

import (
	"sync"
	"time"

	"github.com/hupe1980/agentcrew/internal/util"
)

// Message records one dispatch event in the order it happened.
type Message struct {
	Worker    string    `json:"worker"`
	Action    Action    `json:"action"`
	Preview   string    `json:"preview"`
	Timestamp time.Time `json:"timestamp"`
}

// Artifact records one substantial worker output.
type Artifact struct {
	Source  string `json:"source"`
	Type    Action `json:"type"`
	Content any    `json:"content"`
}

// WorkerOutput is the per-worker contribution record. A new contribution for
// the same worker kind overwrites the prior one (last-write-wins).
type WorkerOutput struct {
	WorkerKind string    `json:"worker_kind"`
	Action     Action    `json:"action"`
	Result     any       `json:"result,omitempty"`
	Success    bool      `json:"success"`
	Error      string    `json:"error,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// SharedState is the single mutable record threaded through plan execution.
// It is created fresh per run, captured into the TeamResult at the end, and
// never reused across tasks. It is safe for concurrent access.
//
// Three distinct merge policies apply to its fields and must not be
// collapsed into one generic merge:
//   - Messages, Artifacts and Errors are append-only logs preserving
//     dispatch order exactly
//   - WorkerOutputs is an overwrite-by-key map (last-write-wins per kind)
//   - Context and Metadata are caller-supplied passthrough, untouched by
//     the engine
type SharedState struct {
	TaskID        string          `json:"task_id"`
	Task          string          `json:"task"`
	Status        TeamStatus      `json:"status"`
	Messages      []Message       `json:"messages"`
	Artifacts     []Artifact      `json:"artifacts"`
	CurrentWorker *RoleDescriptor `json:"current_worker,omitempty"`
	Context       map[string]any  `json:"context"`
	Plan          []PlanStep      `json:"plan"`
	CurrentStep   int             `json:"current_step"`
	Errors        []string        `json:"errors"`
	Metadata      map[string]any  `json:"metadata"`

	outputs     map[string]WorkerOutput
	outputOrder []string
	mu          sync.RWMutex
}

// NewSharedState creates fresh state for one execution of the given task.
// The status starts at Pending and the task id is generated.
func NewSharedState(task string) *SharedState {
	return &SharedState{
		TaskID:      util.NewID(),
		Task:        task,
		Status:      StatusPending,
		Messages:    []Message{},
		Artifacts:   []Artifact{},
		Context:     map[string]any{},
		Errors:      []string{},
		Metadata:    map[string]any{},
		CurrentStep: -1,
		outputs:     map[string]WorkerOutput{},
	}
}

// SetStatus moves the state to the given lifecycle value.
func (s *SharedState) SetStatus(status TeamStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Status = status
}

// GetStatus returns the current lifecycle value.
func (s *SharedState) GetStatus() TeamStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Status
}

// AppendMessage records one dispatch event. Messages only ever grow during a
// run and are never truncated or reordered.
func (s *SharedState) AppendMessage(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, m)
}

// AppendArtifact records one substantial output.
func (s *SharedState) AppendArtifact(a Artifact) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Artifacts = append(s.Artifacts, a)
}

// AppendError records one error string in dispatch order.
func (s *SharedState) AppendError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, msg)
}

// SetOutput records a worker contribution, overwriting any prior entry for
// the same worker kind. First-write order is retained so result compilation
// iterates outputs in insertion order.
func (s *SharedState) SetOutput(out WorkerOutput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.outputs[out.WorkerKind]; !seen {
		s.outputOrder = append(s.outputOrder, out.WorkerKind)
	}
	s.outputs[out.WorkerKind] = out
}

// Output returns the current contribution for a worker kind.
func (s *SharedState) Output(workerKind string) (WorkerOutput, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out, ok := s.outputs[workerKind]
	return out, ok
}

// Outputs returns a copy of the worker output map.
func (s *SharedState) Outputs() map[string]WorkerOutput {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]WorkerOutput, len(s.outputs))
	for k, v := range s.outputs {
		out[k] = v
	}
	return out
}

// OutputOrder returns the worker kinds in first-write order.
func (s *SharedState) OutputOrder() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	order := make([]string, len(s.outputOrder))
	copy(order, s.outputOrder)
	return order
}

// OutputValues returns the raw result values keyed by worker kind. Used as
// the auxiliary argument for generation capabilities so writers can build on
// earlier contributions.
func (s *SharedState) OutputValues() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	vals := make(map[string]any, len(s.outputs))
	for k, v := range s.outputs {
		vals[k] = v.Result
	}
	return vals
}

// MergeContext copies caller-supplied pairs into the context map. The engine
// itself never merges or interprets context values beyond this entry point.
func (s *SharedState) MergeContext(ctx map[string]any) {
	if len(ctx) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range ctx {
		s.Context[k] = v
	}
}

// ContextSnapshot returns a copy of the context map safe to hand to workers.
func (s *SharedState) ContextSnapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := make(map[string]any, len(s.Context))
	for k, v := range s.Context {
		snap[k] = v
	}
	return snap
}

// SetPlan stores the ordered step list. Set once after planning.
func (s *SharedState) SetPlan(plan []PlanStep) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Plan = plan
}

// AdvanceTo marks the given step as current and records the role executing it.
func (s *SharedState) AdvanceTo(stepIndex int, worker *RoleDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.CurrentStep = stepIndex
	s.CurrentWorker = worker
}

// CopyMessages returns a defensive copy of the message log.
func (s *SharedState) CopyMessages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// CopyArtifacts returns a defensive copy of the artifact log.
func (s *SharedState) CopyArtifacts() []Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Artifact, len(s.Artifacts))
	copy(out, s.Artifacts)
	return out
}

// CopyErrors returns a defensive copy of the error log.
func (s *SharedState) CopyErrors() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.Errors))
	copy(out, s.Errors)
	return out
}

// CopyMetadata returns a defensive copy of the metadata map.
func (s *SharedState) CopyMetadata() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]any, len(s.Metadata))
	for k, v := range s.Metadata {
		out[k] = v
	}
	return out
}

// SetMetadata replaces the metadata map with a copy of md.
func (s *SharedState) SetMetadata(md map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Metadata = make(map[string]any, len(md))
	for k, v := range md {
		s.Metadata[k] = v
	}
}
