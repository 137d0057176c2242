package core

import "time"

// TeamResult is the immutable snapshot compiled exactly once per run, after
// the dispatch loop terminates normally or by fault. A Failed or Cancelled
// result still carries whatever partial artifacts, outputs and messages had
// accumulated before the fault.
type TeamResult struct {
	TaskID        string                  `json:"task_id"`
	TeamName      string                  `json:"team_name"`
	Status        TeamStatus              `json:"status"`
	Result        string                  `json:"result,omitempty"`
	Artifacts     []Artifact              `json:"artifacts"`
	WorkerOutputs map[string]WorkerOutput `json:"worker_outputs"`
	Duration      time.Duration           `json:"duration"`
	// Iterations counts the steps actually executed, never exceeding the
	// configured MaxIterations.
	Iterations int            `json:"iterations"`
	Errors     []string       `json:"errors"`
	Metadata   map[string]any `json:"metadata,omitempty"`
}

// Success reports whether the run reached Completed. Note that a Completed
// run may still carry per-worker failures in Errors and WorkerOutputs;
// callers inspecting run health must check both.
func (r TeamResult) Success() bool { return r.Status == StatusCompleted }
