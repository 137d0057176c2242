package core

// TeamStatus tracks a run through its lifecycle. Transitions are driven
// exclusively by the team execution loop; there is no external transition
// API.
//
// Pending -> Initializing -> Running -> {Completed | Failed | Cancelled}
//
// WaitingInput is reachable only by policy extension (human-approval
// checkpoints) and is never set by the base loop.
type TeamStatus string

const (
	// StatusPending marks freshly created state before binding starts.
	StatusPending TeamStatus = "pending"
	// StatusInitializing marks worker binding in progress.
	StatusInitializing TeamStatus = "initializing"
	// StatusRunning marks plan steps being dispatched.
	StatusRunning TeamStatus = "running"
	// StatusWaitingInput is reserved for approval checkpoints.
	StatusWaitingInput TeamStatus = "waiting_input"
	// StatusCompleted marks a run that finished its plan (or hit the
	// iteration cap) without an engine fault.
	StatusCompleted TeamStatus = "completed"
	// StatusFailed marks a run aborted by a required binding failure or an
	// engine fault.
	StatusFailed TeamStatus = "failed"
	// StatusCancelled marks a run stopped by context cancellation or the
	// configured timeout; partial outputs are preserved.
	StatusCancelled TeamStatus = "cancelled"
)

// Terminal reports whether the status is a terminal lifecycle value.
func (s TeamStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// String implements fmt.Stringer.
func (s TeamStatus) String() string { return string(s) }
