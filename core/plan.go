package core

// Action is the small fixed vocabulary of things a plan step can ask a
// worker to do.
type Action string

const (
	// ActionAnalyzeTask asks the lead worker to break the task down.
	ActionAnalyzeTask Action = "analyze_task"
	// ActionResearch asks a researcher to gather information.
	ActionResearch Action = "research"
	// ActionAnalyze asks an analyst to evaluate material.
	ActionAnalyze Action = "analyze"
	// ActionGenerate asks a writer to produce content.
	ActionGenerate Action = "generate"
	// ActionExecute asks an executor to carry out the task.
	ActionExecute Action = "execute"
	// ActionReview asks a reviewer for a final pass.
	ActionReview Action = "review"
	// ActionProcess is the generic fallback when no phase matched.
	ActionProcess Action = "process"
)

// String implements fmt.Stringer.
func (a Action) String() string { return string(a) }

// PlanStep is one entry of an execution plan. Index is 0-based and dense
// across the full plan; Description is derived and not authoritative.
type PlanStep struct {
	Index       int    `json:"index"`
	WorkerKind  string `json:"worker_kind"`
	Action      Action `json:"action"`
	Description string `json:"description"`
}
