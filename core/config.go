package core

import (
	"fmt"
	"time"
)

// ErrorHandling selects how a team treats per-step worker failures.
// Only Continue semantics are exercised by the base dispatch loop; Stop and
// Retry are declared policy slots for extension.
type ErrorHandling string

const (
	// ErrorHandlingContinue absorbs worker failures and keeps dispatching.
	ErrorHandlingContinue ErrorHandling = "continue"
	// ErrorHandlingStop is reserved: abort the loop on first failure.
	ErrorHandlingStop ErrorHandling = "stop"
	// ErrorHandlingRetry is reserved: re-dispatch a failed step.
	ErrorHandlingRetry ErrorHandling = "retry"
)

// Default policy values applied by NewTeamConfig.
const (
	DefaultMaxIterations = 10
	DefaultTimeout       = 300 * time.Second
)

// TeamConfig carries the execution policy for one team.
type TeamConfig struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// MaxIterations is the hard cap on the number of plan steps actually
	// executed in one run. Must be > 0.
	MaxIterations int `json:"max_iterations"`
	// Timeout bounds one whole run. Enforced between steps; an expired
	// deadline transitions the run to Cancelled with partial state kept.
	Timeout time.Duration `json:"timeout"`
	// ParallelExecution is a declared extension point; the base loop is
	// strictly sequential regardless of this flag.
	ParallelExecution bool `json:"parallel_execution"`
	// RequireApproval signals an approval checkpoint policy; no gating
	// logic beyond the flag itself.
	RequireApproval bool `json:"require_approval"`
	// CheckpointSteps lists step identifiers where checkpoint policy
	// applies.
	CheckpointSteps []string `json:"checkpoint_steps,omitempty"`
	// ErrorHandling selects the failure policy; only Continue is exercised.
	ErrorHandling ErrorHandling `json:"error_handling"`
	// Metadata is copied into the initial SharedState metadata of every run.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// NewTeamConfig returns a TeamConfig with defaults applied
// (MaxIterations 10, Timeout 300s, sequential, Continue error handling).
func NewTeamConfig(name string, optFns ...func(c *TeamConfig)) TeamConfig {
	cfg := TeamConfig{
		Name:          name,
		MaxIterations: DefaultMaxIterations,
		Timeout:       DefaultTimeout,
		ErrorHandling: ErrorHandlingContinue,
	}

	for _, fn := range optFns {
		fn(&cfg)
	}

	return cfg
}

// Validate checks the config invariants.
func (c TeamConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("team config requires a name")
	}

	if c.MaxIterations <= 0 {
		return fmt.Errorf("team %q: max iterations must be positive, got %d", c.Name, c.MaxIterations)
	}

	return nil
}
