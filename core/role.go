package core

import "fmt"

// Role identifies the functional position a worker occupies in a plan.
type Role string

const (
	// RoleLead coordinates the run; its worker analyzes the task first.
	RoleLead Role = "lead"
	// RoleResearcher gathers information relevant to the task.
	RoleResearcher Role = "researcher"
	// RoleAnalyst evaluates gathered material.
	RoleAnalyst Role = "analyst"
	// RoleWriter produces content from accumulated outputs.
	RoleWriter Role = "writer"
	// RoleReviewer performs a final pass over produced outputs.
	RoleReviewer Role = "reviewer"
	// RoleExecutor carries out concrete actions for the task.
	RoleExecutor Role = "executor"
	// RoleMonitor observes a run without a dedicated plan phase.
	RoleMonitor Role = "monitor"
)

// Valid reports whether r is one of the seven recognized roles.
func (r Role) Valid() bool {
	switch r {
	case RoleLead, RoleResearcher, RoleAnalyst, RoleWriter, RoleReviewer, RoleExecutor, RoleMonitor:
		return true
	}
	return false
}

// String implements fmt.Stringer.
func (r Role) String() string { return string(r) }

// RoleDescriptor declares one worker's participation in a team: identity,
// functional role, capability tags, execution priority, required-ness and
// role specific configuration. Descriptors are constructed once at team
// creation time and treated as immutable thereafter.
type RoleDescriptor struct {
	// WorkerKind names the worker implementation; it is resolved to a
	// concrete Worker through a WorkerResolver at execution time.
	WorkerKind string `json:"worker_kind"`
	// Role is the functional position the worker occupies in the plan.
	Role Role `json:"role"`
	// Capabilities tags what the worker can do. Defaulted from the static
	// kind table when empty.
	Capabilities []string `json:"capabilities"`
	// Priority orders workers within the same plan phase; higher runs earlier.
	Priority int `json:"priority"`
	// Required aborts the whole run when the worker fails to bind.
	Required bool `json:"required"`
	// Config carries opaque per-role settings passed through to the worker.
	Config map[string]any `json:"config,omitempty"`
}

// NewRoleDescriptor constructs a RoleDescriptor for the given worker kind and
// role. Unknown roles are rejected. Empty capability sets are defaulted from
// the static kind table.
func NewRoleDescriptor(workerKind string, role Role, optFns ...func(rd *RoleDescriptor)) (RoleDescriptor, error) {
	if !role.Valid() {
		return RoleDescriptor{}, fmt.Errorf("unknown role %q for worker kind %q", role, workerKind)
	}

	rd := RoleDescriptor{
		WorkerKind: workerKind,
		Role:       role,
	}

	for _, fn := range optFns {
		fn(&rd)
	}

	if len(rd.Capabilities) == 0 {
		rd.Capabilities = DefaultCapabilities(workerKind)
	}

	return rd, nil
}

// MustRoleDescriptor is like NewRoleDescriptor but panics on an invalid role.
// Intended for template and test wiring with compile-time known roles.
func MustRoleDescriptor(workerKind string, role Role, optFns ...func(rd *RoleDescriptor)) RoleDescriptor {
	rd, err := NewRoleDescriptor(workerKind, role, optFns...)
	if err != nil {
		panic(err)
	}
	return rd
}
