// Package plan turns a team's role set and a task into an ordered list of
// execution steps. Build is a pure function: no hidden state, identical
// inputs always yield identical plans.
package plan

import (
	"fmt"
	"sort"

	"github.com/hupe1980/agentcrew/core"
)

// Build derives the ordered step list for a task using the fixed role
// precedence:
//
//  1. The first Lead role analyzes the task
//  2. Researchers and Analysts gather and evaluate, in role-list order
//  3. Writers and Executors produce and act, in role-list order
//  4. The first Reviewer gets one final review step
//
// Within phases 2 and 3 a higher Priority moves a role earlier; equal
// priorities keep role-list order. When no phase matched any role (empty
// role list or Monitor-only teams) every role falls back to one generic
// Process step. An empty role list yields an empty plan.
//
// Note that additional Lead roles beyond the first get no step at all rather
// than being demoted to another phase. Callers relying on multi-lead teams
// must be aware of this asymmetry.
func Build(roles []core.RoleDescriptor, task string) []core.PlanStep {
	var steps []core.PlanStep

	if lead, ok := first(roles, core.RoleLead); ok {
		steps = append(steps, core.PlanStep{
			WorkerKind:  lead.WorkerKind,
			Action:      core.ActionAnalyzeTask,
			Description: fmt.Sprintf("Analyze task: %s", task),
		})
	}

	for _, rd := range byPriority(roles, core.RoleResearcher, core.RoleAnalyst) {
		action := core.ActionResearch
		if rd.Role == core.RoleAnalyst {
			action = core.ActionAnalyze
		}
		steps = append(steps, core.PlanStep{
			WorkerKind:  rd.WorkerKind,
			Action:      action,
			Description: fmt.Sprintf("%s for task: %s", action, task),
		})
	}

	for _, rd := range byPriority(roles, core.RoleWriter, core.RoleExecutor) {
		action := core.ActionGenerate
		if rd.Role == core.RoleExecutor {
			action = core.ActionExecute
		}
		steps = append(steps, core.PlanStep{
			WorkerKind:  rd.WorkerKind,
			Action:      action,
			Description: fmt.Sprintf("%s for task: %s", action, task),
		})
	}

	if reviewer, ok := first(roles, core.RoleReviewer); ok {
		steps = append(steps, core.PlanStep{
			WorkerKind:  reviewer.WorkerKind,
			Action:      core.ActionReview,
			Description: fmt.Sprintf("Review outputs for task: %s", task),
		})
	}

	// No recognized phase matched: give every role one generic step.
	if len(steps) == 0 {
		for _, rd := range roles {
			steps = append(steps, core.PlanStep{
				WorkerKind:  rd.WorkerKind,
				Action:      core.ActionProcess,
				Description: fmt.Sprintf("Process task: %s", task),
			})
		}
	}

	for i := range steps {
		steps[i].Index = i
	}

	return steps
}

// first returns the first role-list entry with the given role.
func first(roles []core.RoleDescriptor, role core.Role) (core.RoleDescriptor, bool) {
	for _, rd := range roles {
		if rd.Role == role {
			return rd, true
		}
	}
	return core.RoleDescriptor{}, false
}

// byPriority selects roles matching either given role and orders them by
// descending priority, keeping role-list order for ties.
func byPriority(roles []core.RoleDescriptor, a, b core.Role) []core.RoleDescriptor {
	var out []core.RoleDescriptor
	for _, rd := range roles {
		if rd.Role == a || rd.Role == b {
			out = append(out, rd)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out
}
