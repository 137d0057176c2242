// Package agentcrew provides a high-level façade over the team manager and
// worker registry, enabling rapid construction of role-bound worker teams.
// Most applications interact with this package by:
//  1. Creating an AgentCrew via New() (optionally overriding the registry,
//     templates or logger)
//  2. Registering one or more workers (function-backed, Anthropic, OpenAI or
//     custom core.Worker implementations)
//  3. Creating teams explicitly or letting RouteTask pick a template by task
//     keywords
//
// The façade delegates orchestration to manager.Manager while keeping setup
// and usage ergonomics concise. All defaults are safe for local development
// and testing.
package agentcrew

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/logging"
	"github.com/hupe1980/agentcrew/manager"
	"github.com/hupe1980/agentcrew/team"
	"github.com/hupe1980/agentcrew/worker"
)

// Options configures the AgentCrew instance.
type Options struct {
	// Registry holds the worker factories; defaults to an empty registry.
	Registry *worker.Registry
	// Templates seeds the manager's template catalog; defaults to the
	// built-in set.
	Templates []manager.Template
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// AgentCrew aggregates the worker registry and team manager.
type AgentCrew struct {
	registry *worker.Registry
	manager  *manager.Manager
}

// New creates a new AgentCrew instance with optional overrides.
func New(optFns ...func(o *Options)) *AgentCrew {
	opts := Options{
		Registry:  worker.NewRegistry(),
		Templates: manager.BuiltinTemplates(),
		Logger:    logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := manager.New(opts.Registry, func(o *manager.Options) {
		o.Logger = opts.Logger
		o.Templates = opts.Templates
	})

	return &AgentCrew{registry: opts.Registry, manager: m}
}

// RegisterWorker installs an already constructed worker under its own kind.
func (a *AgentCrew) RegisterWorker(w core.Worker) {
	a.registry.RegisterWorker(w)
}

// RegisterWorkerFactory installs a lazily invoked factory for a worker kind.
func (a *AgentCrew) RegisterWorkerFactory(kind string, factory worker.Factory) {
	a.registry.Register(kind, factory)
}

// Manager exposes the underlying team manager for catalog operations.
func (a *AgentCrew) Manager() *manager.Manager { return a.manager }

// CreateTeam builds and registers a team; see manager.Manager.CreateTeam.
func (a *AgentCrew) CreateTeam(name string, roles []core.RoleDescriptor, config *core.TeamConfig) (*team.Team, error) {
	return a.manager.CreateTeam(name, roles, config)
}

// Execute runs a task on a named registered team synchronously.
func (a *AgentCrew) Execute(ctx context.Context, teamName, task string, taskCtx map[string]any) (core.TeamResult, error) {
	tm, ok := a.manager.GetTeam(teamName)
	if !ok {
		return core.TeamResult{}, fmt.Errorf("no team registered under %q", teamName)
	}
	return tm.Execute(ctx, task, taskCtx), nil
}

// RouteTask classifies the task by keyword and executes it on the matching
// template's team, creating the team on first use.
func (a *AgentCrew) RouteTask(ctx context.Context, task string, taskCtx map[string]any) (core.TeamResult, error) {
	return a.manager.RouteTask(ctx, task, taskCtx)
}
