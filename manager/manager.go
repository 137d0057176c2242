// Package manager maintains the process-wide catalog of team instances and
// named templates. A Manager is an explicit object constructed once and
// injected into callers; there is no hidden package-level registry, so tests
// can build independent managers.
package manager

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/logging"
	"github.com/hupe1980/agentcrew/team"
)

// Template is a named pairing of default role descriptors and a default
// config, used to pre-populate a team when the caller supplies only a name.
type Template struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Roles       []core.RoleDescriptor `json:"roles"`
	Config      core.TeamConfig       `json:"config"`
}

// Options holds dependency overrides passed to New().
type Options struct {
	// Logger receives manager and team telemetry; defaults to NoOpLogger.
	Logger logging.Logger
	// Templates seeds the template catalog; defaults to BuiltinTemplates().
	Templates []Template
}

// Manager is the team catalog. All methods are safe for concurrent use; the
// catalog is the only data structure in the engine touched by multiple tasks
// concurrently and is guarded by a coarse lock.
type Manager struct {
	resolver core.WorkerResolver
	logger   logging.Logger

	mu        sync.RWMutex
	teams     map[string]*team.Team
	templates map[string]Template
}

// New constructs a Manager using the given resolver for all worker binding.
func New(resolver core.WorkerResolver, optFns ...func(o *Options)) *Manager {
	opts := Options{
		Logger:    logging.NoOpLogger{},
		Templates: BuiltinTemplates(),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	m := &Manager{
		resolver:  resolver,
		logger:    opts.Logger,
		teams:     map[string]*team.Team{},
		templates: map[string]Template{},
	}

	for _, tpl := range opts.Templates {
		m.templates[tpl.Name] = tpl
	}

	return m
}

// RegisterTemplate installs or replaces a named template.
func (m *Manager) RegisterTemplate(tpl Template) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[tpl.Name] = tpl
}

// CreateTeam builds and registers a team under name, replacing any prior
// team of the same name. When roles is empty and name matches a known
// template, the template's roles and config fill in; an explicit config
// still overrides the template's. It is an error when no roles are
// available from either the arguments or a template.
func (m *Manager) CreateTeam(name string, roles []core.RoleDescriptor, config *core.TeamConfig) (*team.Team, error) {
	if len(roles) == 0 {
		m.mu.RLock()
		tpl, ok := m.templates[name]
		m.mu.RUnlock()

		if ok {
			roles = tpl.Roles
			if config == nil {
				cfg := tpl.Config
				config = &cfg
			}
		}
	}

	if len(roles) == 0 {
		return nil, fmt.Errorf("cannot create team %q: no roles given and no matching template", name)
	}

	if config == nil {
		cfg := core.NewTeamConfig(name)
		config = &cfg
	}

	cfg := *config
	cfg.Name = name

	tm, err := team.New(cfg, roles, func(o *team.Options) {
		o.Resolver = m.resolver
		o.Logger = m.logger
	})
	if err != nil {
		return nil, fmt.Errorf("creating team %q: %w", name, err)
	}

	m.mu.Lock()
	m.teams[name] = tm
	m.mu.Unlock()

	m.logger.Info("Team registered", "team", name, "roles", len(roles))

	return tm, nil
}

// GetTeam looks up a registered team by name.
func (m *Manager) GetTeam(name string) (*team.Team, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	tm, ok := m.teams[name]
	return tm, ok
}

// ListTeams returns a snapshot of every registered team, sorted by name.
func (m *Manager) ListTeams() []team.Status {
	m.mu.RLock()
	teams := make([]*team.Team, 0, len(m.teams))
	for _, tm := range m.teams {
		teams = append(teams, tm)
	}
	m.mu.RUnlock()

	out := make([]team.Status, 0, len(teams))
	for _, tm := range teams {
		out = append(out, tm.Status())
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// ListTemplates returns the known templates, sorted by name.
func (m *Manager) ListTemplates() []Template {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Template, 0, len(m.templates))
	for _, tpl := range m.templates {
		out = append(out, tpl)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out
}

// DestroyTeam removes a team from the catalog. Returns true iff a team
// existed under the name.
func (m *Manager) DestroyTeam(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.teams[name]; !ok {
		return false
	}

	delete(m.teams, name)
	return true
}

// RouteTask classifies the task text, ensures a team for the chosen template
// exists (creating it on first use) and executes the task on it, returning
// the compiled result.
func (m *Manager) RouteTask(ctx context.Context, task string, taskCtx map[string]any) (core.TeamResult, error) {
	name := ClassifyTask(task)

	tm, ok := m.GetTeam(name)
	if !ok {
		var err error
		tm, err = m.CreateTeam(name, nil, nil)
		if err != nil {
			return core.TeamResult{}, fmt.Errorf("routing task to template %q: %w", name, err)
		}
	}

	m.logger.Info("Task routed", "team", name)

	return <-tm.ExecuteAsync(ctx, task, taskCtx), nil
}

// GetCapabilities returns the union of all role capability tags per
// registered team.
func (m *Manager) GetCapabilities() map[string][]string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string][]string, len(m.teams))
	for name, tm := range m.teams {
		seen := map[string]bool{}
		var caps []string
		for _, rd := range tm.Roles() {
			for _, c := range rd.Capabilities {
				if seen[c] {
					continue
				}
				seen[c] = true
				caps = append(caps, c)
			}
		}
		sort.Strings(caps)
		out[name] = caps
	}

	return out
}
