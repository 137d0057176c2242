package manager

import (
	"context"
	"testing"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTeam_ExplicitRoles(t *testing.T) {
	m := New(testutil.NewStubResolver())

	roles := []core.RoleDescriptor{core.MustRoleDescriptor("scout", core.RoleResearcher)}
	tm, err := m.CreateTeam("custom", roles, nil)

	require.NoError(t, err)
	assert.Equal(t, "custom", tm.Name())

	got, ok := m.GetTeam("custom")
	require.True(t, ok)
	assert.Same(t, tm, got)
}

func TestCreateTeam_TemplateFillIn(t *testing.T) {
	m := New(testutil.NewStubResolver())

	tm, err := m.CreateTeam(TemplateResearch, nil, nil)

	require.NoError(t, err)
	assert.Equal(t, TemplateResearch, tm.Name())
	assert.NotEmpty(t, tm.Roles())
}

func TestCreateTeam_ExplicitConfigOverridesTemplate(t *testing.T) {
	m := New(testutil.NewStubResolver())

	cfg := core.NewTeamConfig("ignored", func(c *core.TeamConfig) { c.MaxIterations = 2 })
	tm, err := m.CreateTeam(TemplateResearch, nil, &cfg)

	require.NoError(t, err)
	assert.Equal(t, 2, tm.Config().MaxIterations)
	// The registered name wins over the config's own name.
	assert.Equal(t, TemplateResearch, tm.Name())
}

func TestCreateTeam_NoRolesNoTemplate(t *testing.T) {
	m := New(testutil.NewStubResolver())

	_, err := m.CreateTeam("unknown", nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no roles")
}

func TestCreateTeam_ReplacesSameName(t *testing.T) {
	m := New(testutil.NewStubResolver())

	roles := []core.RoleDescriptor{core.MustRoleDescriptor("scout", core.RoleResearcher)}
	first, err := m.CreateTeam("crew", roles, nil)
	require.NoError(t, err)

	second, err := m.CreateTeam("crew", roles, nil)
	require.NoError(t, err)

	got, ok := m.GetTeam("crew")
	require.True(t, ok)
	assert.Same(t, second, got)
	assert.NotSame(t, first, got)
}

func TestDestroyTeam(t *testing.T) {
	m := New(testutil.NewStubResolver())

	roles := []core.RoleDescriptor{core.MustRoleDescriptor("scout", core.RoleResearcher)}
	_, err := m.CreateTeam("crew", roles, nil)
	require.NoError(t, err)

	assert.True(t, m.DestroyTeam("crew"))
	assert.False(t, m.DestroyTeam("crew"))

	_, ok := m.GetTeam("crew")
	assert.False(t, ok)
}

func TestListTeams_SortedByName(t *testing.T) {
	m := New(testutil.NewStubResolver())

	roles := []core.RoleDescriptor{core.MustRoleDescriptor("scout", core.RoleResearcher)}
	_, err := m.CreateTeam("zeta", roles, nil)
	require.NoError(t, err)
	_, err = m.CreateTeam("alpha", roles, nil)
	require.NoError(t, err)

	teams := m.ListTeams()
	require.Len(t, teams, 2)
	assert.Equal(t, "alpha", teams[0].Name)
	assert.Equal(t, "zeta", teams[1].Name)
}

func TestListTemplates_Builtins(t *testing.T) {
	m := New(testutil.NewStubResolver())

	templates := m.ListTemplates()

	names := make([]string, 0, len(templates))
	for _, tpl := range templates {
		names = append(names, tpl.Name)
	}

	assert.Equal(t, []string{TemplateContent, TemplateDailyOps, TemplateFullStack, TemplateResearch, TemplateSecurity}, names)
}

func TestRegisterTemplate(t *testing.T) {
	m := New(testutil.NewStubResolver(), func(o *Options) { o.Templates = nil })

	m.RegisterTemplate(Template{
		Name:   "minimal",
		Roles:  []core.RoleDescriptor{core.MustRoleDescriptor("scout", core.RoleResearcher)},
		Config: core.NewTeamConfig("minimal"),
	})

	tm, err := m.CreateTeam("minimal", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "minimal", tm.Name())
}

func TestGetCapabilities_UnionPerTeam(t *testing.T) {
	m := New(testutil.NewStubResolver())

	roles := []core.RoleDescriptor{
		core.MustRoleDescriptor("research_assistant", core.RoleResearcher),
		core.MustRoleDescriptor("data_analyst", core.RoleAnalyst),
	}
	_, err := m.CreateTeam("crew", roles, nil)
	require.NoError(t, err)

	caps := m.GetCapabilities()
	require.Contains(t, caps, "crew")
	// research_assistant: research+query; data_analyst: analyze+query.
	assert.Equal(t, []string{core.CapabilityAnalyze, core.CapabilityQuery, core.CapabilityResearch}, caps["crew"])
}

func TestRouteTask_CreatesAndExecutesTemplateTeam(t *testing.T) {
	scout := testutil.NewStubWorker("research_assistant", map[string]any{
		core.CapabilityResearch: map[string]any{"research": "quantum findings"},
	})
	m := New(testutil.NewStubResolver(scout))

	res, err := m.RouteTask(context.Background(), "please research quantum computing", nil)

	require.NoError(t, err)
	assert.Equal(t, TemplateResearch, res.TeamName)
	assert.Equal(t, core.StatusCompleted, res.Status)
	assert.Contains(t, res.Result, "quantum findings")

	_, ok := m.GetTeam(TemplateResearch)
	assert.True(t, ok)
}

func TestRouteTask_SecurityKeywords(t *testing.T) {
	scanner := testutil.NewStubWorker("security_scanner", map[string]any{
		core.CapabilityAnalyze: map[string]any{"analysis": "no threats found"},
	})
	m := New(testutil.NewStubResolver(scanner))

	res, err := m.RouteTask(context.Background(), "audit our firewall for threats", nil)

	require.NoError(t, err)
	assert.Equal(t, TemplateSecurity, res.TeamName)
}

func TestRouteTask_FallbackTemplate(t *testing.T) {
	m := New(testutil.NewStubResolver())

	res, err := m.RouteTask(context.Background(), "hello", nil)

	require.NoError(t, err)
	assert.Equal(t, TemplateFullStack, res.TeamName)
}

func TestRouteTask_ReusesExistingTeam(t *testing.T) {
	m := New(testutil.NewStubResolver())

	_, err := m.RouteTask(context.Background(), "hello", nil)
	require.NoError(t, err)

	first, ok := m.GetTeam(TemplateFullStack)
	require.True(t, ok)

	_, err = m.RouteTask(context.Background(), "hello again", nil)
	require.NoError(t, err)

	second, _ := m.GetTeam(TemplateFullStack)
	assert.Same(t, first, second)
}
