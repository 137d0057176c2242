package agentcrew

import (
	"context"
	"testing"

	"github.com/hupe1980/agentcrew/core"
	"github.com/hupe1980/agentcrew/manager"
	"github.com/hupe1980/agentcrew/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentCrew_EndToEnd(t *testing.T) {
	crew := New()

	crew.RegisterWorker(worker.NewFunctionWorker("alpha", map[string]worker.CapabilityFunc{
		core.CapabilityAnalyzeTask: func(_ context.Context, task string, _ map[string]any) (any, error) {
			return map[string]any{"analysis": task, "subtasks": []string{task}}, nil
		},
	}))
	crew.RegisterWorker(worker.NewFunctionWorker("beta", map[string]worker.CapabilityFunc{
		core.CapabilityCreateContent: func(_ context.Context, _ string, _ map[string]any) (any, error) {
			return map[string]any{"content": "Memo: all hands at noon"}, nil
		},
	}))

	roles := []core.RoleDescriptor{
		core.MustRoleDescriptor("alpha", core.RoleLead),
		core.MustRoleDescriptor("beta", core.RoleWriter),
	}

	_, err := crew.CreateTeam("memo", roles, nil)
	require.NoError(t, err)

	res, err := crew.Execute(context.Background(), "memo", "draft a memo", nil)
	require.NoError(t, err)

	assert.True(t, res.Success())
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, "**alpha**:\ndraft a memo\n\n---\n\n**beta**:\nMemo: all hands at noon", res.Result)
}

func TestAgentCrew_ExecuteUnknownTeam(t *testing.T) {
	crew := New()

	_, err := crew.Execute(context.Background(), "ghost", "task", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no team")
}

func TestAgentCrew_RouteTask(t *testing.T) {
	crew := New()

	crew.RegisterWorker(worker.NewFunctionWorker("research_assistant", map[string]worker.CapabilityFunc{
		core.CapabilityResearch: func(context.Context, string, map[string]any) (any, error) {
			return map[string]any{"research": "dossier"}, nil
		},
	}))

	res, err := crew.RouteTask(context.Background(), "research the market", nil)

	require.NoError(t, err)
	assert.Equal(t, manager.TemplateResearch, res.TeamName)
	assert.Contains(t, res.Result, "dossier")
}

func TestAgentCrew_RegisterWorkerFactory(t *testing.T) {
	crew := New()

	crew.RegisterWorkerFactory("lazy", func() (core.Worker, error) {
		return worker.NewFunctionWorker("lazy", map[string]worker.CapabilityFunc{
			core.CapabilityProcess: func(context.Context, string, map[string]any) (any, error) {
				return "done", nil
			},
		}), nil
	})

	roles := []core.RoleDescriptor{core.MustRoleDescriptor("lazy", core.RoleMonitor)}
	_, err := crew.CreateTeam("lazy-team", roles, nil)
	require.NoError(t, err)

	res, err := crew.Execute(context.Background(), "lazy-team", "task", nil)
	require.NoError(t, err)
	assert.True(t, res.Success())
}
