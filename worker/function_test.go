package worker

import (
	"context"
	"testing"

	"github.com/hupe1980/agentcrew/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFunctionWorker_Invoke(t *testing.T) {
	w := NewFunctionWorker("scout", map[string]CapabilityFunc{
		core.CapabilityResearch: func(_ context.Context, task string, _ map[string]any) (any, error) {
			return "findings for " + task, nil
		},
	})

	result, err := w.Invoke(context.Background(), core.CapabilityResearch, "topic", nil)

	require.NoError(t, err)
	assert.Equal(t, "findings for topic", result)
}

func TestFunctionWorker_MissingCapability(t *testing.T) {
	w := NewFunctionWorker("scout", nil)

	_, err := w.Invoke(context.Background(), core.CapabilityReview, "task", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrNoCapability)
}

func TestFunctionWorker_Capabilities(t *testing.T) {
	w := NewFunctionWorker("scout", map[string]CapabilityFunc{
		core.CapabilityResearch: func(context.Context, string, map[string]any) (any, error) { return nil, nil },
		core.CapabilityQuery:    func(context.Context, string, map[string]any) (any, error) { return nil, nil },
	})

	assert.ElementsMatch(t, []string{core.CapabilityResearch, core.CapabilityQuery}, w.Capabilities())
	assert.Equal(t, "scout", w.Kind())
}

func TestFunctionWorker_AuxPassedThrough(t *testing.T) {
	var seen map[string]any
	w := NewFunctionWorker("scout", map[string]CapabilityFunc{
		core.CapabilityProcess: func(_ context.Context, _ string, aux map[string]any) (any, error) {
			seen = aux
			return "ok", nil
		},
	})

	_, err := w.Invoke(context.Background(), core.CapabilityProcess, "task", map[string]any{"k": "v"})

	require.NoError(t, err)
	assert.Equal(t, "v", seen["k"])
}
