package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentcrew/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveRegistered(t *testing.T) {
	r := NewRegistry()
	r.Register("scout", func() (core.Worker, error) {
		return NewFunctionWorker("scout", nil), nil
	})

	w, err := r.Resolve("scout")

	require.NoError(t, err)
	assert.Equal(t, "scout", w.Kind())
}

func TestRegistry_ResolveUnknownKind(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve("ghost")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrWorkerNotFound)
}

func TestRegistry_FactoryErrorIsHardFailure(t *testing.T) {
	r := NewRegistry()
	r.Register("broken", func() (core.Worker, error) {
		return nil, errors.New("missing credentials")
	})

	_, err := r.Resolve("broken")

	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrWorkerNotFound)
	assert.Contains(t, err.Error(), "missing credentials")
}

func TestRegistry_RegisterWorker(t *testing.T) {
	r := NewRegistry()
	r.RegisterWorker(NewFunctionWorker("beta", nil))

	w, err := r.Resolve("beta")

	require.NoError(t, err)
	assert.Equal(t, "beta", w.Kind())
	assert.Contains(t, r.Kinds(), "beta")
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := NewRegistry()
	r.RegisterWorker(NewFunctionWorker("scout", nil))
	r.Register("scout", func() (core.Worker, error) {
		return NewFunctionWorker("scout", map[string]CapabilityFunc{
			core.CapabilityResearch: func(context.Context, string, map[string]any) (any, error) {
				return "replaced", nil
			},
		}), nil
	})

	w, err := r.Resolve("scout")
	require.NoError(t, err)

	result, err := w.Invoke(context.Background(), core.CapabilityResearch, "task", nil)
	require.NoError(t, err)
	assert.Equal(t, "replaced", result)
}
