package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTeamConfig_Defaults(t *testing.T) {
	cfg := NewTeamConfig("research")

	assert.Equal(t, "research", cfg.Name)
	assert.Equal(t, DefaultMaxIterations, cfg.MaxIterations)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.False(t, cfg.ParallelExecution)
	assert.False(t, cfg.RequireApproval)
	assert.Equal(t, ErrorHandlingContinue, cfg.ErrorHandling)
}

func TestNewTeamConfig_Overrides(t *testing.T) {
	cfg := NewTeamConfig("ops", func(c *TeamConfig) {
		c.MaxIterations = 3
		c.Timeout = 5 * time.Second
		c.ErrorHandling = ErrorHandlingStop
	})

	assert.Equal(t, 3, cfg.MaxIterations)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, ErrorHandlingStop, cfg.ErrorHandling)
}

func TestTeamConfig_Validate(t *testing.T) {
	require.NoError(t, NewTeamConfig("ok").Validate())

	err := NewTeamConfig("bad", func(c *TeamConfig) { c.MaxIterations = 0 }).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max iterations")

	err = TeamConfig{MaxIterations: 1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}
