package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSharedState(t *testing.T) {
	state := NewSharedState("summarize the report")

	assert.NotEmpty(t, state.TaskID)
	assert.Equal(t, "summarize the report", state.Task)
	assert.Equal(t, StatusPending, state.GetStatus())
	assert.Empty(t, state.CopyMessages())
	assert.Empty(t, state.CopyArtifacts())
	assert.Empty(t, state.CopyErrors())
	assert.Equal(t, -1, state.CurrentStep)
}

func TestSharedState_FreshTaskIDs(t *testing.T) {
	a := NewSharedState("task")
	b := NewSharedState("task")

	assert.NotEqual(t, a.TaskID, b.TaskID)
}

func TestSharedState_AppendOnlyLogs(t *testing.T) {
	state := NewSharedState("task")

	state.AppendMessage(Message{Worker: "a", Action: ActionResearch})
	state.AppendMessage(Message{Worker: "b", Action: ActionGenerate})
	state.AppendError("a: boom")
	state.AppendArtifact(Artifact{Source: "b", Type: ActionGenerate, Content: "text"})

	msgs := state.CopyMessages()
	require.Len(t, msgs, 2)
	assert.Equal(t, "a", msgs[0].Worker)
	assert.Equal(t, "b", msgs[1].Worker)
	assert.Equal(t, []string{"a: boom"}, state.CopyErrors())
	require.Len(t, state.CopyArtifacts(), 1)
}

func TestSharedState_OutputsLastWriteWins(t *testing.T) {
	state := NewSharedState("task")

	state.SetOutput(WorkerOutput{WorkerKind: "alpha", Action: ActionResearch, Result: "first", Success: true})
	state.SetOutput(WorkerOutput{WorkerKind: "beta", Action: ActionGenerate, Result: "draft", Success: true})
	state.SetOutput(WorkerOutput{WorkerKind: "alpha", Action: ActionAnalyze, Result: "second", Success: true})

	outputs := state.Outputs()
	require.Len(t, outputs, 2)
	assert.Equal(t, "second", outputs["alpha"].Result)
	assert.Equal(t, ActionAnalyze, outputs["alpha"].Action)

	// Overwriting keeps the first-write position.
	assert.Equal(t, []string{"alpha", "beta"}, state.OutputOrder())
}

func TestSharedState_OutputValues(t *testing.T) {
	state := NewSharedState("task")
	state.SetOutput(WorkerOutput{WorkerKind: "alpha", Result: map[string]any{"analysis": "ok"}, Success: true})

	vals := state.OutputValues()
	require.Contains(t, vals, "alpha")
	assert.Equal(t, map[string]any{"analysis": "ok"}, vals["alpha"])
}

func TestSharedState_MergeContext(t *testing.T) {
	state := NewSharedState("task")
	state.MergeContext(map[string]any{"audience": "execs"})
	state.MergeContext(nil)

	snap := state.ContextSnapshot()
	assert.Equal(t, "execs", snap["audience"])

	// Snapshot is a copy; mutating it must not leak back.
	snap["audience"] = "everyone"
	assert.Equal(t, "execs", state.ContextSnapshot()["audience"])
}

func TestSharedState_AdvanceTo(t *testing.T) {
	state := NewSharedState("task")
	rd := MustRoleDescriptor("research_assistant", RoleResearcher)

	state.AdvanceTo(2, &rd)

	assert.Equal(t, 2, state.CurrentStep)
	require.NotNil(t, state.CurrentWorker)
	assert.Equal(t, "research_assistant", state.CurrentWorker.WorkerKind)
}

func TestSharedState_SetMetadataCopies(t *testing.T) {
	md := map[string]any{"env": "test"}
	state := NewSharedState("task")
	state.SetMetadata(md)

	md["env"] = "prod"

	assert.Equal(t, "test", state.CopyMetadata()["env"])
}

func TestTeamResult_Success(t *testing.T) {
	assert.True(t, TeamResult{Status: StatusCompleted}.Success())
	assert.False(t, TeamResult{Status: StatusFailed}.Success())
	assert.False(t, TeamResult{Status: StatusCancelled}.Success())
}

func TestTeamStatus_Terminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusFailed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusRunning.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusWaitingInput.Terminal())
}
