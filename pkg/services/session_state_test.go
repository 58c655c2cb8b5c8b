package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStateRoundTrip(t *testing.T) {
	workspace := t.TempDir()

	state := &SessionState{
		LastSession: &LastSession{
			Summary:        "implemented the parser",
			CompletedTasks: []string{"1.1", "1.2"},
			Timestamp:      time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC),
		},
		NextActions: []string{"wire the API"},
		CurrentPlan: "finish milestone 1",
		ProgressPct: 40,
	}
	require.NoError(t, SaveSessionState(workspace, state))

	// User-readable only
	info, err := os.Stat(filepath.Join(workspace, ".codeframe", "session_state.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	loaded := LoadSessionState(workspace)
	require.NotNil(t, loaded)
	assert.Equal(t, state.LastSession.Summary, loaded.LastSession.Summary)
	assert.Equal(t, state.NextActions, loaded.NextActions)
	assert.InDelta(t, 40, loaded.ProgressPct, 1e-9)
}

func TestLoadSessionStateMissing(t *testing.T) {
	assert.Nil(t, LoadSessionState(t.TempDir()))
}

func TestLoadSessionStateCorrupt(t *testing.T) {
	workspace := t.TempDir()
	dir := filepath.Join(workspace, ".codeframe")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "session_state.json"), []byte("{not json"), 0o600))

	assert.Nil(t, LoadSessionState(workspace), "corrupt state yields nil, not a crash")
}
