package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// stateDir is the per-project metadata directory under the workspace.
const stateDir = ".codeframe"

// LastSession summarizes the previous working session.
type LastSession struct {
	Summary        string    `json:"summary"`
	CompletedTasks []string  `json:"completed_tasks"`
	Timestamp      time.Time `json:"timestamp"`
}

// SessionState is the per-project session-state file shape.
type SessionState struct {
	LastSession    *LastSession `json:"last_session,omitempty"`
	NextActions    []string     `json:"next_actions,omitempty"`
	CurrentPlan    string       `json:"current_plan,omitempty"`
	ActiveBlockers []string     `json:"active_blockers,omitempty"`
	ProgressPct    float64      `json:"progress_pct"`
}

func sessionStatePath(workspacePath string) string {
	return filepath.Join(workspacePath, stateDir, "session_state.json")
}

// LoadSessionState reads the workspace's session state. Missing or corrupt
// files yield nil without an error so callers never crash on bad state.
func LoadSessionState(workspacePath string) *SessionState {
	path := sessionStatePath(workspacePath)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read session state", "path", path, "error", err)
		}
		return nil
	}

	var state SessionState
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Warn("Corrupt session state ignored", "path", path, "error", err)
		return nil
	}
	return &state
}

// SaveSessionState writes the workspace's session state, user-readable only.
func SaveSessionState(workspacePath string, state *SessionState) error {
	dir := filepath.Join(workspacePath, stateDir)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session state: %w", err)
	}

	if err := os.WriteFile(sessionStatePath(workspacePath), data, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}
