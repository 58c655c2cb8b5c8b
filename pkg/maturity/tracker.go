package maturity

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/codeframe-hq/codeframe/pkg/models"
)

// DefaultDegradationThreshold is the peak-vs-recent drop, in percentage
// points, that counts as quality degradation.
const DefaultDegradationThreshold = 10.0

const historyFile = "quality_history.json"

// Tracker maintains the per-project quality history: an append-only JSON
// list of QualityMetrics records consulted for degradation detection.
type Tracker struct {
	threshold float64
}

// NewTracker creates a tracker with the default degradation threshold.
func NewTracker() *Tracker {
	return &Tracker{threshold: DefaultDegradationThreshold}
}

func historyPath(workspacePath string) string {
	return filepath.Join(workspacePath, ".codeframe", historyFile)
}

// Append records one quality observation in the project's history file.
func (tr *Tracker) Append(workspacePath string, record models.QualityMetrics) error {
	history := tr.Load(workspacePath)
	history = append(history, record)

	dir := filepath.Dir(historyPath(workspacePath))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize quality history: %w", err)
	}
	if err := os.WriteFile(historyPath(workspacePath), data, 0o600); err != nil {
		return fmt.Errorf("failed to write quality history: %w", err)
	}
	return nil
}

// Load reads the project's quality history. Missing or corrupt files yield
// an empty history.
func (tr *Tracker) Load(workspacePath string) []models.QualityMetrics {
	data, err := os.ReadFile(historyPath(workspacePath))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read quality history", "path", historyPath(workspacePath), "error", err)
		}
		return nil
	}
	var history []models.QualityMetrics
	if err := json.Unmarshal(data, &history); err != nil {
		slog.Warn("Corrupt quality history ignored", "path", historyPath(workspacePath), "error", err)
		return nil
	}
	return history
}

// DetectDegradation compares the historical peak against the recent score
// (mean of the last 3 records, or the single latest when fewer exist). A
// drop beyond the threshold is degradation; nil means quality held.
func (tr *Tracker) DetectDegradation(history []models.QualityMetrics) *models.DegradationInfo {
	if len(history) < 2 {
		return nil
	}

	peak := 0.0
	for _, rec := range history {
		if s := recordScore(rec); s > peak {
			peak = s
		}
	}

	recentWindow := history
	if len(history) >= 3 {
		recentWindow = history[len(history)-3:]
	} else {
		recentWindow = history[len(history)-1:]
	}
	recent := 0.0
	for _, rec := range recentWindow {
		recent += recordScore(rec)
	}
	recent /= float64(len(recentWindow))

	drop := peak - recent
	if drop <= tr.threshold {
		return nil
	}
	return &models.DegradationInfo{
		PeakScore:   peak,
		RecentScore: recent,
		Drop:        drop,
	}
}

// recordScore is the mean of pass rate and coverage for one record.
func recordScore(rec models.QualityMetrics) float64 {
	return (rec.TestPassRate + rec.CoveragePct) / 2
}
