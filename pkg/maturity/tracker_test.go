package maturity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/pkg/models"
)

func record(passRate, coverage float64) models.QualityMetrics {
	return models.QualityMetrics{
		Timestamp:    time.Now(),
		TestPassRate: passRate,
		CoveragePct:  coverage,
	}
}

func TestAppendAndLoadHistory(t *testing.T) {
	tr := NewTracker()
	workspace := t.TempDir()

	require.NoError(t, tr.Append(workspace, record(100, 90)))
	require.NoError(t, tr.Append(workspace, record(95, 88)))

	history := tr.Load(workspace)
	require.Len(t, history, 2)
	assert.InDelta(t, 100, history[0].TestPassRate, 1e-9)
	assert.InDelta(t, 88, history[1].CoveragePct, 1e-9)
}

func TestLoadMissingHistory(t *testing.T) {
	assert.Empty(t, NewTracker().Load(t.TempDir()))
}

func TestDetectDegradation(t *testing.T) {
	tr := NewTracker()

	// Peak (100+90)/2 = 95, recent mean of last 3 = (80+70+60... ) — use a
	// clear collapse from the peak.
	history := []models.QualityMetrics{
		record(100, 90),
		record(98, 90),
		record(70, 60),
		record(68, 60),
		record(66, 58),
	}
	info := tr.DetectDegradation(history)
	require.NotNil(t, info)
	assert.InDelta(t, 95, info.PeakScore, 1e-9)
	assert.Greater(t, info.Drop, DefaultDegradationThreshold)
}

func TestDetectDegradationHolds(t *testing.T) {
	tr := NewTracker()
	history := []models.QualityMetrics{
		record(100, 90),
		record(98, 88),
		record(97, 89),
	}
	assert.Nil(t, tr.DetectDegradation(history), "small dips are not degradation")
	assert.Nil(t, tr.DetectDegradation(history[:1]), "one record has no trend")
	assert.Nil(t, tr.DetectDegradation(nil))
}

func TestDetectDegradationTwoRecordsUsesLatest(t *testing.T) {
	tr := NewTracker()
	history := []models.QualityMetrics{
		record(100, 100),
		record(60, 60),
	}
	info := tr.DetectDegradation(history)
	require.NotNil(t, info)
	assert.InDelta(t, 60, info.RecentScore, 1e-9)
	assert.InDelta(t, 40, info.Drop, 1e-9)
}
