package evidence

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

func coveragePtr(v float64) *float64 { return &v }

func passingInput() CollectInput {
	return CollectInput{
		TaskID:   "task-1",
		AgentID:  "agent-1",
		TestResult: &models.TestResultData{
			Status: "passed",
			Passed: 20,
		},
		Coverage: coveragePtr(90.0),
		Language: "python",
	}
}

func TestVerifyPasses(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	ev := v.Collect(passingInput())

	assert.True(t, v.Verify(ev))
	assert.True(t, ev.Verified)
	assert.Empty(t, ev.VerificationErrors)
}

func TestVerifyCoverageBoundary(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())

	in := passingInput()
	in.Coverage = coveragePtr(85.0)
	ev := v.Collect(in)
	assert.True(t, v.Verify(ev), "coverage exactly at the minimum passes")

	in.Coverage = coveragePtr(84.9)
	ev = v.Collect(in)
	assert.False(t, v.Verify(ev))
	require.Len(t, ev.VerificationErrors, 1)
	assert.Contains(t, ev.VerificationErrors[0], "below minimum")
}

func TestVerifyMissingCoverage(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	in.Coverage = nil
	ev := v.Collect(in)

	assert.False(t, v.Verify(ev))
	require.Len(t, ev.VerificationErrors, 1)
	assert.Contains(t, ev.VerificationErrors[0], "not collected")

	cfg := config.DefaultEvidenceConfig()
	cfg.RequireCoverage = false
	relaxed := NewVerifier(cfg)
	ev = relaxed.Collect(in)
	assert.True(t, relaxed.Verify(ev))
}

func TestVerifyPassRate(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	in.TestResult = &models.TestResultData{Status: "failed", Passed: 19, Failed: 1}
	ev := v.Collect(in)

	assert.False(t, v.Verify(ev))
	require.Len(t, ev.VerificationErrors, 1)
	assert.Contains(t, ev.VerificationErrors[0], "pass rate")
}

func TestVerifySkippedTests(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	in.TestResult = &models.TestResultData{Status: "passed", Passed: 10, Skipped: 2}
	ev := v.Collect(in)

	assert.False(t, v.Verify(ev))
	assert.Contains(t, ev.VerificationErrors[0], "skipped")

	cfg := config.DefaultEvidenceConfig()
	cfg.AllowSkippedTests = true
	relaxed := NewVerifier(cfg)
	ev = relaxed.Collect(in)
	assert.True(t, relaxed.Verify(ev))
}

func TestVerifySkipViolations(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	in.SkipViolations = []models.SkipViolation{
		{File: "test_a.py", Line: 3, Marker: "@pytest.mark.skip", Level: "error"},
		{File: "test_b.py", Line: 9, Marker: "@pytest.mark.skipif", Level: "warning"},
	}
	ev := v.Collect(in)

	assert.False(t, v.Verify(ev))
	assert.Len(t, ev.VerificationErrors, 2, "one error per violation")
}

func TestVerifyNoTestsWithDefaults(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	ev := v.Collect(CollectInput{TaskID: "task-1", AgentID: "agent-1"})

	// Zero executed tests count as a 100% pass rate; only the missing
	// coverage blocks verification under the defaults.
	assert.False(t, v.Verify(ev))
	require.Len(t, ev.VerificationErrors, 1)
	assert.Contains(t, ev.VerificationErrors[0], "coverage")
}

func TestGenerateReportDeterministic(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	in.TestResult = &models.TestResultData{Status: "failed", Passed: 8, Failed: 2}
	in.Coverage = coveragePtr(70.0)
	ev := v.Collect(in)
	v.Verify(ev)

	first := GenerateReport(ev)
	second := GenerateReport(ev)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Evidence verification FAILED for task task-1")
	assert.Contains(t, first, "8 passed, 2 failed")
	assert.Contains(t, first, "Coverage: 70.0%")
}

func TestGenerateReportTruncatesViolations(t *testing.T) {
	v := NewVerifier(config.DefaultEvidenceConfig())
	in := passingInput()
	for i := 0; i < 14; i++ {
		in.SkipViolations = append(in.SkipViolations, models.SkipViolation{
			File: fmt.Sprintf("test_%d.py", i), Line: 1, Marker: "@pytest.mark.skip",
		})
	}
	ev := v.Collect(in)
	v.Verify(ev)

	report := GenerateReport(ev)
	assert.Contains(t, report, "... 4 more")
	assert.Equal(t, reportViolationCap, strings.Count(report, "  - test_"))
}
