// Package evidence implements the completion-evidence protocol: collecting
// what the quality pipeline observed into a structured record, verifying it
// against the configured rules, and rendering a deterministic report for
// blockers.
package evidence

import (
	"fmt"
	"time"

	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/models"
)

// reportViolationCap bounds how many skip violations a report lists.
const reportViolationCap = 10

// Verifier applies the evidence rules.
type Verifier struct {
	cfg *config.EvidenceConfig

	// Injectable for tests
	now func() time.Time
}

// NewVerifier creates a verifier with the given rule configuration.
func NewVerifier(cfg *config.EvidenceConfig) *Verifier {
	return &Verifier{cfg: cfg, now: time.Now}
}

// CollectInput carries what the pipeline observed for one completion attempt.
type CollectInput struct {
	TaskID          string
	AgentID         string
	TaskDescription string
	TestResult      *models.TestResultData
	SkipViolations  []models.SkipViolation
	Coverage        *float64
	Language        string
	Framework       string
}

// Collect assembles an unverified evidence record. A missing test result is
// recorded as a zero-tests pass; the verification rules decide whether that
// is acceptable.
func (v *Verifier) Collect(in CollectInput) *models.EvidenceData {
	testResult := in.TestResult
	if testResult == nil {
		testResult = models.NoTestsResult()
	}
	return &models.EvidenceData{
		TaskID:          in.TaskID,
		AgentID:         in.AgentID,
		TaskDescription: in.TaskDescription,
		TestResult:      testResult,
		SkipViolations:  in.SkipViolations,
		Coverage:        in.Coverage,
		Language:        in.Language,
		Framework:       in.Framework,
		Timestamp:       v.now(),
	}
}

// Verify applies the configured rules, setting Verified and populating
// VerificationErrors. Returns the verdict.
func (v *Verifier) Verify(ev *models.EvidenceData) bool {
	var errs []string

	passRate := ev.TestResult.PassRate()
	if passRate < v.cfg.MinPassRate {
		errs = append(errs, fmt.Sprintf(
			"test pass rate %.1f%% below minimum %.1f%%", passRate, v.cfg.MinPassRate))
	}

	if v.cfg.RequireCoverage {
		switch {
		case ev.Coverage == nil:
			errs = append(errs, fmt.Sprintf(
				"coverage required (minimum %.1f%%) but not collected", v.cfg.MinCoverage))
		case *ev.Coverage < v.cfg.MinCoverage:
			errs = append(errs, fmt.Sprintf(
				"coverage %.1f%% below minimum %.1f%%", *ev.Coverage, v.cfg.MinCoverage))
		}
	}

	if !v.cfg.AllowSkippedTests && ev.TestResult.Skipped > 0 {
		errs = append(errs, fmt.Sprintf(
			"%d skipped test(s) present and skipped tests are not allowed", ev.TestResult.Skipped))
	}

	for _, violation := range ev.SkipViolations {
		errs = append(errs, fmt.Sprintf(
			"skip violation in %s:%d (%s)", violation.File, violation.Line, violation.Marker))
	}

	ev.Verified = len(errs) == 0
	ev.VerificationErrors = errs
	return ev.Verified
}

// GenerateReport renders a deterministic multi-line description of the
// evidence, suitable for inclusion in a blocker question. Skip violations
// are truncated to 10 with an "N more" marker.
func GenerateReport(ev *models.EvidenceData) string {
	verdict := "FAILED"
	if ev.Verified {
		verdict = "PASSED"
	}

	report := fmt.Sprintf("Evidence verification %s for task %s\n", verdict, ev.TaskID)
	report += fmt.Sprintf("Tests: %d passed, %d failed, %d skipped (pass rate %.1f%%)\n",
		ev.TestResult.Passed, ev.TestResult.Failed, ev.TestResult.Skipped, ev.TestResult.PassRate())

	if ev.Coverage != nil {
		report += fmt.Sprintf("Coverage: %.1f%%\n", *ev.Coverage)
	} else {
		report += "Coverage: not collected\n"
	}

	if len(ev.VerificationErrors) > 0 {
		report += "Verification errors:\n"
		for _, e := range ev.VerificationErrors {
			report += fmt.Sprintf("  - %s\n", e)
		}
	}

	if len(ev.SkipViolations) > 0 {
		report += "Skip violations:\n"
		shown := ev.SkipViolations
		if len(shown) > reportViolationCap {
			shown = shown[:reportViolationCap]
		}
		for _, v := range shown {
			report += fmt.Sprintf("  - %s:%d %s\n", v.File, v.Line, v.Marker)
		}
		if extra := len(ev.SkipViolations) - reportViolationCap; extra > 0 {
			report += fmt.Sprintf("  ... %d more\n", extra)
		}
	}
	return report
}
