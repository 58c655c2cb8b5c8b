package models

// TestResultData is the value form of one test run.
type TestResultData struct {
	Status          string  `json:"status"` // passed, failed, error, timeout, no_tests
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Errors          int     `json:"errors"`
	Skipped         int     `json:"skipped"`
	DurationSeconds float64 `json:"duration_seconds"`
	Output          string  `json:"output,omitempty"`
}

// PassRate returns the pass percentage over executed (non-skipped) tests.
// A run with no executed tests counts as 100% — "no tests" is handled by the
// evidence rules, not the rate.
func (t TestResultData) PassRate() float64 {
	total := t.Passed + t.Failed
	if total == 0 {
		return 100.0
	}
	return float64(t.Passed) / float64(total) * 100.0
}

// NoTestsResult synthesizes the zero-tests "passed" result used when a
// pipeline produced no test data.
func NoTestsResult() *TestResultData {
	return &TestResultData{Status: "no_tests"}
}
