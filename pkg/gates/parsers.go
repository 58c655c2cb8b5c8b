package gates

import (
	"regexp"
	"strconv"
	"strings"
)

// Output parsers are defensive by construction: they match with regexes,
// degrade to an "Unknown" summary instead of failing, and never assume a
// particular tool version's exact format.

var (
	passedRe  = regexp.MustCompile(`(\d+)\s+passed`)
	failedRe  = regexp.MustCompile(`(\d+)\s+failed`)
	skippedRe = regexp.MustCompile(`(\d+)\s+skipped`)
	errorsRe  = regexp.MustCompile(`(\d+)\s+error(s)?\b`)

	// pytest-cov "TOTAL ... NN%", go "coverage: NN.N% of statements",
	// jest "All files | NN.NN |"
	coverageTotalRe = regexp.MustCompile(`TOTAL\s+.*?(\d+(?:\.\d+)?)%`)
	coverageGoRe    = regexp.MustCompile(`coverage:\s+(\d+(?:\.\d+)?)%\s+of\s+statements`)
	coverageJestRe  = regexp.MustCompile(`All files\s*\|\s*(\d+(?:\.\d+)?)`)

	typeErrorRe = regexp.MustCompile(`(?m)(error:|error TS\d+)`)
)

// testCounts is the parsed summary of a test-runner invocation.
type testCounts struct {
	Passed  int
	Failed  int
	Errors  int
	Skipped int
	Summary string
}

// parseTestOutput extracts pass/fail/skip counts from runner output. When no
// recognizable summary line exists, counts stay zero and the summary reads
// "Unknown".
func parseTestOutput(output string) testCounts {
	counts := testCounts{Summary: "Unknown"}
	matched := false

	if m := passedRe.FindStringSubmatch(output); m != nil {
		counts.Passed, _ = strconv.Atoi(m[1])
		matched = true
	}
	if m := failedRe.FindStringSubmatch(output); m != nil {
		counts.Failed, _ = strconv.Atoi(m[1])
		matched = true
	}
	if m := skippedRe.FindStringSubmatch(output); m != nil {
		counts.Skipped, _ = strconv.Atoi(m[1])
		matched = true
	}
	if m := errorsRe.FindStringSubmatch(output); m != nil {
		counts.Errors, _ = strconv.Atoi(m[1])
		matched = true
	}

	if matched {
		var parts []string
		parts = append(parts, strconv.Itoa(counts.Passed)+" passed")
		if counts.Failed > 0 {
			parts = append(parts, strconv.Itoa(counts.Failed)+" failed")
		}
		if counts.Skipped > 0 {
			parts = append(parts, strconv.Itoa(counts.Skipped)+" skipped")
		}
		counts.Summary = strings.Join(parts, ", ")
	}
	return counts
}

// parseCoverage extracts a coverage percentage from tool output, trying the
// pytest-cov, go test, and jest formats in order. Returns nil when no format
// matches.
func parseCoverage(output string) *float64 {
	for _, re := range []*regexp.Regexp{coverageTotalRe, coverageGoRe, coverageJestRe} {
		if m := re.FindStringSubmatch(output); m != nil {
			if pct, err := strconv.ParseFloat(m[1], 64); err == nil {
				return &pct
			}
		}
	}
	return nil
}

// countTypeErrors counts compiler/checker error markers ("error:" and
// "error TSnnnn") in type-checker output.
func countTypeErrors(output string) int {
	return len(typeErrorRe.FindAllString(output, -1))
}

// firstLines returns up to n lines of s, for failure details in blockers.
func firstLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
