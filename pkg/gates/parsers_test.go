package gates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTestOutputPytest(t *testing.T) {
	out := "....F\n==== 42 passed, 2 failed, 1 skipped in 3.21s ===="
	counts := parseTestOutput(out)
	assert.Equal(t, 42, counts.Passed)
	assert.Equal(t, 2, counts.Failed)
	assert.Equal(t, 1, counts.Skipped)
	assert.Equal(t, "42 passed, 2 failed, 1 skipped", counts.Summary)
}

func TestParseTestOutputPassedOnly(t *testing.T) {
	counts := parseTestOutput("17 passed in 0.5s")
	assert.Equal(t, 17, counts.Passed)
	assert.Zero(t, counts.Failed)
	assert.Equal(t, "17 passed", counts.Summary)
}

func TestParseTestOutputUnknown(t *testing.T) {
	counts := parseTestOutput("some completely unrelated output")
	assert.Equal(t, "Unknown", counts.Summary)
	assert.Zero(t, counts.Passed)
	assert.Zero(t, counts.Failed)
}

func TestParseCoverageFormats(t *testing.T) {
	cases := map[string]struct {
		output string
		want   float64
	}{
		"pytest-cov": {"TOTAL                       120     18    85%", 85},
		"go test":    {"ok   example.com/pkg  0.01s  coverage: 91.4% of statements", 91.4},
		"jest":       {"All files          |   87.5 |    80.0 |", 87.5},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			pct := parseCoverage(tc.output)
			require.NotNil(t, pct)
			assert.InDelta(t, tc.want, *pct, 1e-9)
		})
	}
}

func TestParseCoverageAbsent(t *testing.T) {
	assert.Nil(t, parseCoverage("no coverage data here"))
}

func TestCountTypeErrors(t *testing.T) {
	out := "main.py:3: error: Incompatible types\nmain.py:9: error: Name not defined\n"
	assert.Equal(t, 2, countTypeErrors(out))

	tsOut := "src/app.ts(3,1): error TS2322: Type 'string' is not assignable.\n"
	assert.Equal(t, 1, countTypeErrors(tsOut))

	assert.Zero(t, countTypeErrors("all good"))
}

func TestFirstLines(t *testing.T) {
	assert.Equal(t, "a\nb", firstLines("a\nb\nc\nd", 2))
	assert.Equal(t, "a", firstLines("a", 3))
}
