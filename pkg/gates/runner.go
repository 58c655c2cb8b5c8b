// Package gates implements the quality-gate pipeline: lint, type check,
// skip detection, tests, coverage, and code review, run fail-slow with
// aggregated failures.
package gates

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"

	"github.com/codeframe-hq/codeframe/pkg/config"
)

// maxOutputSize caps captured tool output per stream.
const maxOutputSize = 1 << 20

// runResult is the raw outcome of one subprocess tool invocation.
type runResult struct {
	ExitCode    int
	Stdout      string
	Stderr      string
	Duration    time.Duration
	TimedOut    bool
	ToolMissing bool
}

// Output returns stdout with stderr appended, for parsers that scan both.
func (r *runResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	return r.Stdout + "\n" + r.Stderr
}

// runnerFunc executes a tool in the project root. Injectable so pipeline
// tests run without real toolchains installed.
type runnerFunc func(ctx context.Context, projectRoot string, tool config.GateToolConfig) *runResult

// runTool executes one gate tool with a hard timeout. A missing binary is
// reported as ToolMissing, a deadline hit as TimedOut; neither panics or
// returns a Go error because gates convert both to structured outcomes.
func runTool(ctx context.Context, projectRoot string, tool config.GateToolConfig) *runResult {
	result := &runResult{}
	if len(tool.Command) == 0 {
		result.ToolMissing = true
		return result
	}

	if _, err := exec.LookPath(tool.Command[0]); err != nil {
		result.ToolMissing = true
		return result
	}

	execCtx, cancel := context.WithTimeout(ctx, tool.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(execCtx, tool.Command[0], tool.Command[1:]...)
	cmd.Dir = projectRoot
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = truncate(stdout.String(), maxOutputSize)
	result.Stderr = truncate(stderr.String(), maxOutputSize)

	if execCtx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Stderr = err.Error()
		}
	}
	return result
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
