package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "codeframe.yaml"), []byte(content), 0o644))
	return dir
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 85.0, cfg.Evidence.MinCoverage)
	assert.True(t, cfg.Evidence.RequireCoverage)
	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.NotEmpty(t, cfg.LLM.AllowedModels)
}

func TestLoadMissingOverlayIsFine(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
}

func TestYAMLOverlayMergesOverDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
llm:
  default_model: claude-opus-4-1
queue:
  worker_count: 7
api:
  listen_addr: ":9090"
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "claude-opus-4-1", cfg.LLM.DefaultModel)
	assert.Equal(t, 7, cfg.Queue.WorkerCount)
	assert.Equal(t, ":9090", cfg.API.ListenAddr)
	// Untouched sections keep their builtins
	assert.Equal(t, 85.0, cfg.Evidence.MinCoverage)
}

func TestMalformedOverlayFails(t *testing.T) {
	dir := writeConfigFile(t, "llm: [not a mapping")

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "codeframe.yaml")
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	dir := writeConfigFile(t, `
queue:
  worker_count: 7
`)
	t.Setenv("CODEFRAME_WORKER_COUNT", "11")
	t.Setenv("CODEFRAME_LISTEN_ADDR", ":7070")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 11, cfg.Queue.WorkerCount)
	assert.Equal(t, ":7070", cfg.API.ListenAddr)
	assert.Equal(t, "sk-ant-test", cfg.LLM.APIKey)
}

func TestMalformedEnvValueIsIgnored(t *testing.T) {
	t.Setenv("CODEFRAME_WORKER_COUNT", "many")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
}

func TestValidationRejectsOutOfRangeCoverage(t *testing.T) {
	t.Setenv("CODEFRAME_MIN_COVERAGE", "150")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_coverage")
}

func TestProcessCachesAndResets(t *testing.T) {
	ResetForTest()
	t.Cleanup(ResetForTest)

	first, err := Process()
	require.NoError(t, err)

	second, err := Process()
	require.NoError(t, err)
	assert.Same(t, first, second)

	ResetForTest()
	third, err := Process()
	require.NoError(t, err)
	assert.NotSame(t, first, third)
}
