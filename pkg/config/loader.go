package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// yamlOverlay mirrors the codeframe.yaml file structure. Every section is
// optional; present values override the builtins.
type yamlOverlay struct {
	RateLimit *RateLimitConfig `yaml:"rate_limit"`
	LLM       *LLMConfig       `yaml:"llm"`
	Evidence  *EvidenceConfig  `yaml:"evidence"`
	Security  *SecurityConfig  `yaml:"security"`
	Gates     *GatesConfig     `yaml:"gates"`
	Queue     *QueueConfig     `yaml:"queue"`
	Retention *RetentionConfig `yaml:"retention"`
	API       *APIConfig       `yaml:"api"`
}

// Load builds the configuration: builtins, then the optional codeframe.yaml
// overlay in configDir, then environment overrides. configDir may be empty
// (env-only operation).
func Load(configDir string) (*Config, error) {
	cfg := &Config{
		configDir: configDir,
		RateLimit: DefaultRateLimitConfig(),
		LLM:       DefaultLLMConfig(),
		Evidence:  DefaultEvidenceConfig(),
		Security:  DefaultSecurityConfig(),
		Gates:     DefaultGatesConfig(),
		Queue:     DefaultQueueConfig(),
		Retention: DefaultRetentionConfig(),
		API:       DefaultAPIConfig(),
	}

	if configDir != "" {
		if err := applyYAMLOverlay(cfg, filepath.Join(configDir, "codeframe.yaml")); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	slog.Info("Configuration loaded",
		"config_dir", configDir,
		"deployment_mode", cfg.Security.DeploymentMode,
		"allowed_models", len(cfg.LLM.AllowedModels),
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

// applyYAMLOverlay merges codeframe.yaml over the builtins. A missing file is
// not an error; a malformed one is.
func applyYAMLOverlay(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var overlay yamlOverlay
	if err := yaml.Unmarshal(ExpandEnv(data), &overlay); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	merge := func(dst, src interface{}) error {
		return mergo.Merge(dst, src, mergo.WithOverride)
	}
	if overlay.RateLimit != nil {
		if err := merge(cfg.RateLimit, overlay.RateLimit); err != nil {
			return fmt.Errorf("failed to merge rate_limit: %w", err)
		}
	}
	if overlay.LLM != nil {
		if err := merge(cfg.LLM, overlay.LLM); err != nil {
			return fmt.Errorf("failed to merge llm: %w", err)
		}
	}
	if overlay.Evidence != nil {
		if err := merge(cfg.Evidence, overlay.Evidence); err != nil {
			return fmt.Errorf("failed to merge evidence: %w", err)
		}
	}
	if overlay.Security != nil {
		if err := merge(cfg.Security, overlay.Security); err != nil {
			return fmt.Errorf("failed to merge security: %w", err)
		}
	}
	if overlay.Gates != nil {
		if err := merge(cfg.Gates, overlay.Gates); err != nil {
			return fmt.Errorf("failed to merge gates: %w", err)
		}
	}
	if overlay.Queue != nil {
		if err := merge(cfg.Queue, overlay.Queue); err != nil {
			return fmt.Errorf("failed to merge queue: %w", err)
		}
	}
	if overlay.Retention != nil {
		if err := merge(cfg.Retention, overlay.Retention); err != nil {
			return fmt.Errorf("failed to merge retention: %w", err)
		}
	}
	if overlay.API != nil {
		if err := merge(cfg.API, overlay.API); err != nil {
			return fmt.Errorf("failed to merge api: %w", err)
		}
	}
	return nil
}

// applyEnvOverrides applies the documented environment variables. Env wins
// over both builtins and the YAML overlay.
func applyEnvOverrides(cfg *Config) {
	cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")

	if v, ok := envInt("AGENT_RATE_LIMIT"); ok {
		cfg.RateLimit.AgentCallsPerMinute = v
	}
	if v, ok := envFloat("MAX_COST_PER_TASK"); ok {
		cfg.LLM.MaxCostPerTask = v
	}
	if v, ok := envBool("CODEFRAME_REQUIRE_COVERAGE"); ok {
		cfg.Evidence.RequireCoverage = v
	}
	if v, ok := envFloat("CODEFRAME_MIN_COVERAGE"); ok {
		cfg.Evidence.MinCoverage = v
	}
	if v, ok := envBool("CODEFRAME_ALLOW_SKIPPED_TESTS"); ok {
		cfg.Evidence.AllowSkippedTests = v
	}
	if v, ok := envFloat("CODEFRAME_MIN_PASS_RATE"); ok {
		cfg.Evidence.MinPassRate = v
	}
	if v, ok := envBool("CODEFRAME_ENABLE_SKIP_DETECTION"); ok {
		cfg.Gates.SkipDetectionEnabled = v
	}
	if v := os.Getenv("CODEFRAME_DEPLOYMENT_MODE"); v != "" {
		cfg.Security.DeploymentMode = DeploymentMode(v)
	}
	if v := os.Getenv("CODEFRAME_SECURITY_ENFORCEMENT"); v != "" {
		cfg.Security.Enforcement = SecurityEnforcement(v)
	}
	if v := os.Getenv("AUDIT_VERBOSITY"); v != "" {
		cfg.Security.AuditVerbosity = AuditVerbosity(v)
	}
	if v, ok := envInt("CODEFRAME_WORKER_COUNT"); ok {
		cfg.Queue.WorkerCount = v
	}
	if v, ok := envInt("CODEFRAME_AUDIT_RETENTION_DAYS"); ok {
		cfg.Retention.AuditRetentionDays = v
	}
	if v := os.Getenv("CODEFRAME_LISTEN_ADDR"); v != "" {
		cfg.API.ListenAddr = v
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("Ignoring malformed integer environment variable", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring malformed float environment variable", "key", key, "value", raw)
		return 0, false
	}
	return v, true
}

func envBool(key string) (bool, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("Ignoring malformed boolean environment variable", "key", key, "value", raw)
		return false, false
	}
	return v, true
}
