package config

import "time"

// QueueConfig contains task queue and worker pool configuration.
// These values control how pending tasks are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and processes tasks.
	WorkerCount int `yaml:"worker_count"`

	// PollInterval is the base interval for checking pending tasks.
	PollInterval time.Duration `yaml:"poll_interval"`

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// TaskTimeout is the maximum time a task can be processed end to end.
	TaskTimeout time.Duration `yaml:"task_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active tasks
	// to complete during shutdown.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             3,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             30 * time.Minute,
		GracefulShutdownTimeout: 30 * time.Minute,
	}
}
