package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/codeframe-hq/codeframe/ent"
	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/metrics"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

// WorkerStatus represents the current state of a pool worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID             string       `json:"id"`
	Status         WorkerStatus `json:"status"`
	CurrentTaskID  string       `json:"current_task_id,omitempty"`
	TasksProcessed int          `json:"tasks_processed"`
	LastActivity   time.Time    `json:"last_activity"`
}

// TaskRegistry is the subset of Pool used by Worker for cancellation
// registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// Worker is a single pool worker: it polls for pending tasks, claims one at
// a time under its own agent identity, and runs it through the executor.
type Worker struct {
	agentID    string
	tasks      *services.TaskService
	agents     *services.AgentService
	config     *config.QueueConfig
	executor   TaskExecutor
	pool       TaskRegistry
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	agentReady bool

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// NewWorker creates a pool worker acting as the given agent.
func NewWorker(agentID string, tasks *services.TaskService, agents *services.AgentService, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry) *Worker {
	return &Worker{
		agentID:      agentID,
		tasks:        tasks,
		agents:       agents,
		config:       cfg,
		executor:     executor,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current task to finish.
// It is safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.agentID,
		Status:         w.status,
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("agent_id", w.agentID)
	log.Info("Queue worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Queue worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, queue worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrClaimLost) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

// sleep waits for the duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims the next pending task and runs it to a terminal or
// blocked state.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	if err := w.ensureAgent(ctx); err != nil {
		return fmt.Errorf("failed to register agent %s: %w", w.agentID, err)
	}

	task, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", task.ID, "agent_id", w.agentID)
	log.Info("Task claimed")

	if err := w.tasks.Start(ctx, task.ID, w.agentID); err != nil {
		return fmt.Errorf("failed to start claimed task %s: %w", task.ID, err)
	}

	w.setStatus(WorkerStatusWorking, task.ID)
	w.setAgentStatus(ctx, entagent.StatusWorking)
	defer func() {
		w.setStatus(WorkerStatusIdle, "")
		// Background context: the task context may already be cancelled.
		w.setAgentStatus(context.Background(), entagent.StatusIdle)
	}()

	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	w.pool.RegisterTask(task.ID, cancelTask)
	defer w.pool.UnregisterTask(task.ID)

	result := w.executor.Execute(taskCtx, task)
	if result == nil {
		result = &ExecutionResult{
			Status: models.CompleteStatusFailed,
			Error:  fmt.Errorf("executor returned nil result"),
		}
	}

	// Completion and blocking transitions are owned by the executor; only a
	// failed outcome is settled here. The background context matters: the
	// task context may already be cancelled or expired.
	if result.Status == models.CompleteStatusFailed {
		if err := w.tasks.Fail(context.Background(), task.ID); err != nil {
			log.Error("Failed to mark task failed", "error", err)
			return err
		}
	}

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", result.Status)
	return nil
}

// claimNextTask picks the most urgent pending task (lowest priority value)
// and claims it with a conditional update. Losing the claim race is routine,
// not an error.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	pending, err := w.tasks.PendingTasks(ctx, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending tasks: %w", err)
	}
	if len(pending) == 0 {
		metrics.TasksClaimed.WithLabelValues("empty").Inc()
		return nil, ErrNoTasksAvailable
	}

	task := pending[0]
	claimed, err := w.tasks.Claim(ctx, task.ID, w.agentID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task %s: %w", task.ID, err)
	}
	if !claimed {
		metrics.TasksClaimed.WithLabelValues("lost").Inc()
		return nil, ErrClaimLost
	}
	metrics.TasksClaimed.WithLabelValues("claimed").Inc()
	return task, nil
}

// ensureAgent registers the worker's agent identity on first use so
// completions, assessments, and status transitions have a row to land on.
func (w *Worker) ensureAgent(ctx context.Context) error {
	if w.agentReady || w.agents == nil {
		return nil
	}
	if _, err := w.agents.GetOrCreate(ctx, w.agentID, entagent.AgentTypeBackend); err != nil {
		return err
	}
	w.agentReady = true
	return nil
}

func (w *Worker) setAgentStatus(ctx context.Context, status entagent.Status) {
	if w.agents == nil {
		return
	}
	if err := w.agents.SetStatus(ctx, w.agentID, status); err != nil {
		slog.Warn("Failed to persist agent status",
			"agent_id", w.agentID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter in
// [base - jitter, base + jitter].
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
