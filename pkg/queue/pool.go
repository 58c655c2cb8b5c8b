package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/codeframe-hq/codeframe/ent"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

// PoolHealth is the pool's aggregate health snapshot.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	NodeID        string         `json:"node_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	ActiveTasks   int            `json:"active_tasks"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// Pool manages the queue workers. Each worker carries its own agent identity
// so every in-flight task has exactly one owning agent.
type Pool struct {
	nodeID   string
	client   *ent.Client
	tasks    *services.TaskService
	config   *config.QueueConfig
	factory  ExecutorFactory
	workers  []*Worker
	stopOnce sync.Once
	started  bool

	// Task cancel registry: task_id → cancel function
	mu          sync.RWMutex
	activeTasks map[string]context.CancelFunc
}

// NewPool creates a worker pool.
func NewPool(nodeID string, client *ent.Client, tasks *services.TaskService, cfg *config.QueueConfig, factory ExecutorFactory) *Pool {
	return &Pool{
		nodeID:      nodeID,
		client:      client,
		tasks:       tasks,
		config:      cfg,
		factory:     factory,
		workers:     make([]*Worker, 0, cfg.WorkerCount),
		activeTasks: make(map[string]context.CancelFunc),
	}
}

// Start spawns the worker goroutines. Safe to call more than once; repeats
// are no-ops.
func (p *Pool) Start(ctx context.Context) {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "node_id", p.nodeID)
		return
	}
	p.started = true

	slog.Info("Starting worker pool", "node_id", p.nodeID, "worker_count", p.config.WorkerCount)

	agents := services.NewAgentService(p.client)
	for i := 0; i < p.config.WorkerCount; i++ {
		agentID := fmt.Sprintf("%s-agent-%d", p.nodeID, i)
		worker := NewWorker(agentID, p.tasks, agents, p.config, p.factory(agentID), p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
}

// Stop signals all workers to stop and waits for in-flight tasks to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		slog.Info("Stopping worker pool gracefully")

		if active := p.activeTaskIDs(); len(active) > 0 {
			slog.Info("Waiting for active tasks to complete",
				"count", len(active), "task_ids", active)
		}

		for _, worker := range p.workers {
			worker.Stop()
		}

		slog.Info("Worker pool stopped gracefully")
	})
}

// RegisterTask stores a cancel function for externally triggered cancellation.
func (p *Pool) RegisterTask(taskID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeTasks[taskID] = cancel
}

// UnregisterTask removes the cancel function when processing ends.
func (p *Pool) UnregisterTask(taskID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeTasks, taskID)
}

// CancelTask cancels a task running on this node. Returns whether the task
// was found here.
func (p *Pool) CancelTask(taskID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeTasks[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health reports pool health including queue depth.
func (p *Pool) Health(ctx context.Context) *PoolHealth {
	queueDepth, err := p.client.Task.Query().
		Where(enttask.StatusEQ(enttask.StatusPending)).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to query queue depth for health check",
			"node_id", p.nodeID, "error", err)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		workerStats[i] = worker.Health()
		if workerStats[i].Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	p.mu.RLock()
	activeTasks := len(p.activeTasks)
	p.mu.RUnlock()

	health := &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && err == nil,
		DBReachable:   err == nil,
		NodeID:        p.nodeID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		ActiveTasks:   activeTasks,
		WorkerStats:   workerStats,
	}
	if err != nil {
		health.DBError = fmt.Sprintf("queue depth query failed: %v", err)
	}
	return health
}

func (p *Pool) activeTaskIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeTasks))
	for id := range p.activeTasks {
		ids = append(ids, id)
	}
	return ids
}
