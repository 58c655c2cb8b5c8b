package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeframe-hq/codeframe/ent"
	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/models"
	"github.com/codeframe-hq/codeframe/pkg/services"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

type stubExecutor struct {
	mu     sync.Mutex
	seen   []string
	result *ExecutionResult
}

func (s *stubExecutor) Execute(_ context.Context, task *ent.Task) *ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, task.ID)
	if s.result != nil {
		return s.result
	}
	return &ExecutionResult{Status: models.CompleteStatusCompleted}
}

func (s *stubExecutor) processed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seen...)
}

func setupQueue(t *testing.T) (*ent.Client, *services.TaskService, string) {
	t.Helper()
	client := testdb.NewTestClient(t)

	projectID := uuid.NewString()
	_, err := client.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(context.Background())
	require.NoError(t, err)

	return client.Client, services.NewTaskService(client.Client), projectID
}

func createPending(t *testing.T, client *ent.Client, projectID string, priority int) *ent.Task {
	t.Helper()
	task, err := client.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(projectID).
		SetTaskNumber(uuid.NewString()[:8]).
		SetTitle("pending work").
		SetPriority(priority).
		Save(context.Background())
	require.NoError(t, err)
	return task
}

func newTestWorker(client *ent.Client, tasks *services.TaskService, executor TaskExecutor) (*Worker, *Pool) {
	cfg := &config.QueueConfig{
		WorkerCount:  1,
		PollInterval: 10 * time.Millisecond,
		TaskTimeout:  time.Minute,
	}
	pool := &Pool{activeTasks: make(map[string]context.CancelFunc)}
	var agents *services.AgentService
	if client != nil {
		agents = services.NewAgentService(client)
	}
	return NewWorker("agent-1", tasks, agents, cfg, executor, pool), pool
}

func TestPollAndProcessClaimsAndExecutes(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	ctx := context.Background()
	task := createPending(t, client, projectID, 1)

	executor := &stubExecutor{}
	worker, _ := newTestWorker(client, tasks, executor)

	require.NoError(t, worker.pollAndProcess(ctx))
	assert.Equal(t, []string{task.ID}, executor.processed())

	// The worker owns claim and start; the executor owns everything after.
	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusInProgress, got.Status)
	require.NotNil(t, got.AssignedTo)
	assert.Equal(t, "agent-1", *got.AssignedTo)
	assert.Equal(t, 1, worker.Health().TasksProcessed)
}

func TestPollAndProcessMostUrgentPriorityFirst(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	createPending(t, client, projectID, 4)
	urgent := createPending(t, client, projectID, 0)

	executor := &stubExecutor{}
	worker, _ := newTestWorker(client, tasks, executor)

	// Priority 0 is the most urgent; lower values are claimed first.
	require.NoError(t, worker.pollAndProcess(context.Background()))
	assert.Equal(t, []string{urgent.ID}, executor.processed())
}

func TestPollAndProcessRegistersAgentIdentity(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	ctx := context.Background()
	createPending(t, client, projectID, 1)

	worker, _ := newTestWorker(client, tasks, &stubExecutor{})
	require.NoError(t, worker.pollAndProcess(ctx))

	// The worker's agent identity is persisted, so assessments and status
	// transitions after completion have a row to land on.
	agent, err := client.Agent.Get(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, entagent.AgentTypeBackend, agent.AgentType)
	assert.Equal(t, entagent.MaturityD1, agent.Maturity)
	assert.Equal(t, entagent.StatusIdle, agent.Status, "back to idle once processing ends")
}

func TestPollAndProcessMarksFailedOutcome(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	ctx := context.Background()
	task := createPending(t, client, projectID, 1)

	executor := &stubExecutor{result: &ExecutionResult{
		Status: models.CompleteStatusFailed,
		Error:  errors.New("provider unavailable"),
	}}
	worker, _ := newTestWorker(client, tasks, executor)

	require.NoError(t, worker.pollAndProcess(ctx))

	got, err := client.Task.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatusFailed, got.Status)
}

func TestPollAndProcessEmptyQueue(t *testing.T) {
	client, tasks, _ := setupQueue(t)

	worker, _ := newTestWorker(client, tasks, &stubExecutor{})
	err := worker.pollAndProcess(context.Background())
	require.ErrorIs(t, err, ErrNoTasksAvailable)
}

func TestClaimLostToOtherAgent(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	ctx := context.Background()
	task := createPending(t, client, projectID, 1)

	// Another agent wins the race between the query and the claim.
	claimed, err := tasks.Claim(ctx, task.ID, "agent-2")
	require.NoError(t, err)
	require.True(t, claimed)

	worker, _ := newTestWorker(client, tasks, &stubExecutor{})
	_, err = worker.claimNextTask(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrClaimLost) || errors.Is(err, ErrNoTasksAvailable))
}

func TestPoolProcessesTasksAndStopsGracefully(t *testing.T) {
	client, tasks, projectID := setupQueue(t)
	task := createPending(t, client, projectID, 1)

	executor := &stubExecutor{}
	cfg := &config.QueueConfig{
		WorkerCount:             2,
		PollInterval:            10 * time.Millisecond,
		PollIntervalJitter:      5 * time.Millisecond,
		TaskTimeout:             time.Minute,
		GracefulShutdownTimeout: time.Second,
	}
	pool := NewPool("node-1", client, tasks, cfg, func(string) TaskExecutor { return executor })

	pool.Start(context.Background())
	defer pool.Stop()

	require.Eventually(t, func() bool {
		return len(executor.processed()) == 1
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, []string{task.ID}, executor.processed())

	health := pool.Health(context.Background())
	assert.True(t, health.IsHealthy)
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Zero(t, health.QueueDepth)
}

func TestPollIntervalJitterBounds(t *testing.T) {
	worker, _ := newTestWorker(nil, nil, &stubExecutor{})
	worker.config.PollIntervalJitter = 5 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := worker.pollInterval()
		assert.GreaterOrEqual(t, d, 5*time.Millisecond)
		assert.LessOrEqual(t, d, 15*time.Millisecond)
	}
}

func TestCancelTaskRegistry(t *testing.T) {
	pool := &Pool{activeTasks: make(map[string]context.CancelFunc)}

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterTask("t1", cancel)

	assert.True(t, pool.CancelTask("t1"))
	assert.Error(t, ctx.Err())
	assert.False(t, pool.CancelTask("t2"))

	pool.UnregisterTask("t1")
	assert.False(t, pool.CancelTask("t1"))
}
