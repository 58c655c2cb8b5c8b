package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	entagent "github.com/codeframe-hq/codeframe/ent/agent"
	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/database"
	"github.com/codeframe-hq/codeframe/pkg/maturity"
	"github.com/codeframe-hq/codeframe/pkg/services"
	testdb "github.com/codeframe-hq/codeframe/test/database"
)

type cancelRecorder struct{ cancelled []string }

func (r *cancelRecorder) CancelTask(taskID string) bool {
	r.cancelled = append(r.cancelled, taskID)
	return taskID == "running-task"
}

type apiFixture struct {
	router   *gin.Engine
	db       *database.Client
	registry *blocker.Registry
	project  string
}

func setupServer(t *testing.T, apiCfg *config.APIConfig) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testdb.NewTestClient(t)

	projectID := uuid.NewString()
	_, err := db.Project.Create().
		SetID(projectID).
		SetName("demo").
		SetWorkspacePath("/tmp/demo").
		Save(context.Background())
	require.NoError(t, err)

	if apiCfg == nil {
		apiCfg = config.DefaultAPIConfig()
	}
	agents := services.NewAgentService(db.Client)
	audit := services.NewAuditService(db.Client, config.AuditVerbosityLow)
	registry := blocker.NewRegistry(db.Client, config.DefaultRateLimitConfig())
	server := NewServer(
		db,
		services.NewTaskService(db.Client),
		agents,
		registry,
		maturity.NewAssessor(db.Client, agents, audit),
		&cancelRecorder{},
		apiCfg,
	)
	return &apiFixture{router: server.Router(), db: db, registry: registry, project: projectID}
}

func (f *apiFixture) request(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(clientIDHeader, "test-client")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestSecurityHeaders(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodGet, "/health", "")
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodPost, "/api/v1/tasks",
		`{"project_id":"`+f.project+`","task_number":"1.1","title":"implement parser","priority":3}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	w = f.request(t, http.MethodGet, "/api/v1/tasks/"+created.ID, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "implement parser")

	w = f.request(t, http.MethodGet, "/api/v1/tasks?status=pending", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.ID)

	w = f.request(t, http.MethodGet, "/api/v1/tasks?status=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTaskPriorityZeroIsMostUrgent(t *testing.T) {
	f := setupServer(t, nil)

	var created struct {
		ID       string `json:"id"`
		Priority int    `json:"priority"`
	}

	w := f.request(t, http.MethodPost, "/api/v1/tasks",
		`{"project_id":"`+f.project+`","task_number":"0.1","title":"hotfix","priority":0}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 0, created.Priority)

	// Omitted priority keeps the schema default
	w = f.request(t, http.MethodPost, "/api/v1/tasks",
		`{"project_id":"`+f.project+`","task_number":"0.2","title":"routine"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 2, created.Priority)
}

func TestGetMissingTaskIs404(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodGet, "/api/v1/tasks/"+uuid.NewString(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTaskValidation(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodPost, "/api/v1/tasks", `{"title":"missing fields"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveBlockerEndpoint(t *testing.T) {
	f := setupServer(t, nil)
	ctx := context.Background()

	b, err := f.registry.Create(ctx, blocker.CreateInput{
		AgentID:   "agent-1",
		ProjectID: f.project,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "which database?",
	})
	require.NoError(t, err)

	w := f.request(t, http.MethodPost, "/api/v1/blockers/"+b.ID+"/resolve", `{"answer":"postgres"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	got, err := f.db.Blocker.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entblocker.StatusRESOLVED, got.Status)

	// Already resolved
	w = f.request(t, http.MethodPost, "/api/v1/blockers/"+b.ID+"/resolve", `{"answer":"postgres"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestListBlockersFilters(t *testing.T) {
	f := setupServer(t, nil)
	ctx := context.Background()

	_, err := f.registry.Create(ctx, blocker.CreateInput{
		AgentID:   "agent-1",
		ProjectID: f.project,
		Type:      entblocker.BlockerTypeASYNC,
		Question:  "q",
	})
	require.NoError(t, err)

	w := f.request(t, http.MethodGet, "/api/v1/blockers?project_id="+f.project+"&status=PENDING", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"q"`)

	w = f.request(t, http.MethodGet, "/api/v1/blockers?status=nope", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAssessAgentEndpoint(t *testing.T) {
	f := setupServer(t, nil)
	ctx := context.Background()

	agentID := uuid.NewString()
	_, err := f.db.Agent.Create().
		SetID(agentID).
		SetAgentType(entagent.AgentTypeBackend).
		Save(ctx)
	require.NoError(t, err)

	w := f.request(t, http.MethodPost, "/api/v1/agents/"+agentID+"/assess", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "D1")

	w = f.request(t, http.MethodGet, "/api/v1/agents/"+agentID, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelTaskEndpoint(t *testing.T) {
	f := setupServer(t, nil)

	w := f.request(t, http.MethodPost, "/api/v1/tasks/running-task/cancel", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.request(t, http.MethodPost, "/api/v1/tasks/not-here/cancel", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAnonymousClientsShareOneBucket(t *testing.T) {
	f := setupServer(t, &config.APIConfig{
		ListenAddr:                 ":0",
		ClientRequestsPerSecond:    100,
		ClientBurst:                100,
		AnonymousRequestsPerSecond: 0.001,
		AnonymousBurst:             1,
	})

	anon := func() int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks", nil)
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, anon())
	assert.Equal(t, http.StatusTooManyRequests, anon(), "the shared anonymous bucket is exhausted")

	// Identified clients have their own budget
	w := f.request(t, http.MethodGet, "/api/v1/tasks", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
