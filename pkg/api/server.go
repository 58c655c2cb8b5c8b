// Package api exposes the HTTP surface: thin gin handlers over the core
// services. Handlers validate input, delegate, and translate errors; no
// orchestration logic lives here.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	entblocker "github.com/codeframe-hq/codeframe/ent/blocker"
	enttask "github.com/codeframe-hq/codeframe/ent/task"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/database"
	"github.com/codeframe-hq/codeframe/pkg/maturity"
	"github.com/codeframe-hq/codeframe/pkg/services"
)

const healthCheckTimeout = 5 * time.Second

// TaskCanceller cancels an in-flight task on this node.
type TaskCanceller interface {
	CancelTask(taskID string) bool
}

// Server is the HTTP API server.
type Server struct {
	db       *database.Client
	tasks    *services.TaskService
	agents   *services.AgentService
	blockers *blocker.Registry
	assessor *maturity.Assessor
	pool     TaskCanceller
	limits   *config.APIConfig
}

// NewServer creates an API server. pool may be nil (cancellation disabled).
func NewServer(db *database.Client, tasks *services.TaskService, agents *services.AgentService, blockers *blocker.Registry, assessor *maturity.Assessor, pool TaskCanceller, limits *config.APIConfig) *Server {
	return &Server{
		db:       db,
		tasks:    tasks,
		agents:   agents,
		blockers: blockers,
		assessor: assessor,
		pool:     pool,
		limits:   limits,
	}
}

// Router builds the gin engine with all routes and middleware.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	v1.Use(clientRateLimit(s.limits))
	{
		v1.POST("/tasks", s.CreateTask)
		v1.GET("/tasks", s.ListTasks)
		v1.GET("/tasks/:id", s.GetTask)
		v1.POST("/tasks/:id/cancel", s.CancelTask)

		v1.GET("/blockers", s.ListBlockers)
		v1.POST("/blockers/:id/resolve", s.ResolveBlocker)

		v1.GET("/agents/:id", s.GetAgent)
		v1.POST("/agents/:id/assess", s.AssessAgent)

		v1.GET("/projects/:id/blockers/metrics", s.BlockerMetrics)
	}
	return router
}

// Health handles GET /health with a DB ping.
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	status, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": status,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": status})
}

// CreateTaskRequest is the body of POST /api/v1/tasks. Priority 0 is the
// most urgent, so the field is a pointer to distinguish "unset" from 0.
type CreateTaskRequest struct {
	ProjectID   string `json:"project_id" binding:"required"`
	TaskNumber  string `json:"task_number" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    *int   `json:"priority"`
}

// CreateTask handles POST /api/v1/tasks.
func (s *Server) CreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	builder := s.db.Task.Create().
		SetID(uuid.NewString()).
		SetProjectID(req.ProjectID).
		SetTaskNumber(req.TaskNumber).
		SetTitle(req.Title).
		SetDescription(req.Description)
	if req.Priority != nil {
		builder = builder.SetPriority(*req.Priority)
	}
	task, err := builder.Save(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

// GetTask handles GET /api/v1/tasks/:id.
func (s *Server) GetTask(c *gin.Context) {
	task, err := s.tasks.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasks handles GET /api/v1/tasks with optional status and project_id
// filters.
func (s *Server) ListTasks(c *gin.Context) {
	query := s.db.Task.Query()
	if status := c.Query("status"); status != "" {
		if err := enttask.StatusValidator(enttask.Status(status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where(enttask.StatusEQ(enttask.Status(status)))
	}
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where(enttask.ProjectIDEQ(projectID))
	}

	tasks, err := query.
		Order(enttask.ByCreatedAt()).
		Limit(200).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CancelTask handles POST /api/v1/tasks/:id/cancel.
func (s *Server) CancelTask(c *gin.Context) {
	if s.pool == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "cancellation not available"})
		return
	}
	if !s.pool.CancelTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task is not running on this node"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelling"})
}

// ListBlockers handles GET /api/v1/blockers with optional project_id and
// status filters.
func (s *Server) ListBlockers(c *gin.Context) {
	query := s.db.Blocker.Query()
	if projectID := c.Query("project_id"); projectID != "" {
		query = query.Where(entblocker.ProjectIDEQ(projectID))
	}
	if status := c.Query("status"); status != "" {
		if err := entblocker.StatusValidator(entblocker.Status(status)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		query = query.Where(entblocker.StatusEQ(entblocker.Status(status)))
	}

	blockers, err := query.
		Order(entblocker.ByCreatedAt()).
		Limit(200).
		All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, blockers)
}

// ResolveBlockerRequest is the body of POST /api/v1/blockers/:id/resolve.
type ResolveBlockerRequest struct {
	Answer string `json:"answer" binding:"required"`
}

// ResolveBlocker handles POST /api/v1/blockers/:id/resolve.
func (s *Server) ResolveBlocker(c *gin.Context) {
	var req ResolveBlockerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolved, err := s.blockers.Resolve(c.Request.Context(), c.Param("id"), req.Answer)
	if err != nil {
		respondError(c, err)
		return
	}
	if !resolved {
		c.JSON(http.StatusConflict, gin.H{"error": "blocker is not pending"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

// GetAgent handles GET /api/v1/agents/:id.
func (s *Server) GetAgent(c *gin.Context) {
	agent, err := s.agents.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, agent)
}

// AssessAgent handles POST /api/v1/agents/:id/assess.
func (s *Server) AssessAgent(c *gin.Context) {
	assessment, err := s.assessor.Assess(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// BlockerMetrics handles GET /api/v1/projects/:id/blockers/metrics.
func (s *Server) BlockerMetrics(c *gin.Context) {
	m, err := s.blockers.ProjectMetrics(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
