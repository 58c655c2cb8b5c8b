// CodeFRAME orchestration server — provides the HTTP API, manages the task
// queue workers, and drives worker agents through execution, quality gates,
// and evidence-based completion.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeframe-hq/codeframe/pkg/agent"
	"github.com/codeframe-hq/codeframe/pkg/api"
	"github.com/codeframe-hq/codeframe/pkg/blocker"
	"github.com/codeframe-hq/codeframe/pkg/cleanup"
	"github.com/codeframe-hq/codeframe/pkg/config"
	"github.com/codeframe-hq/codeframe/pkg/contextmgr"
	"github.com/codeframe-hq/codeframe/pkg/database"
	"github.com/codeframe-hq/codeframe/pkg/evidence"
	"github.com/codeframe-hq/codeframe/pkg/gates"
	"github.com/codeframe-hq/codeframe/pkg/llm"
	"github.com/codeframe-hq/codeframe/pkg/masking"
	"github.com/codeframe-hq/codeframe/pkg/maturity"
	"github.com/codeframe-hq/codeframe/pkg/queue"
	"github.com/codeframe-hq/codeframe/pkg/services"
	"github.com/codeframe-hq/codeframe/pkg/tokens"
	"github.com/codeframe-hq/codeframe/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveNodeID determines the node identifier for multi-replica
// coordination. Priority: NODE_ID env > HOSTNAME env > "local".
func resolveNodeID() string {
	if id := os.Getenv("NODE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	}

	nodeID := resolveNodeID()
	slog.Info("Starting CodeFRAME",
		"version", version.Full(),
		"node_id", nodeID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load(*configDir)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. LLM provider and gateway
	provider, err := llm.NewAnthropicProvider(cfg.LLM.APIKey)
	if err != nil {
		slog.Error("Failed to initialize LLM provider",
			"api_key", masking.MaskCredential(cfg.LLM.APIKey), "error", err)
		os.Exit(1)
	}
	counter := tokens.NewCounter()
	audit := services.NewAuditService(dbClient.Client, cfg.Security.AuditVerbosity)
	usageService := services.NewTokenUsageService(dbClient.Client)
	gateway := llm.NewGateway(provider, cfg.LLM, cfg.RateLimit, counter, audit, usageService)
	slog.Info("LLM gateway initialized", "provider", provider.Name())

	// 4. Domain services
	taskService := services.NewTaskService(dbClient.Client)
	agentService := services.NewAgentService(dbClient.Client)
	blockerRegistry := blocker.NewRegistry(dbClient.Client, cfg.RateLimit)
	contextManager := contextmgr.NewManager(dbClient.Client, counter)
	assessor := maturity.NewAssessor(dbClient.Client, agentService, audit)
	tracker := maturity.NewTracker()
	verifier := evidence.NewVerifier(cfg.Evidence)
	reviewer := gates.NewLLMReviewer(gateway, cfg.LLM.DefaultModel)
	pipeline := gates.NewPipeline(dbClient.Client, cfg.Gates, cfg.Security, reviewer)
	slog.Info("Services initialized")

	// 5. Worker pool: each pool worker orchestrates its own worker agent
	factory := func(agentID string) queue.TaskExecutor {
		return queue.NewAgentExecutor(agent.NewWorker(agentID, agent.Deps{
			Client:   dbClient.Client,
			LLM:      cfg.LLM,
			Gateway:  gateway,
			Tasks:    taskService,
			Pipeline: pipeline,
			Verifier: verifier,
			Blockers: blockerRegistry,
			Contexts: contextManager,
			Assessor: assessor,
			Tracker:  tracker,
		}))
	}
	pool := queue.NewPool(nodeID, dbClient.Client, taskService, cfg.Queue, factory)
	pool.Start(ctx)

	// 6. Retention cleanup loop
	cleanupService := cleanup.NewService(cfg.Retention, audit, blockerRegistry)
	cleanupService.Start(ctx)
	defer cleanupService.Stop()

	// 7. HTTP server
	server := api.NewServer(dbClient, taskService, agentService, blockerRegistry, assessor, pool, cfg.API)
	httpServer := &http.Server{
		Addr:              cfg.API.ListenAddr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("CodeFRAME started successfully",
		"node_id", nodeID,
		"workers", cfg.Queue.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: drain workers first, then the HTTP server
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded with tasks still in flight")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
