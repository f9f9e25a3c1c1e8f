// Stockdata server — runs the market-data ingestion scheduler over the
// ClickHouse ODS and the arena strategy tournament, fronted by one HTTP API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/api"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/calendar"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/database"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/llm"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ods"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/ratelimit"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store/entstore"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting stockdata",
		"version", version.Full(),
		"http_port", httpPort,
		"config_dir", *configDir)

	// Shutdown is signal driven: cancelling this context drains the HTTP
	// server first, then the arena run loops and ingestion workers.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. PostgreSQL control plane: executions, arenas, stream history
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

	stores := entstore.NewStores(dbClient.Client)

	// 3. ClickHouse data plane: one ODS table per plugin
	chDSN := getEnv("CLICKHOUSE_DSN", "clickhouse://localhost:9000/stockdata")
	conn, err := ods.NewConn(ctx, chDSN)
	if err != nil {
		slog.Error("Failed to connect to ClickHouse", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := conn.Close(); err != nil {
			slog.Error("Error closing ClickHouse connection", "error", err)
		}
	}()
	warehouse := ods.NewWarehouse(conn, stores.SchemaAudits)
	slog.Info("Connected to ClickHouse ODS")

	// 4. Plugin catalog behind the provider client and rate governor
	plugins, err := plugin.Catalog(cfg)
	if err != nil {
		slog.Error("Failed to build plugin catalog", "error", err)
		os.Exit(1)
	}
	if err := ods.EnsureTables(ctx, conn, plugins, stores.SchemaAudits); err != nil {
		slog.Error("Failed to create ODS tables", "error", err)
		os.Exit(1)
	}
	governor := ratelimit.NewGovernor(plugin.Limits(plugins))
	registry, err := plugin.BuildRegistry(plugins, provider.NewClient(cfg.Provider), governor)
	if err != nil {
		slog.Error("Failed to build plugin registry", "error", err)
		os.Exit(1)
	}
	slog.Info("Plugin registry ready", "plugins", len(plugins))

	// 5. Trading calendar over the synced ODS calendar table
	cal := calendar.New(warehouse.Reader, getEnv("EXCHANGE", "SSE"))

	// 6. Ingestion scheduler and worker pool
	sched, err := scheduler.New(scheduler.Deps{
		Config:     cfg.Scheduler,
		Registry:   registry,
		Groups:     cfg.PluginGroups,
		Calendar:   cal,
		Syncer:     warehouse.Sync,
		Loader:     warehouse.Loader,
		Reader:     warehouse.Reader,
		Executions: stores.Executions,
		SubTasks:   stores.SubTasks,
		Settings:   stores.PluginSettings,
	})
	if err != nil {
		slog.Error("Failed to build scheduler", "error", err)
		os.Exit(1)
	}
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	// 7. LLM client, thinking stream and arena manager
	llmClient := llm.NewOpenAIClient(cfg.LLM)
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	proc := stream.New(stores.Messages, cfg.Arena.StreamQueueSize)
	arenas := arena.NewManager(arena.Deps{
		Defaults: cfg.Arena,
		Stores:   stores,
		Stream:   proc,
		LLM:      llmClient,
		Bars:     warehouse.Reader,
	})

	// Interrupted run loops park as paused; resuming them is an operator call.
	if recovered, err := arenas.RecoverInterrupted(ctx); err != nil {
		slog.Error("Failed to recover interrupted arenas", "error", err)
		// Non-fatal — continue
	} else if recovered > 0 {
		slog.Info("Recovered interrupted arenas", "count", recovered)
	}

	if err := arenas.StartTimers(); err != nil {
		slog.Error("Failed to start evaluation timers", "error", err)
		os.Exit(1)
	}

	// 8. HTTP server
	httpServer := api.NewServer(api.Deps{
		DB:        dbClient,
		Warehouse: conn,
		Scheduler: sched,
		Arenas:    arenas,
		Stream:    proc,
		APIToken:  os.Getenv("API_TOKEN"),
	})

	slog.Info("Stockdata started",
		"workers", cfg.Scheduler.WorkerCount,
		"plugin_groups", len(cfg.PluginGroups))

	// Blocks until the context is cancelled or the listener fails.
	if err := httpServer.Run(ctx, ":"+httpPort, 5*time.Second); err != nil {
		slog.Error("HTTP server error", "error", err)
	}

	// 9. Graceful shutdown: arena run loops first, then ingestion workers.
	// Both park their work at batch boundaries so a restart can resume it.
	arenaCtx, arenaCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer arenaCancel()
	if err := arenas.Shutdown(arenaCtx); err != nil {
		slog.Warn("Arena shutdown incomplete", "error", err)
	} else {
		slog.Info("Arena manager stopped gracefully")
	}

	sched.Stop()
	slog.Info("Shutdown complete")
}
