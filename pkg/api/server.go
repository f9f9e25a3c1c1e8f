// Package api exposes the HTTP surface: ingestion control under
// /api/datasource, the arena lifecycle under /api/arena, the thinking-stream
// SSE endpoint, and the operational health and version probes. Every business
// response travels in the {code, message, data} envelope; errors map onto the
// documented envelope codes in errors.go.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/database"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// WarehousePinger reports columnar-store liveness for the health probe.
// ods.Conn satisfies it.
type WarehousePinger interface {
	Ping(ctx context.Context) error
}

// Deps bundles everything the server serves from.
type Deps struct {
	DB        *database.Client
	Warehouse WarehousePinger
	Scheduler *scheduler.Scheduler
	Arenas    *arena.Manager
	Stream    *stream.Processor

	// APIToken guards mutating endpoints when non-empty. Read-only endpoints
	// and the health probe stay open either way.
	APIToken string
}

// Server owns the gin engine and the HTTP listener.
type Server struct {
	db        *database.Client
	warehouse WarehousePinger
	scheduler *scheduler.Scheduler
	arenas    *arena.Manager
	stream    *stream.Processor
	apiToken  string

	logger *slog.Logger
	httpS  *http.Server
}

// NewServer wires the handler set. Run starts serving; Router is exposed
// separately so tests can drive the mux through httptest.
func NewServer(deps Deps) *Server {
	return &Server{
		db:        deps.DB,
		warehouse: deps.Warehouse,
		scheduler: deps.Scheduler,
		arenas:    deps.Arenas,
		stream:    deps.Stream,
		apiToken:  deps.APIToken,
		logger:    slog.With("component", "api"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(securityHeaders())

	api := r.Group("/api")
	api.GET("/health", s.healthHandler)
	api.GET("/version", s.versionHandler)

	guard := requireToken(s.apiToken)

	ds := api.Group("/datasource")
	{
		ds.GET("/plugins", s.pluginsHandler)
		ds.POST("/plugins/:name/schedule", guard, s.scheduleHandler)
		ds.POST("/sync", guard, s.syncHandler)
		ds.POST("/group/:id/trigger", guard, s.groupTriggerHandler)
		ds.GET("/executions", s.executionsHandler)
		ds.GET("/executions/:execution_id", s.executionDetailHandler)
		ds.POST("/executions/:execution_id/stop", guard, s.stopExecutionHandler)
		ds.POST("/executions/:execution_id/retry", guard, s.retryExecutionHandler)
		ds.DELETE("/executions/:execution_id", guard, s.deleteExecutionHandler)
		ds.GET("/missing", s.missingHandler)
	}

	ar := api.Group("/arena")
	{
		ar.POST("/create", guard, s.createArenaHandler)
		ar.GET("/list", s.listArenasHandler)
		ar.POST("/:id/start", guard, s.startArenaHandler)
		ar.POST("/:id/pause", guard, s.pauseArenaHandler)
		ar.POST("/:id/resume", guard, s.resumeArenaHandler)
		ar.DELETE("/:id", guard, s.deleteArenaHandler)
		ar.GET("/:id/status", s.arenaStatusHandler)
		ar.GET("/:id/strategies", s.arenaStrategiesHandler)
		ar.GET("/:id/leaderboard", s.leaderboardHandler)
		ar.POST("/:id/evaluate", guard, s.evaluateArenaHandler)
		ar.POST("/:id/discussion/start", guard, s.startDiscussionHandler)
		ar.POST("/:id/discussion/intervention", guard, s.interventionHandler)
		ar.GET("/:id/messages", s.arenaMessagesHandler)
		ar.GET("/:id/thinking-stream", s.thinkingStreamHandler)
	}

	return r
}

// Run serves on addr until the context is cancelled, then drains with the
// given shutdown grace.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("api server listen: %w", err)
	}
	return s.Serve(ctx, ln, grace)
}

// Serve runs the server on an existing listener until the context is
// cancelled, then drains with the given shutdown grace. Tests use it to bind
// a random port.
func (s *Server) Serve(ctx context.Context, ln net.Listener, grace time.Duration) error {
	s.httpS = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", ln.Addr().String())
		if err := s.httpS.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := s.httpS.Shutdown(shutCtx); err != nil {
		return fmt.Errorf("api server shutdown: %w", err)
	}
	s.logger.Info("API server stopped")
	return nil
}
