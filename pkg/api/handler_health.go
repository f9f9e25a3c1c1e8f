package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/database"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /api/health. Postgres and ClickHouse failures
// read as unhealthy (503) since nothing works without them; a stopped
// scheduler only degrades, the API itself still serves.
func (s *Server) healthHandler(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.db != nil {
		if _, err := database.Health(reqCtx, s.db.DB()); err != nil {
			status = healthStatusUnhealthy
			checks["postgres"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["postgres"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.warehouse != nil {
		if err := s.warehouse.Ping(reqCtx); err != nil {
			status = healthStatusUnhealthy
			checks["clickhouse"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["clickhouse"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.scheduler != nil {
		if s.scheduler.Running() {
			checks["scheduler"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["scheduler"] = HealthCheck{Status: healthStatusDegraded, Message: "worker pool not running"}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// versionHandler handles GET /api/version.
func (s *Server) versionHandler(c *gin.Context) {
	respondOK(c, &VersionResponse{App: version.AppName, Version: version.GitCommit})
}
