package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// executionsHandler handles GET /api/datasource/executions.
func (s *Server) executionsHandler(c *gin.Context) {
	var filters models.ExecutionFilters

	if raw := c.Query("status"); raw != "" {
		status := models.ExecutionStatus(raw)
		if !status.IsValid() {
			respondInvalid(c, "invalid status: "+raw)
			return
		}
		filters.Status = status
	}
	if raw := c.Query("trigger_type"); raw != "" {
		trigger := models.TriggerType(raw)
		if !trigger.IsValid() {
			respondInvalid(c, "invalid trigger_type: "+raw)
			return
		}
		filters.TriggerType = trigger
	}
	var err error
	if filters.Limit, err = intQuery(c, "limit"); err != nil {
		respondInvalid(c, err.Error())
		return
	}
	if filters.Offset, err = intQuery(c, "offset"); err != nil {
		respondInvalid(c, err.Error())
		return
	}

	page, err := s.scheduler.ListExecutions(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, page)
}

// executionDetailHandler handles GET /api/datasource/executions/:execution_id.
func (s *Server) executionDetailHandler(c *gin.Context) {
	detail, err := s.scheduler.GetExecution(c.Request.Context(), c.Param("execution_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, detail)
}

// stopExecutionHandler handles POST /api/datasource/executions/:execution_id/stop.
func (s *Server) stopExecutionHandler(c *gin.Context) {
	if _, err := s.scheduler.StopExecution(c.Request.Context(), c.Param("execution_id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// retryExecutionHandler handles POST /api/datasource/executions/:execution_id/retry.
// Default is a partial retry of failed and cancelled sub-tasks; full=true
// re-runs the whole execution under a new id.
func (s *Server) retryExecutionHandler(c *gin.Context) {
	full := false
	if raw := c.Query("full"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondInvalid(c, "invalid full: "+raw)
			return
		}
		full = v
	}

	exec, err := s.scheduler.RetryExecution(c.Request.Context(), c.Param("execution_id"), full)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &ExecutionRef{ExecutionID: exec.ExecutionID})
}

// deleteExecutionHandler handles DELETE /api/datasource/executions/:execution_id.
// Active executions must be stopped first.
func (s *Server) deleteExecutionHandler(c *gin.Context) {
	if err := s.scheduler.DeleteExecution(c.Request.Context(), c.Param("execution_id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// intQuery parses an optional non-negative integer query parameter.
func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, &queryError{name: name, raw: raw}
	}
	return v, nil
}

type queryError struct{ name, raw string }

func (e *queryError) Error() string { return "invalid " + e.name + ": " + e.raw }
