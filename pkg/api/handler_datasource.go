package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// pluginsHandler handles GET /api/datasource/plugins.
func (s *Server) pluginsHandler(c *gin.Context) {
	statuses, err := s.scheduler.PluginStatuses(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, statuses)
}

// scheduleOverrideRequest is the body of the schedule override endpoint.
type scheduleOverrideRequest struct {
	ScheduleEnabled *bool `json:"schedule_enabled"`
}

// scheduleHandler handles POST /api/datasource/plugins/:name/schedule.
// The persisted override wins over the plugin's static declaration at the
// next cron fire.
func (s *Server) scheduleHandler(c *gin.Context) {
	name := c.Param("name")
	var req scheduleOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}
	if req.ScheduleEnabled == nil {
		respondInvalid(c, "schedule_enabled is required")
		return
	}

	setting, err := s.scheduler.SetScheduleEnabled(c.Request.Context(), name, *req.ScheduleEnabled)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, setting)
}

// syncHandler handles POST /api/datasource/sync.
func (s *Server) syncHandler(c *gin.Context) {
	var req models.SyncRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}

	exec, err := s.scheduler.TriggerManual(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &ExecutionRef{ExecutionID: exec.ExecutionID})
}

// groupTriggerHandler handles POST /api/datasource/group/:id/trigger. The
// body is optional; an absent body triggers the group with its configured
// defaults.
func (s *Server) groupTriggerHandler(c *gin.Context) {
	groupName := c.Param("id")

	var req models.GroupTriggerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, "invalid request body: "+err.Error())
			return
		}
	}

	exec, err := s.scheduler.TriggerGroup(c.Request.Context(), groupName, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &ExecutionRef{ExecutionID: exec.ExecutionID})
}

// missingHandler handles GET /api/datasource/missing.
func (s *Server) missingHandler(c *gin.Context) {
	windowDays := 0
	if raw := c.Query("window_days"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			respondInvalid(c, "invalid window_days: "+raw)
			return
		}
		windowDays = v
	}

	report, err := s.scheduler.MissingData(c.Request.Context(), windowDays)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}
