package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/models"
)

// createArenaHandler handles POST /api/arena/create.
func (s *Server) createArenaHandler(c *gin.Context) {
	var req models.CreateArenaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}

	a, err := s.arenas.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, a)
}

// listArenasHandler handles GET /api/arena/list.
func (s *Server) listArenasHandler(c *gin.Context) {
	arenas, err := s.arenas.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, arenas)
}

// startArenaHandler handles POST /api/arena/:id/start.
func (s *Server) startArenaHandler(c *gin.Context) {
	a, err := s.arenas.Start(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, a)
}

// pauseArenaHandler handles POST /api/arena/:id/pause.
func (s *Server) pauseArenaHandler(c *gin.Context) {
	if err := s.arenas.Pause(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// resumeArenaHandler handles POST /api/arena/:id/resume.
func (s *Server) resumeArenaHandler(c *gin.Context) {
	if err := s.arenas.Resume(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// deleteArenaHandler handles DELETE /api/arena/:id.
func (s *Server) deleteArenaHandler(c *gin.Context) {
	if err := s.arenas.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// arenaStatusHandler handles GET /api/arena/:id/status.
func (s *Server) arenaStatusHandler(c *gin.Context) {
	status, err := s.arenas.Status(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, status)
}

// arenaStrategiesHandler handles GET /api/arena/:id/strategies.
func (s *Server) arenaStrategiesHandler(c *gin.Context) {
	activeOnly := false
	if raw := c.Query("active_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondInvalid(c, "invalid active_only: "+raw)
			return
		}
		activeOnly = v
	}

	strategies, err := s.arenas.Strategies(c.Request.Context(), c.Param("id"), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, strategies)
}

// leaderboardHandler handles GET /api/arena/:id/leaderboard.
func (s *Server) leaderboardHandler(c *gin.Context) {
	ranked, err := s.arenas.Leaderboard(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, ranked)
}

// evaluateArenaHandler handles POST /api/arena/:id/evaluate. Weekly and
// monthly periods eliminate the tail of the leaderboard; daily only rescores.
func (s *Server) evaluateArenaHandler(c *gin.Context) {
	var req models.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}
	if !req.Period.IsValid() {
		respondInvalid(c, "invalid period: "+string(req.Period))
		return
	}

	report, err := s.arenas.Evaluate(c.Request.Context(), c.Param("id"), req.Period)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, report)
}

// startDiscussionHandler handles POST /api/arena/:id/discussion/start. The
// body is optional; mode and max_rounds default from the arena config.
func (s *Server) startDiscussionHandler(c *gin.Context) {
	var req models.StartDiscussionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondInvalid(c, "invalid request body: "+err.Error())
			return
		}
	}
	if req.Mode != "" && !req.Mode.IsValid() {
		respondInvalid(c, "invalid mode: "+string(req.Mode))
		return
	}

	if err := s.arenas.StartDiscussion(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// interventionHandler handles POST /api/arena/:id/discussion/intervention.
func (s *Server) interventionHandler(c *gin.Context) {
	var req models.InterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalid(c, "invalid request body: "+err.Error())
		return
	}

	if err := s.arenas.Intervene(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, &Ack{OK: true})
}

// arenaMessagesHandler handles GET /api/arena/:id/messages: the persisted
// thinking-message history, oldest first, resumable with after_seq.
func (s *Server) arenaMessagesHandler(c *gin.Context) {
	var afterSeq int64
	if raw := c.Query("after_seq"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || v < 0 {
			respondInvalid(c, "invalid after_seq: "+raw)
			return
		}
		afterSeq = v
	}
	limit, err := intQuery(c, "limit")
	if err != nil {
		respondInvalid(c, err.Error())
		return
	}

	messages, err := s.arenas.Messages(c.Request.Context(), c.Param("id"), afterSeq, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, messages)
}
