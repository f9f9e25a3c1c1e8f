package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/stream"
)

// doneFrame closes every thinking stream, whether the arena ended or the
// subscriber arrived after it did.
const doneFrame = "data: {\"type\":\"done\"}\n\n"

// thinkingStreamHandler handles GET /api/arena/:id/thinking-stream. Each SSE
// event carries one ThinkingMessage as JSON, framed as `data: <json>\n\n`;
// a terminal {"type":"done"} frame is written when the arena's stream ends.
func (s *Server) thinkingStreamHandler(c *gin.Context) {
	arenaID := c.Param("id")
	if _, err := s.arenas.Get(c.Request.Context(), arenaID); err != nil {
		respondError(c, err)
		return
	}

	sub, err := s.stream.Subscribe(arenaID)
	if errors.Is(err, stream.ErrStreamClosed) {
		// The arena already reached a terminal state. Honor the framing
		// contract with an immediate closing frame.
		writeSSEHeaders(c)
		c.Writer.WriteString(doneFrame)
		c.Writer.Flush()
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	defer sub.Close()

	writeSSEHeaders(c)
	c.Writer.Flush()

	log := s.logger.With("arena_id", arenaID, "subscriber_id", sub.ID())
	log.Info("Thinking stream subscriber connected")

	clientGone := c.Request.Context().Done()
	for {
		select {
		case msg, open := <-sub.C:
			if !open {
				c.Writer.WriteString(doneFrame)
				c.Writer.Flush()
				log.Info("Thinking stream ended")
				return
			}
			body, err := json.Marshal(msg)
			if err != nil {
				log.Error("Marshalling thinking message failed", "error", err)
				continue
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", body)
			c.Writer.Flush()
		case <-clientGone:
			log.Info("Thinking stream subscriber disconnected")
			return
		}
	}
}

func writeSSEHeaders(c *gin.Context) {
	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	h.Set("X-Accel-Buffering", "no")
	c.Writer.WriteHeader(http.StatusOK)
}
