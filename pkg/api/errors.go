package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

// respondError translates a service-layer error into the envelope. Mapping:
//
//   - validation and state-machine rejections -> 40001
//   - unknown plugin / group / entity        -> 40002
//   - persistence failures                   -> 50002
//   - anything else, market-data provider
//     failures included                      -> 50001, logged
//
// 50003 is reserved for LLM failures; those surface through the arena's
// last_error and stream, never through this path.
func respondError(c *gin.Context, err error) {
	httpStatus, code := classifyError(err)
	message := err.Error()
	if code == codeInternal {
		// Unexpected errors get logged with detail and answered generically.
		slog.Error("Unexpected API error",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err)
		message = "internal server error"
	}
	respondCode(c, httpStatus, code, message)
}

func classifyError(err error) (httpStatus, code int) {
	var validationErr *config.ValidationError

	switch {
	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, scheduler.ErrInvalidRequest),
		errors.Is(err, scheduler.ErrExecutionActive),
		errors.Is(err, scheduler.ErrExecutionNotActive),
		errors.Is(err, scheduler.ErrNothingToRetry),
		errors.Is(err, arena.ErrInvalidState),
		errors.As(err, &validationErr):
		return http.StatusBadRequest, codeInvalidArgs

	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, plugin.ErrNotFound),
		errors.Is(err, config.ErrGroupNotFound):
		return http.StatusNotFound, codeNotFound

	case errors.Is(err, store.ErrConcurrentModification),
		errors.Is(err, store.ErrAlreadyExists):
		return http.StatusInternalServerError, codeStoreError

	default:
		return http.StatusInternalServerError, codeInternal
	}
}
