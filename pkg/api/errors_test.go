package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yourdaylight/stock-datasource-sub001/pkg/arena"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/config"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/plugin"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/provider"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/scheduler"
	"github.com/Yourdaylight/stock-datasource-sub001/pkg/store"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   int
	}{
		{"invalid input", store.ErrInvalidInput, http.StatusBadRequest, codeInvalidArgs},
		{"wrapped invalid input", fmt.Errorf("%w: bad date", store.ErrInvalidInput), http.StatusBadRequest, codeInvalidArgs},
		{"invalid request", scheduler.ErrInvalidRequest, http.StatusBadRequest, codeInvalidArgs},
		{"execution active", scheduler.ErrExecutionActive, http.StatusBadRequest, codeInvalidArgs},
		{"execution not active", scheduler.ErrExecutionNotActive, http.StatusBadRequest, codeInvalidArgs},
		{"nothing to retry", scheduler.ErrNothingToRetry, http.StatusBadRequest, codeInvalidArgs},
		{"invalid arena state", arena.ErrInvalidState, http.StatusBadRequest, codeInvalidArgs},
		{"config validation", &config.ValidationError{Component: "plugin", ID: "daily_quote", Err: errors.New("bad cron")}, http.StatusBadRequest, codeInvalidArgs},
		{"entity not found", store.ErrNotFound, http.StatusNotFound, codeNotFound},
		{"plugin not found", fmt.Errorf("%w: %q", plugin.ErrNotFound, "nope"), http.StatusNotFound, codeNotFound},
		{"group not found", config.ErrGroupNotFound, http.StatusNotFound, codeNotFound},
		{"concurrent modification", store.ErrConcurrentModification, http.StatusInternalServerError, codeStoreError},
		{"duplicate row", store.ErrAlreadyExists, http.StatusInternalServerError, codeStoreError},
		{"provider rate limit", &provider.RateLimitError{APIName: "daily", RetryAfter: time.Minute}, http.StatusInternalServerError, codeInternal},
		{"provider api error", fmt.Errorf("latest date probe: %w", &provider.APIError{APIName: "daily", Code: 500}), http.StatusInternalServerError, codeInternal},
		{"unexpected", errors.New("disk on fire"), http.StatusInternalServerError, codeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/anything", nil)

	respondError(c, errors.New("dsn=postgres://user:hunter2@db leaked"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, codeInternal, envelope.Code)
	assert.Equal(t, "internal server error", envelope.Message)
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestRespondErrorKeepsServiceMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/anything", nil)

	respondError(c, fmt.Errorf("%w: execution exec-1 is still active", scheduler.ErrExecutionActive))

	var envelope Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, codeInvalidArgs, envelope.Code)
	assert.Contains(t, envelope.Message, "exec-1")
}
