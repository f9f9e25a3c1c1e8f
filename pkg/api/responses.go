package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope error codes. Zero is success; the 4xxxx range is caller error,
// the 5xxxx range is server error.
const (
	codeOK           = 0
	codeInvalidArgs  = 40001
	codeNotFound     = 40002
	codeUnauthorized = 40101
	codeInternal     = 50001
	codeStoreError   = 50002
	codeLLMError     = 50003
)

// Response is the envelope every business endpoint answers with.
type Response struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// respondOK writes a success envelope.
func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, &Response{Code: codeOK, Message: "ok", Data: data})
}

// respondCode writes an error envelope with an explicit code.
func respondCode(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, &Response{Code: code, Message: message})
}

// respondInvalid rejects a request that failed parameter validation.
func respondInvalid(c *gin.Context, message string) {
	respondCode(c, http.StatusBadRequest, codeInvalidArgs, message)
}

// ExecutionRef points at the execution a trigger or retry produced.
type ExecutionRef struct {
	ExecutionID string `json:"execution_id"`
}

// Ack is the body of lifecycle commands that return no entity.
type Ack struct {
	OK bool `json:"ok"`
}

// VersionResponse is returned by GET /api/version.
type VersionResponse struct {
	App     string `json:"app"`
	Version string `json:"version"`
}

// HealthCheck is one dependency's slice of the health probe.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/health. It deliberately bypasses
// the envelope so orchestrator probes can key off the HTTP status alone.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
