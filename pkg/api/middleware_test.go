package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireTokenMiddleware(t *testing.T) {
	h := arenaHarness(t)
	srv := NewServer(Deps{
		Scheduler: h.sched,
		Arenas:    h.arenas,
		Stream:    h.proc,
		APIToken:  "sesame",
	})
	router := srv.Router()

	createBody, err := json.Marshal(map[string]any{"name": "guarded"})
	require.NoError(t, err)

	post := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/arena/create", bytes.NewReader(createBody))
		req.Header.Set("Content-Type", "application/json")
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing header rejected", func(t *testing.T) {
		rec := post("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		var envelope Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, codeUnauthorized, envelope.Code)
		assert.Contains(t, envelope.Message, "API token")
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		rec := post("Bearer open")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer scheme rejected", func(t *testing.T) {
		rec := post("Basic c2VzYW1l")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct token passes", func(t *testing.T) {
		rec := post("Bearer sesame")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reads stay open", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/arena/list", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestTokenCheckDisabledByDefault(t *testing.T) {
	h := arenaHarness(t)

	// The shared harness configures no token, so a mutating request with no
	// Authorization header goes straight through.
	rec, envelope := h.do(t, http.MethodPost, "/api/arena/create", map[string]any{"name": "open door"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, envelope.Code)
}

func TestSecurityHeaders(t *testing.T) {
	h := arenaHarness(t)

	rec, _ := h.do(t, http.MethodGet, "/api/version", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
