//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"room-booking/internal/handler/middleware"
	"room-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		if rec["msg"] == "Request completed" {
			return rec
		}
	}
	t.Fatalf("no completion record in %q", buf.String())
	return nil
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	setup := func() (*gin.Engine, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		r := gin.New()
		r.Use(middleware.RequestLogger(logger))
		sessions := middleware.NewSessionMiddleware(config.NewTestConfig())
		r.GET("/ok", sessions.RequireSession(), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
		return r, &buf
	}

	t.Run("request id is generated and logged with the session", func(t *testing.T) {
		r, buf := setup()
		sid := uuid.New()
		req := nethttptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(middleware.SessionHeader, sid.String())
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		requestID := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(requestID)
		require.NoError(t, err)

		got := completedRecord(t, buf)
		assert.Equal(t, "INFO", got["level"])
		assert.Equal(t, requestID, got["request_id"])
		assert.Equal(t, sid.String(), got["session_id"])
		assert.EqualValues(t, http.StatusOK, got["status_code"])
	})

	t.Run("caller request id is reused", func(t *testing.T) {
		r, buf := setup()
		req := nethttptest.NewRequest(http.MethodGet, "/ok", nil)
		req.Header.Set(middleware.RequestIDHeader, "trace-42")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "trace-42", rec.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "trace-42", completedRecord(t, buf)["request_id"])
	})

	t.Run("client errors log at warn without a session", func(t *testing.T) {
		r, buf := setup()
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, nethttptest.NewRequest(http.MethodGet, "/missing", nil))

		got := completedRecord(t, buf)
		assert.Equal(t, "WARN", got["level"])
		assert.NotContains(t, got, "session_id")
	})
}

func TestNewLogger(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	t.Run("level filters records", func(t *testing.T) {
		var buf bytes.Buffer
		logger := middleware.NewLogger(config.LogConfig{Level: "warn"}, &buf)
		logger.Info("hidden")
		assert.Empty(t, buf.String())

		logger.Warn("shown")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		middleware.NewLogger(config.LogConfig{Level: "verbose"}, &buf).Info("shown")
		assert.Contains(t, buf.String(), `"msg":"shown"`)
	})

	t.Run("time uses the configured layout", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := config.NewTestConfig().Log
		cfg.Level = "info"
		cfg.TimeFormat = "2006-01-02"
		middleware.NewLogger(cfg, &buf).Info("stamped")

		var rec map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, rec["time"])
	})
}
