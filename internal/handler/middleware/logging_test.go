//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"sweetbloom/internal/handler/middleware"
	"sweetbloom/internal/pkg/config"
	"sweetbloom/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareWritesToInjectedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/ping", nil, "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "Request started")
	assert.Contains(t, buf.String(), "Request completed")
}
