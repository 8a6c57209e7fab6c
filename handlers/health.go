package handlers

import (
	"context"
	"net/http"
	"time"

	"legal_ai_site/logger"

	"github.com/labstack/echo/v4"
)

const healthTimeout = 2 * time.Second

// Healthz reports liveness. An unreachable news cache degrades the status
// but never fails the check; pages still load from the upstream feed.
func (s *Site) Healthz(c echo.Context) error {
	status := map[string]string{
		"status":     "ok",
		"news_cache": "disabled",
	}

	if s.cache != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
		defer cancel()
		if err := s.cache.Ping(ctx); err != nil {
			logger.WithError(err).Warn("news cache ping failed")
			status["status"] = "degraded"
			status["news_cache"] = "unavailable"
		} else {
			status["news_cache"] = "ok"
		}
	}

	return c.JSON(http.StatusOK, status)
}
