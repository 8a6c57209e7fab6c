package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"legal_ai_site/logger"
	"legal_ai_site/models"
	"legal_ai_site/services/navigation"
	"legal_ai_site/templates/pages"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	msgNotFound    = "The page you're looking for doesn't exist or has moved."
	msgMountFailed = "This page failed to load. Please try again."
	msgInternal    = "Something went wrong on our side. Please try again."
	msgSuperseded  = "You navigated away before this page loaded."
)

// ErrorHandler is the top-level error boundary. Every error a handler
// returns ends up here and is rendered as an error page.
func (s *Site) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, message := errorStatus(err)
	fields := logrus.Fields{
		"method": c.Request().Method,
		"path":   c.Request().URL.Path,
		"status": code,
	}
	if code >= http.StatusInternalServerError {
		logger.WithFields(fields).WithError(err).Error("request failed")
	} else {
		logger.WithFields(fields).WithError(err).Debug("request rejected")
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		_ = c.JSON(code, map[string]string{"error": message})
		return
	}

	key := navigation.NormalizePath(c.Request().URL.Path)
	seo := models.DefaultSEO(fmt.Sprintf("%s | LegalAI", http.StatusText(code)), message).WithNoIndex()
	if rerr := s.renderPage(c, code, key, seo, pages.ErrorPage(code, message)); rerr != nil {
		logger.WithError(rerr).Error("failed to render error page")
		_ = c.String(code, message)
	}
}

// errorStatus maps an error to the status code and the message shown to
// the visitor. Internal details never reach the message.
func errorStatus(err error) (int, string) {
	var he *echo.HTTPError
	var me *navigation.MountError
	switch {
	case errors.Is(err, navigation.ErrNotFound):
		return http.StatusNotFound, msgNotFound
	case errors.Is(err, navigation.ErrSuperseded):
		return http.StatusConflict, msgSuperseded
	case errors.Is(err, navigation.ErrClosed):
		return http.StatusServiceUnavailable, "Your session was reset. Please reload the page."
	case errors.As(err, &he):
		if he.Code == http.StatusNotFound {
			return he.Code, msgNotFound
		}
		if msg, ok := he.Message.(string); ok && msg != "" {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	case errors.As(err, &me):
		return http.StatusInternalServerError, msgMountFailed
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "The request took too long. Please try again."
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
