package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"legal_ai_site/services"
	"legal_ai_site/services/navigation"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemap(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/sitemap.xml")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationXML, rec.Header().Get(echo.HeaderContentType))

	out := rec.Body.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<loc>https://legalai.test/</loc>")
	assert.Contains(t, out, "<loc>https://legalai.test/askai</loc>")
	assert.Contains(t, out, "<loc>https://legalai.test/testimonials/documentary</loc>")
	assert.NotContains(t, out, ":category")
	assert.Nil(t, env.cookie, "infrastructure routes do not issue visitor cookies")
}

func TestExpandPattern(t *testing.T) {
	assert.Equal(t, []string{"/about"}, expandPattern("about", "/about"))
	assert.Nil(t, expandPattern("unknown", "/things/:id"))
	assert.Len(t, expandPattern("testimonial_category", "/testimonials/:category"), 4)
}

func TestRobots(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	rec := env.get("/robots.txt")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://legalai.test/sitemap.xml")
	assert.Contains(t, rec.Body.String(), "Disallow: /askai/")
}

func TestHealthz(t *testing.T) {
	t.Run("Without cache", func(t *testing.T) {
		env := newTestEnv(t, nil, nil)
		rec := env.get("/healthz")
		require.Equal(t, http.StatusOK, rec.Code)

		var got map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ok", got["status"])
		assert.Equal(t, "disabled", got["news_cache"])
	})

	t.Run("With cache", func(t *testing.T) {
		mr := miniredis.RunT(t)
		env := newTestEnv(t, nil, nil)
		env.site.cache = services.NewNewsCache(backend.NewClient(&backend.Options{Addr: mr.Addr()}), time.Minute)

		var got map[string]string
		rec := env.get("/healthz")
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "ok", got["news_cache"])

		mr.Close()
		rec = env.get("/healthz")
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "degraded", got["status"])
		assert.Equal(t, "unavailable", got["news_cache"])
	})
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.get("/about")

	rec := env.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `legalai_navigations_total{path="/about",result="mounted"}`)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"route not found", navigation.ErrNotFound, http.StatusNotFound, msgNotFound},
		{"mount not found", &navigation.MountError{Path: "/x", Err: fmt.Errorf("wrap: %w", navigation.ErrNotFound)}, http.StatusNotFound, msgNotFound},
		{"mount failed", &navigation.MountError{Path: "/x", Err: errors.New("boom")}, http.StatusInternalServerError, msgMountFailed},
		{"superseded", navigation.ErrSuperseded, http.StatusConflict, msgSuperseded},
		{"echo not found", echo.ErrNotFound, http.StatusNotFound, msgNotFound},
		{"http error", echo.NewHTTPError(http.StatusConflict, "busy"), http.StatusConflict, "busy"},
		{"timeout", context.DeadlineExceeded, http.StatusGatewayTimeout, "The request took too long. Please try again."},
		{"internal", errors.New("db password leaked"), http.StatusInternalServerError, msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := errorStatus(tt.err)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestErrorHandlerJSON(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	rec := env.do(http.MethodGet, "/missing", nil, map[string]string{echo.HeaderAccept: echo.MIMEApplicationJSON})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, msgNotFound), rec.Body.String())
}
