package handlers

import (
	"bytes"
	"fmt"

	"legal_ai_site/models"
	"legal_ai_site/templates/components"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// isHTMX reports whether the request wants a fragment. History restores
// need the whole document.
func isHTMX(c echo.Context) bool {
	h := c.Request().Header
	return h.Get("HX-Request") == "true" && h.Get("HX-History-Restore-Request") != "true"
}

// render writes a component only after it rendered completely, so a failing
// component never leaves a half written response.
func render(c echo.Context, status int, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(c.Request().Context(), &buf); err != nil {
		return fmt.Errorf("failed to render response: %w", err)
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// renderPage wraps body in the page transition. HTMX navigations get the
// transition, the out of band header and the title; everything else gets
// the full layout.
func (s *Site) renderPage(c echo.Context, status int, key string, seo *models.SEO, body templ.Component) error {
	content := components.PageTransition(key, s.cfg.PageExitDuration, s.cfg.PageEnterDuration, body)
	c.Response().Header().Add("Vary", "HX-Request")

	if isHTMX(c) {
		return render(c, status, components.Fragment(seo, key, content))
	}
	return render(c, status, components.Layout(seo, key, s.cfg.PageExitDuration, content))
}
