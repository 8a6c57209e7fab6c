package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"legal_ai_site/middleware"
	"legal_ai_site/models"
	"legal_ai_site/services/navigation"

	"github.com/labstack/echo/v4"
)

// Page serves every route of the navigation table. The tab's orchestrator
// runs the exit and enter cycle before the response renders. A fragment
// request overtaken by a newer navigation of the same tab gets 204 so htmx
// leaves the newer page in place.
func (s *Site) Page(c echo.Context) error {
	o := middleware.GetOrchestrator(c)
	if o == nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "visitor session unavailable")
	}

	ctx := c.Request().Context()
	view, key, err := o.Visit(ctx, c.Request().URL.Path, payloadFrom(c))
	if errors.Is(err, navigation.ErrSuperseded) && isHTMX(c) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return err
	}
	pv, ok := view.(*pageView)
	if !ok {
		return fmt.Errorf("unexpected view type %T", view)
	}

	return s.renderPage(c, http.StatusOK, key, s.canonical(pv.seo, key), pv.render(ctx))
}

// payloadFrom turns the query string into navigation state. The tab id
// addresses the orchestrator and is not part of it.
func payloadFrom(c echo.Context) navigation.Payload {
	q := c.QueryParams()
	p := make(navigation.Payload, len(q))
	for k := range q {
		if k == middleware.TabParam {
			continue
		}
		p[k] = q.Get(k)
	}
	if len(p) == 0 {
		return nil
	}
	return p
}

// tabPath appends the tab id to path for clients that cannot send
// the tab header, like plain form posts and their redirects
func tabPath(c echo.Context, path string) string {
	tab := middleware.GetTabID(c)
	if tab == "" {
		return path
	}
	return path + "?" + url.Values{middleware.TabParam: {tab}}.Encode()
}

// canonical returns a copy of seo pointing at the public URL of key
func (s *Site) canonical(seo *models.SEO, key string) *models.SEO {
	if seo == nil {
		seo = models.DefaultSEO("LegalAI", defaultDescription)
	}
	out := *seo
	out.Canonical = s.cfg.AppURL + key
	return &out
}
