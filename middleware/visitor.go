package middleware

import (
	"context"
	"net/http"
	"time"

	"legal_ai_site/services"
	"legal_ai_site/services/navigation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	VisitorCookie = "legalai_visitor"
	// TabHeader carries the tab id on htmx requests. EventSource and plain
	// form posts cannot set headers and send the TabParam query instead.
	TabHeader = "X-Tab-ID"
	TabParam  = "tab"

	TabKey contextKey = "tab_id"

	visitorIDKey     = "visitor_id"
	visitorTabKey    = "visitor_tab"
	visitorCookieAge = 30 * 24 * time.Hour
)

// visitorTab resolves the tab's orchestrator on first use, so requests that
// never navigate do not allocate one
type visitorTab struct {
	store   *services.VisitorStore
	visitor string
	tab     string
	o       *navigation.Orchestrator
}

// Visitor identifies the browser by a cookie and the tab by TabHeader or
// TabParam. Invalid or missing ids get a fresh uuid; a page loaded without
// a tab id starts a new tab.
func Visitor(store *services.VisitorStore, secure bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(VisitorCookie); err == nil {
				id = parseID(cookie.Value)
			}
			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     VisitorCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(visitorCookieAge / time.Second),
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			tab := parseID(c.Request().Header.Get(TabHeader))
			if tab == "" {
				tab = parseID(c.QueryParam(TabParam))
			}
			if tab == "" {
				tab = uuid.NewString()
			}

			c.Set(visitorIDKey, id)
			c.Set(visitorTabKey, &visitorTab{store: store, visitor: id, tab: tab})
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), TabKey, tab)))
			return next(c)
		}
	}
}

func parseID(raw string) string {
	if raw == "" {
		return ""
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return ""
	}
	return parsed.String()
}

// GetVisitorID returns the id set by Visitor, or "" outside of it
func GetVisitorID(c echo.Context) string {
	if id, ok := c.Get(visitorIDKey).(string); ok {
		return id
	}
	return ""
}

// GetTabID returns the tab id set by Visitor, or "" outside of it
func GetTabID(c echo.Context) string {
	if vt, ok := c.Get(visitorTabKey).(*visitorTab); ok {
		return vt.tab
	}
	return ""
}

// TabFromContext returns the tab id for templates
func TabFromContext(ctx context.Context) string {
	if val, ok := ctx.Value(TabKey).(string); ok {
		return val
	}
	return ""
}

// GetOrchestrator returns the tab's orchestrator, creating it on first use,
// or nil outside of Visitor
func GetOrchestrator(c echo.Context) *navigation.Orchestrator {
	vt, ok := c.Get(visitorTabKey).(*visitorTab)
	if !ok {
		return nil
	}
	if vt.o == nil {
		vt.o = vt.store.Get(vt.visitor, vt.tab)
	}
	return vt.o
}

// FindOrchestrator returns the tab's orchestrator only if it already exists
func FindOrchestrator(c echo.Context) *navigation.Orchestrator {
	vt, ok := c.Get(visitorTabKey).(*visitorTab)
	if !ok {
		return nil
	}
	if vt.o == nil {
		if o, found := vt.store.Lookup(vt.visitor, vt.tab); found {
			vt.o = o
		}
	}
	return vt.o
}
