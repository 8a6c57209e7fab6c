package components

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"legal_ai_site/middleware"
	"legal_ai_site/models"

	"github.com/a-h/templ"
)

// NavLink is one entry of the main navigation
type NavLink struct {
	Path  string
	Label string
}

var NavLinks = []NavLink{
	{"/", "Home"},
	{"/askai", "Ask AI"},
	{"/legaldocs", "Legal Docs"},
	{"/services", "Services"},
	{"/news", "News"},
	{"/testimonials", "Testimonials"},
	{"/about", "About"},
	{"/contact", "Contact"},
}

// IsActive reports whether link should be highlighted for the page key.
// Nested pages highlight their section.
func IsActive(link, key string) bool {
	if link == "/" {
		return key == "/"
	}
	return key == link || strings.HasPrefix(key, link+"/")
}

// TabURL appends the rendering tab's id to path. Plain form posts and the
// event stream cannot send the tab header, so they carry it in the query.
func TabURL(ctx context.Context, path string) templ.SafeURL {
	tab := middleware.TabFromContext(ctx)
	if tab == "" {
		return templ.SafeURL(path)
	}
	return templ.SafeURL(path + "?" + url.Values{middleware.TabParam: {tab}}.Encode())
}

// requestHeaders are sent by htmx with every request of the page
func requestHeaders(ctx context.Context) string {
	headers := map[string]string{"X-CSRF-Token": middleware.CSRFFromContext(ctx)}
	if tab := middleware.TabFromContext(ctx); tab != "" {
		headers[middleware.TabHeader] = tab
	}
	return JSON(headers)
}

func swapSpec(exit time.Duration) string {
	return fmt.Sprintf("outerHTML swap:%dms show:window:top", exit.Milliseconds())
}

func transitionStyle(exit, enter time.Duration) templ.SafeCSS {
	return templ.SafeCSS(fmt.Sprintf("--page-exit: %dms; --page-enter: %dms", exit.Milliseconds(), enter.Milliseconds()))
}

func statusIcon(a models.Article) string {
	if a.StatusClass() == models.StatusClassSuccess {
		return "✅"
	}
	return "⚠️"
}

// safeLink accepts absolute http(s) URLs only
func safeLink(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	return u.String(), true
}
