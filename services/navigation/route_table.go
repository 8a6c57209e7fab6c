package navigation

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

const routeIndexKey = "navigation.route"

// Page mounts a routed page. The returned View stays alive until the
// orchestrator unmounts it.
type Page interface {
	Mount(ctx context.Context, m Match) (View, error)
}

// PageFunc adapts a function to Page.
type PageFunc func(ctx context.Context, m Match) (View, error)

func (f PageFunc) Mount(ctx context.Context, m Match) (View, error) {
	return f(ctx, m)
}

// View is a mounted page instance.
type View interface {
	Unmount()
}

// Payload carries navigation state such as a prefilled chat description.
type Payload map[string]string

// Route binds a path pattern (echo syntax) to a page.
type Route struct {
	Pattern string
	Name    string
	Page    Page
}

// Match is the result of resolving a concrete path.
type Match struct {
	Route   *Route
	Path    string
	Params  map[string]string
	Payload Payload
}

// Key identifies the page instance a match mounts.
func (m Match) Key() string {
	return m.Path
}

// Param returns a route parameter or "".
func (m Match) Param(name string) string {
	return m.Params[name]
}

// Table is the static route set. It is safe for concurrent use once built.
type Table struct {
	routes []Route
	router *echo.Echo
}

// NewTable builds a table backed by an echo router.
func NewTable(routes ...Route) *Table {
	t := &Table{
		routes: append([]Route(nil), routes...),
		router: echo.New(),
	}
	for i := range t.routes {
		idx := i
		t.router.GET(t.routes[i].Pattern, func(c echo.Context) error {
			c.Set(routeIndexKey, idx)
			return nil
		})
	}
	return t
}

// Routes returns a copy of the configured routes.
func (t *Table) Routes() []Route {
	return append([]Route(nil), t.routes...)
}

// Resolve maps a path to its route. Query strings and trailing slashes are
// ignored. A param never spans more than one path segment.
func (t *Table) Resolve(p string) (Match, bool) {
	key := NormalizePath(p)

	c := t.router.NewContext(nil, nil)
	t.router.Router().Find(http.MethodGet, key, c)
	h := c.Handler()
	if h == nil {
		return Match{}, false
	}
	if err := h(c); err != nil {
		return Match{}, false
	}
	idx, ok := c.Get(routeIndexKey).(int)
	if !ok {
		return Match{}, false
	}

	names := c.ParamNames()
	values := c.ParamValues()
	params := make(map[string]string, len(names))
	for i, name := range names {
		if i >= len(values) {
			continue
		}
		// echo lets a trailing param swallow the rest of the path.
		if strings.Contains(values[i], "/") {
			return Match{}, false
		}
		params[name] = values[i]
	}

	return Match{
		Route:  &t.routes[idx],
		Path:   key,
		Params: params,
	}, true
}

// NormalizePath strips the query and fragment, cleans the path and drops a
// trailing slash so "/about/" and "/about?x=1" share the key "/about".
func NormalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
