package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"legal_ai_site/config"
	"legal_ai_site/middleware"
	"legal_ai_site/models"
	"legal_ai_site/services"
	"legal_ai_site/services/navigation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	e      *echo.Echo
	site   *Site
	store  *services.VisitorStore
	cookie *http.Cookie
	tab    string
}

type envOption func(*config.Config)

func answering(answer string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"response": answer})
	}
}

func newsFeed200(articles ...models.Article) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.NewsFeed{Articles: articles})
	}
}

// newTestEnv wires a site against fake research and news backends. Nil
// handlers answer with a fixed reply and an empty feed.
func newTestEnv(t *testing.T, research, news http.HandlerFunc, opts ...envOption) *testEnv {
	t.Helper()
	if research == nil {
		research = answering("**Answer**")
	}
	if news == nil {
		news = newsFeed200()
	}
	researchSrv := httptest.NewServer(research)
	t.Cleanup(researchSrv.Close)
	newsSrv := httptest.NewServer(news)
	t.Cleanup(newsSrv.Close)

	cfg := &config.Config{
		Environment:      "test",
		AppURL:           "https://legalai.test",
		AIBaseURL:        researchSrv.URL,
		NewsBaseURL:      newsSrv.URL,
		AIRequestTimeout: 2 * time.Second,
		VisitorTTL:       time.Minute,
		EmailTestMode:    true,
		ContactInbox:     "inbox@legalai.test",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	site := NewSite(cfg, services.NewMetrics(), nil)
	store := services.NewVisitorStore(cfg.VisitorTTL, site.NewOrchestrator)
	t.Cleanup(store.Close)

	e := echo.New()
	e.HTTPErrorHandler = site.ErrorHandler
	site.Register(e, middleware.Visitor(store, false))

	return &testEnv{e: e, site: site, store: store, tab: uuid.NewString()}
}

// inTab returns a client for another tab of the same visitor
func (env *testEnv) inTab(tab string) *testEnv {
	other := *env
	other.tab = tab
	return &other
}

// orchestrator returns the tab's orchestrator, creating it if needed
func (env *testEnv) orchestrator(t *testing.T) *navigation.Orchestrator {
	t.Helper()
	require.NotNil(t, env.cookie, "visitor cookie not issued yet")
	return env.store.Get(env.cookie.Value, env.tab)
}

// do sends a request as the same visitor and tab every time
func (env *testEnv) do(method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(middleware.TabHeader, env.tab)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if env.cookie != nil {
		req.AddCookie(env.cookie)
	}

	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.VisitorCookie {
			env.cookie = ck
		}
	}
	return rec
}

func (env *testEnv) get(target string) *httptest.ResponseRecorder {
	return env.do(http.MethodGet, target, nil, nil)
}

func (env *testEnv) hxGet(target string) *httptest.ResponseRecorder {
	return env.do(http.MethodGet, target, nil, map[string]string{"HX-Request": "true"})
}

func (env *testEnv) hxPostForm(target string, form url.Values, extra ...string) *httptest.ResponseRecorder {
	headers := map[string]string{
		"HX-Request":           "true",
		echo.HeaderContentType: echo.MIMEApplicationForm,
	}
	for i := 0; i+1 < len(extra); i += 2 {
		headers[extra[i]] = extra[i+1]
	}
	return env.do(http.MethodPost, target, strings.NewReader(form.Encode()), headers)
}

// askView returns the tab's mounted assistant view
func (env *testEnv) askView(t *testing.T) *pageView {
	t.Helper()
	view, key := env.orchestrator(t).Current()
	require.Equal(t, askAIPath, key)
	pv, ok := view.(*pageView)
	require.True(t, ok)
	require.NotNil(t, pv.session)
	return pv
}

func (env *testEnv) waitForAnswer(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, env.askView(t).session.Wait(ctx))
}
