package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"legal_ai_site/services/navigation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageFullDocument(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, `data-page-key="/"`)
	assert.Contains(t, body, `<link rel="canonical" href="https://legalai.test/">`)
	assert.Contains(t, body, "AI-Powered Legal Solutions")
	assert.NotNil(t, env.cookie)
}

func TestPageFragment(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.get("/")

	rec := env.hxGet("/about")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, `<main id="page"`))
	assert.NotContains(t, body, "<!doctype html>")
	assert.Contains(t, body, `data-page-key="/about"`)
	assert.Contains(t, body, `hx-swap-oob="true"`)
	assert.Contains(t, body, `aria-current="page" href="/about"`)
	assert.Contains(t, body, "<title>About Us | LegalAI</title>")
	assert.Contains(t, rec.Header().Values("Vary"), "HX-Request")

	_, key := env.orchestrator(t).Current()
	assert.Equal(t, "/about", key)
}

func TestHistoryRestoreGetsFullDocument(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	rec := env.do(http.MethodGet, "/services", nil, map[string]string{
		"HX-Request":                 "true",
		"HX-History-Restore-Request": "true",
	})
	assert.True(t, strings.HasPrefix(rec.Body.String(), "<!doctype html>"))
}

func TestTestimonialCategories(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/testimonials/expert")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Expert Testimony | LegalAI")
	assert.Contains(t, rec.Body.String(), "Rina Kapoor")

	rec = env.get("/testimonials/hearsay")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "looking for")

	_, key := env.orchestrator(t).Current()
	assert.Empty(t, key, "a failed mount leaves nothing mounted")

	rec = env.get("/testimonials")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownPath(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "<!doctype html>")
	assert.Contains(t, rec.Body.String(), "noindex")

	rec = env.hxGet("/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), `<main id="page"`))
}

func TestSameKeyKeepsMountedView(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	env.get("/askai")
	first := env.askView(t)

	env.get("/askai?description=ignored")
	assert.Same(t, first, env.askView(t))
	assert.Empty(t, first.session.Input())
}

func TestPayloadPrefillsAssistant(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	rec := env.get("/askai?description=Help+with+a+divorce")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), ">Help with a divorce</textarea>")
	assert.Equal(t, "Help with a divorce", env.askView(t).session.Input())
}

func TestLeavingAssistantClosesSession(t *testing.T) {
	env := newTestEnv(t, nil, nil)

	env.get("/askai")
	session := env.askView(t).session
	env.get("/services")

	assert.True(t, session.Closed())
}

func TestStaleFragmentIsDropped(t *testing.T) {
	release := make(chan struct{})
	env := newTestEnv(t, nil, func(w http.ResponseWriter, r *http.Request) {
		<-release
		newsFeed200()(w, r)
	})
	env.hxGet("/")
	o := env.orchestrator(t)

	news := make(chan int, 1)
	go func() { news <- env.hxGet("/news").Code }()
	require.Eventually(t, func() bool { return o.State().Phase == navigation.PhaseEntering }, 2*time.Second, time.Millisecond)

	about := make(chan *httptest.ResponseRecorder, 1)
	go func() { about <- env.hxGet("/about") }()
	require.Eventually(t, func() bool { return o.State().Pending == "/about" }, 2*time.Second, time.Millisecond)
	close(release)

	assert.Equal(t, http.StatusNoContent, <-news, "the overtaken request must not swap")
	rec := <-about
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-page-key="/about"`)
}

func TestTabQueryIsNotPayload(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	env.get("/askai?tab=" + env.tab + "&description=Lease+review")
	assert.Equal(t, "Lease review", env.askView(t).session.Input())

	c := env.e.NewContext(httptest.NewRequest(http.MethodGet, "/about?tab="+env.tab, nil), httptest.NewRecorder())
	assert.Nil(t, payloadFrom(c))
}
