package handlers

import (
	"net/http"
	"sync/atomic"
	"testing"

	"legal_ai_site/models"
	"legal_ai_site/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleArticles = []models.Article{
	{Title: "Digital Personal Data Protection Rules", Topic: "Privacy", ImplementationStatus: "Implemented", Description: "Consent rules", Source: "Gazette of India"},
	{Title: "Bharatiya Nyaya Sanhita Amendment", Topic: "Criminal", ImplementationStatus: "Proposed", Description: "Draft changes"},
}

func TestNewsPage(t *testing.T) {
	env := newTestEnv(t, nil, newsFeed200(sampleArticles...))

	rec := env.get("/news")
	require.Equal(t, http.StatusOK, rec.Code)
	out := rec.Body.String()
	assert.Contains(t, out, "Digital Personal Data Protection Rules")
	assert.Contains(t, out, "badge-success")
	assert.Contains(t, out, "badge-warning")
	assert.Contains(t, out, `hx-get="/news/articles/1"`)
}

func TestNewsPageError(t *testing.T) {
	var failing atomic.Bool
	failing.Store(true)
	env := newTestEnv(t, nil, func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		newsFeed200(sampleArticles...)(w, r)
	})

	rec := env.get("/news")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch news. Please make sure the backend server is running.")

	failing.Store(false)
	rec = env.get("/news")
	assert.Contains(t, rec.Body.String(), "Bharatiya Nyaya Sanhita Amendment")
	assert.NotContains(t, rec.Body.String(), services.NewsErrorMessage)
}

func TestNewsArticle(t *testing.T) {
	env := newTestEnv(t, nil, newsFeed200(sampleArticles...))

	rec := env.hxGet("/news/articles/0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="dialog"`)
	assert.Contains(t, rec.Body.String(), "Gazette of India")

	rec = env.hxGet("/news/articles/7")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), articleNotFound)

	rec = env.hxGet("/news/articles/first")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
