package components

import (
	"context"
	"strings"
	"testing"
	"time"

	"legal_ai_site/middleware"
	"legal_ai_site/models"
	"legal_ai_site/services/chat"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func tabContext(tab string) context.Context {
	ctx := context.WithValue(context.Background(), middleware.CSRFKey, "tok")
	return context.WithValue(ctx, middleware.TabKey, tab)
}

func TestTextIsEscaped(t *testing.T) {
	out := render(t, Alert(`"><script>`, "<b>hi</b>"))
	assert.Contains(t, out, `class="alert alert-&#34;&gt;&lt;script&gt;"`)
	assert.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestTabURL(t *testing.T) {
	assert.Equal(t, templ.SafeURL("/askai"), TabURL(context.Background(), "/askai"))
	assert.Equal(t, templ.SafeURL("/askai/events?tab=t-1"), TabURL(tabContext("t-1"), "/askai/events"))
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive("/", "/"))
	assert.False(t, IsActive("/", "/about"))
	assert.True(t, IsActive("/testimonials", "/testimonials/expert"))
	assert.False(t, IsActive("/news", "/newsletter"))
}

func TestHeader(t *testing.T) {
	out := render(t, Header("/about", true))
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.Contains(t, out, `class="nav-link active" aria-current="page" href="/about"`)
	assert.Equal(t, 1, strings.Count(out, "aria-current"))

	assert.NotContains(t, render(t, Header("/", false)), "hx-swap-oob")
}

func TestPageTransition(t *testing.T) {
	body := templ.Raw("<p>hi</p>")
	out := render(t, PageTransition("/news", 250*time.Millisecond, 400*time.Millisecond, body))
	assert.Contains(t, out, `<main id="page"`)
	assert.Contains(t, out, `data-page-key="/news"`)
	assert.Contains(t, out, "--page-exit: 250ms; --page-enter: 400ms")
	assert.Contains(t, out, "<p>hi</p></main>")
}

func TestLayout(t *testing.T) {
	ctx := context.WithValue(context.Background(), middleware.NonceKey, "n0nce")
	ctx = context.WithValue(ctx, middleware.CSRFKey, "tok")

	var sb strings.Builder
	seo := models.DefaultSEO("About | LegalAI", "desc").WithCanonical("https://example.com/about")
	require.NoError(t, Layout(seo, "/about", 150*time.Millisecond, PageTransition("/about", 0, 0, nil)).Render(ctx, &sb))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.Contains(t, out, "<title>About | LegalAI</title>")
	assert.Contains(t, out, `<link rel="canonical" href="https://example.com/about">`)
	assert.Contains(t, out, `nonce="n0nce"`)
	assert.Contains(t, out, "htmx-ext-sse")
	assert.Contains(t, out, `X-CSRF-Token`)
	assert.Contains(t, out, "tok")
	assert.Contains(t, out, `hx-swap="outerHTML swap:150ms show:window:top"`)
	assert.Contains(t, out, `id="site-header"`)
	assert.Contains(t, out, "site-footer")
	assert.NotContains(t, out, "X-Tab-ID")
}

func TestLayoutSendsTabHeader(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Layout(nil, "/", 0, nil).Render(tabContext("t-9"), &sb))
	out := sb.String()
	assert.Contains(t, out, "<title>LegalAI</title>")
	assert.Contains(t, out, "X-Tab-ID&#34;:&#34;t-9")
}

func TestFragment(t *testing.T) {
	seo := models.DefaultSEO("News | LegalAI", "desc")
	out := render(t, Fragment(seo, "/news", templ.Raw("<main></main>")))
	assert.True(t, strings.HasPrefix(out, "<main></main>"))
	assert.Contains(t, out, `hx-swap-oob="true"`)
	assert.True(t, strings.HasSuffix(out, "<title>News | LegalAI</title>"))

	assert.NotContains(t, render(t, Fragment(nil, "/news", nil)), "<title>")
}

func TestChatMessages(t *testing.T) {
	now := time.Date(2024, 1, 1, 15, 4, 0, 0, time.UTC)
	snap := chat.Snapshot{
		State: chat.StateSending,
		Messages: []chat.Message{
			{ID: "1", Role: chat.RoleUser, Content: "<i>raw</i> **not bold**", CreatedAt: now},
			{ID: "2", Role: chat.RoleAssistant, Content: "**bold**", RichText: true, CreatedAt: now},
		},
	}
	out := render(t, ChatMessages(snap))
	assert.Contains(t, out, "&lt;i&gt;raw&lt;/i&gt; **not bold**")
	assert.Contains(t, out, "<strong>bold</strong>")
	assert.Contains(t, out, "3:04 PM")
	assert.Contains(t, out, "typing")

	snap.State = chat.StateIdle
	assert.NotContains(t, render(t, ChatMessages(snap)), "typing")
}

func TestChatPanelTargets(t *testing.T) {
	out := render(t, ChatPanel(chat.Snapshot{Input: "draft text"}))
	assert.Contains(t, out, `sse-connect="/askai/events"`)
	assert.Contains(t, out, `action="/askai"`)
	assert.Contains(t, out, `sse-swap="chat" hx-target="this"`)
	assert.Contains(t, out, `sse-swap="status" hx-target="this"`)
	assert.Contains(t, out, ">draft text</textarea>")
	assert.Contains(t, out, "Ask AI</button>")
}

func TestChatPanelBindsTab(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, ChatPanel(chat.Snapshot{}).Render(tabContext("t-2"), &sb))
	out := sb.String()
	assert.Contains(t, out, `sse-connect="/askai/events?tab=t-2"`)
	assert.Contains(t, out, `action="/askai?tab=t-2"`)
	assert.Contains(t, out, `name="_csrf" value="tok"`)
}

func TestChatFormWithLog(t *testing.T) {
	snap := chat.Snapshot{
		State:    chat.StateSending,
		Messages: []chat.Message{{ID: "1", Role: chat.RoleUser, Content: "question", CreatedAt: time.Now()}},
	}
	out := render(t, ChatFormWithLog(snap))
	assert.True(t, strings.HasPrefix(out, `<form id="chat-form"`))
	assert.Contains(t, out, `<div id="chat-log" hx-swap-oob="innerHTML">`)
	assert.Contains(t, out, `id="msg-1"`)
	assert.Contains(t, out, "Thinking...")
}

func TestChatSubmit(t *testing.T) {
	assert.Contains(t, render(t, ChatSubmit(true)), "disabled")
	assert.NotContains(t, render(t, ChatSubmit(false)), "disabled")
}

func TestSampleQuestions(t *testing.T) {
	out := render(t, SampleQuestions([]string{`Is "this" ok?`}))
	assert.Contains(t, out, `hx-post="/askai/draft"`)
	assert.Contains(t, out, "hx-vals=")
	assert.NotContains(t, out, `"this"`)
}

func TestArticleModal(t *testing.T) {
	a := models.Article{
		Title:                "Digital Data Act",
		Topic:                "Privacy",
		ImplementationStatus: "Implemented",
		Description:          "Rules",
		Source:               "Gazette",
		Link:                 "javascript:alert(1)",
	}
	out := render(t, ArticleModal(a))
	assert.Contains(t, out, "Additional Information")
	assert.Contains(t, out, "Gazette")
	assert.Contains(t, out, "badge-success")
	assert.NotContains(t, out, "javascript")

	a.Link = "https://example.gov/act"
	assert.Contains(t, render(t, ArticleModal(a)), `href="https://example.gov/act"`)
}

func TestArticleCard(t *testing.T) {
	out := render(t, ArticleCard(3, models.Article{Title: "T", ImplementationStatus: "Proposed"}))
	assert.Contains(t, out, `hx-get="/news/articles/3"`)
	assert.Contains(t, out, "badge-warning")
}

func TestServiceCards(t *testing.T) {
	out := render(t, ServiceCards(models.LegalServices))
	assert.Equal(t, len(models.LegalServices), strings.Count(out, "service-card"))
	assert.Contains(t, out, "/askai?description=")
}

func TestFieldError(t *testing.T) {
	errs := map[string]string{"email": "Please enter a valid email address"}
	assert.Contains(t, render(t, FieldError(errs, "email")), "Please enter a valid email address")
	assert.Empty(t, render(t, FieldError(errs, "name")))
}

func TestAnalysisReport(t *testing.T) {
	out := render(t, AnalysisReport(&models.AnalysisResult{
		FileName:        "lease.pdf",
		Summary:         "Summary",
		KeyPoints:       []string{"a", "b"},
		RiskLevel:       models.RiskLow,
		Recommendations: []string{"c"},
	}))
	assert.Contains(t, out, "risk-Low")
	assert.Contains(t, out, "lease.pdf")
	assert.Equal(t, 3, strings.Count(out, "<li>"))
}
