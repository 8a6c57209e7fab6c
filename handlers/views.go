package handlers

import (
	"context"
	"fmt"
	"sync"

	"legal_ai_site/models"
	"legal_ai_site/services"
	"legal_ai_site/services/chat"
	"legal_ai_site/services/navigation"
	"legal_ai_site/templates/pages"

	"github.com/a-h/templ"
)

// pageView is a mounted page. render runs on every request so live state,
// like the chat log, always shows its latest snapshot.
type pageView struct {
	name    string
	seo     *models.SEO
	render  func(ctx context.Context) templ.Component
	session *chat.Session
}

func (v *pageView) Unmount() {
	if v.session != nil {
		v.session.Close()
	}
}

func static(c templ.Component) func(context.Context) templ.Component {
	return func(context.Context) templ.Component { return c }
}

// staticPage mounts a page whose content never changes
func staticPage(name string, c templ.Component) navigation.Page {
	return navigation.PageFunc(func(ctx context.Context, m navigation.Match) (navigation.View, error) {
		return &pageView{name: name, seo: GetSEO(name), render: static(c)}, nil
	})
}

func (s *Site) routes() []navigation.Route {
	return []navigation.Route{
		{Pattern: "/", Name: "home", Page: staticPage("home", pages.Home())},
		{Pattern: "/askai", Name: "askai", Page: navigation.PageFunc(s.mountAskAI)},
		{Pattern: "/legaldocs", Name: "legaldocs", Page: staticPage("legaldocs", pages.LegalDocs(nil))},
		{Pattern: "/about", Name: "about", Page: staticPage("about", pages.About())},
		{Pattern: "/contact", Name: "contact", Page: navigation.PageFunc(s.mountContact)},
		{Pattern: "/services", Name: "services", Page: staticPage("services", pages.Services())},
		{Pattern: "/news", Name: "news", Page: navigation.PageFunc(s.mountNews)},
		{Pattern: "/testimonials", Name: "testimonials", Page: staticPage("testimonials", pages.Testimonials())},
		{Pattern: "/testimonials/:category", Name: "testimonial_category", Page: navigation.PageFunc(s.mountTestimonialCategory)},
	}
}

// mountAskAI opens a chat session that lives as long as the view. The
// description payload prefills the draft.
func (s *Site) mountAskAI(ctx context.Context, m navigation.Match) (navigation.View, error) {
	session := chat.NewSession(s.researcher,
		chat.WithTarget(s.researchTarget),
		chat.WithPrefill(m.Payload["description"]),
		chat.WithObserver(s.observeChat),
	)
	return &pageView{
		name:    "askai",
		seo:     GetSEO("askai"),
		session: session,
		render: func(context.Context) templ.Component {
			return pages.AskAI(session.Snapshot())
		},
	}, nil
}

func (s *Site) mountContact(ctx context.Context, m navigation.Match) (navigation.View, error) {
	form := pages.ContactForm{SiteKey: s.cfg.TurnstileSiteKey}
	return &pageView{name: "contact", seo: GetSEO("contact"), render: static(pages.Contact(form))}, nil
}

func (s *Site) mountNews(ctx context.Context, m navigation.Match) (navigation.View, error) {
	feed := &newsFeed{news: s.news}
	feed.load(ctx)
	return &pageView{name: "news", seo: GetSEO("news"), render: feed.component}, nil
}

func (s *Site) mountTestimonialCategory(ctx context.Context, m navigation.Match) (navigation.View, error) {
	id := m.Param("category")
	category, ok := models.FindTestimonialCategory(id)
	if !ok {
		return nil, fmt.Errorf("testimonial category %q: %w", id, navigation.ErrNotFound)
	}

	seo := GetSEO("testimonial_category")
	seo.Title = category.Title + " | LegalAI"
	seo.Description = category.Description
	items := models.TestimonialsFor(category.ID)
	return &pageView{name: "testimonial_category", seo: seo, render: static(pages.TestimonialCategory(category, items))}, nil
}

// newsFeed keeps the articles loaded at mount. A failed load is retried on
// the next render so "Try Again" works without leaving the page.
type newsFeed struct {
	news *services.NewsService

	mu       sync.Mutex
	articles []models.Article
	failed   bool
}

func (f *newsFeed) load(ctx context.Context) {
	articles, err := f.news.Latest(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.articles = articles
	f.failed = err != nil
}

func (f *newsFeed) component(ctx context.Context) templ.Component {
	f.mu.Lock()
	failed := f.failed
	f.mu.Unlock()
	if failed {
		f.load(ctx)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failed {
		return pages.News(nil, services.NewsErrorMessage)
	}
	return pages.News(f.articles, "")
}
