package handlers

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"legal_ai_site/models"

	"github.com/labstack/echo/v4"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// routeParams lists the concrete values of parameterized routes
var routeParams = map[string]func() []string{
	"testimonial_category": func() []string {
		ids := make([]string, 0, len(models.TestimonialCategories))
		for _, c := range models.TestimonialCategories {
			ids = append(ids, c.ID)
		}
		return ids
	},
}

// Sitemap lists every page of the route table
func (s *Site) Sitemap(c echo.Context) error {
	var urls []SitemapURL
	for _, r := range s.table.Routes() {
		for _, path := range expandPattern(r.Name, r.Pattern) {
			urls = append(urls, SitemapURL{
				Loc:        s.cfg.AppURL + path,
				ChangeFreq: changeFreq(r.Name),
				Priority:   priority(path),
			})
		}
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// expandPattern substitutes the single :param of a pattern with each known value
func expandPattern(name, pattern string) []string {
	i := strings.Index(pattern, ":")
	if i < 0 {
		return []string{pattern}
	}
	values, ok := routeParams[name]
	if !ok {
		return nil
	}
	prefix := pattern[:i]
	var out []string
	for _, v := range values() {
		out = append(out, prefix+v)
	}
	return out
}

func changeFreq(name string) string {
	switch name {
	case "news":
		return "daily"
	case "home", "askai":
		return "weekly"
	default:
		return "monthly"
	}
}

func priority(path string) float32 {
	switch {
	case path == "/":
		return 1.0
	case strings.Count(path, "/") > 1:
		return 0.6
	default:
		return 0.8
	}
}

// Robots serves robots.txt pointing crawlers at the sitemap
func (s *Site) Robots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /askai/\nDisallow: /news/articles/\n\nSitemap: %s/sitemap.xml\n", s.cfg.AppURL)
	return c.String(http.StatusOK, body)
}
