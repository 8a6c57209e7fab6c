package models

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleStatusClass(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Implemented", StatusClassSuccess},
		{"Partially implemented from 1 July", StatusClassSuccess},
		{"ACTIVE", StatusClassSuccess},
		{"Proposed", StatusClassWarning},
		{"", StatusClassWarning},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, Article{ImplementationStatus: tt.status}.StatusClass())
		})
	}
}

func TestArticleHasDetails(t *testing.T) {
	assert.False(t, Article{Title: "x"}.HasDetails())
	assert.True(t, Article{Link: "https://example.com"}.HasDetails())
	assert.True(t, Article{Reference: "Gazette 12"}.HasDetails())
}

func TestLegalServiceAskURL(t *testing.T) {
	require.Len(t, LegalServices, 12)

	svc := LegalServices[5]
	u, err := url.Parse(svc.AskURL())
	require.NoError(t, err)
	assert.Equal(t, "/askai", u.Path)
	assert.Equal(t, svc.Description, u.Query().Get("description"))
}

func TestTestimonialCategories(t *testing.T) {
	c, ok := FindTestimonialCategory("expert")
	require.True(t, ok)
	assert.Equal(t, "Expert Testimony", c.Title)

	_, ok = FindTestimonialCategory("hearsay")
	assert.False(t, ok)

	for _, tm := range TestimonialsFor("eyewitness") {
		assert.Equal(t, "eyewitness", tm.Category)
	}
	assert.Empty(t, TestimonialsFor("hearsay"))
}

func TestContactRequestValidate(t *testing.T) {
	valid := ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "demo",
		Message: "Please show me the product.",
	}
	assert.Empty(t, valid.Validate())

	t.Run("Missing fields", func(t *testing.T) {
		errs := ContactRequest{}.Validate()
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "email")
		assert.Contains(t, errs, "subject")
		assert.Contains(t, errs, "message")
		assert.NotContains(t, errs, "company")
	})

	t.Run("Invalid email and subject", func(t *testing.T) {
		r := valid
		r.Email = "not-an-email"
		r.Subject = "lawsuit"
		errs := r.Validate()
		assert.Equal(t, "Please enter a valid email address", errs["email"])
		assert.Equal(t, "Please select a valid subject", errs["subject"])
	})

	t.Run("Too long", func(t *testing.T) {
		r := valid
		r.Message = strings.Repeat("a", 5001)
		assert.Contains(t, r.Validate(), "message")
	})

	t.Run("Normalize", func(t *testing.T) {
		r := ContactRequest{Name: "  Ada ", Email: " ada@example.com\n"}
		r.Normalize()
		assert.Equal(t, "Ada", r.Name)
		assert.Equal(t, "ada@example.com", r.Email)
	})
}

func TestSEOFallbacks(t *testing.T) {
	seo := DefaultSEO("Title", "Desc").WithCanonical("https://x/").WithNoIndex()
	assert.Equal(t, "Title", seo.GetOGTitle())
	assert.Equal(t, "Desc", seo.GetOGDesc())
	assert.True(t, seo.NoIndex)

	seo.OGTitle = "Share title"
	assert.Equal(t, "Share title", seo.GetOGTitle())
}
