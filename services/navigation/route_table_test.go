package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableResolve(t *testing.T) {
	page := PageFunc(nil)
	table := NewTable(
		Route{Pattern: "/", Name: "home", Page: page},
		Route{Pattern: "/askai", Name: "askai", Page: page},
		Route{Pattern: "/testimonials", Name: "testimonials", Page: page},
		Route{Pattern: "/testimonials/:category", Name: "testimonial", Page: page},
	)

	tests := []struct {
		path     string
		name     string
		key      string
		category string
	}{
		{"/", "home", "/", ""},
		{"", "home", "/", ""},
		{"/askai?description=Divorce", "askai", "/askai", ""},
		{"/askai/", "askai", "/askai", ""},
		{"/testimonials", "testimonials", "/testimonials", ""},
		{"/testimonials/expert", "testimonial", "/testimonials/expert", "expert"},
		{"/testimonials/expert#top", "testimonial", "/testimonials/expert", "expert"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, ok := table.Resolve(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.name, m.Route.Name)
			assert.Equal(t, tt.key, m.Key())
			assert.Equal(t, tt.category, m.Param("category"))
		})
	}
}

func TestTableResolveUnknown(t *testing.T) {
	page := PageFunc(nil)
	table := NewTable(
		Route{Pattern: "/", Name: "home", Page: page},
		Route{Pattern: "/about", Name: "about", Page: page},
		Route{Pattern: "/services", Name: "services", Page: page},
		Route{Pattern: "/testimonials", Name: "testimonials", Page: page},
		Route{Pattern: "/testimonials/:category", Name: "testimonial", Page: page},
		Route{Pattern: "/news", Name: "news", Page: page},
		Route{Pattern: "/askai", Name: "askai", Page: page},
	)

	for _, p := range []string{
		"/contact",
		"/about/team",
		"/testimonials/expert/extra",
		"/testimonials/expert/extra/more",
		"/askai/messages",
	} {
		m, ok := table.Resolve(p)
		assert.False(t, ok, p)
		assert.Nil(t, m.Route, p)
	}
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "/", NormalizePath(""))
	assert.Equal(t, "/", NormalizePath("/?x=1"))
	assert.Equal(t, "/news", NormalizePath("news"))
	assert.Equal(t, "/news", NormalizePath("/news//"))
	assert.Equal(t, "/about", NormalizePath("/services/../about"))
}

func TestRoutesReturnsCopy(t *testing.T) {
	table := NewTable(Route{Pattern: "/", Name: "home"})
	routes := table.Routes()
	routes[0].Name = "changed"
	assert.Equal(t, "home", table.Routes()[0].Name)
}
