package models

// TestimonialCategory groups testimonials by the kind of evidence they give
type TestimonialCategory struct {
	ID          string
	Title       string
	Description string
	Icon        string
}

// Testimonial is a single quote shown on the home page and category pages
type Testimonial struct {
	Initials string
	Name     string
	Role     string
	Quote    string
	Category string
}

var TestimonialCategories = []TestimonialCategory{
	{ID: "eyewitness", Title: "Eyewitness Testimony", Description: "Direct accounts from legal professionals using our AI platform", Icon: "👁️"},
	{ID: "character", Title: "Character Testimony", Description: "Long-term user experiences and success stories", Icon: "👤"},
	{ID: "expert", Title: "Expert Testimony", Description: "Technical insights from legal tech experts", Icon: "⚖️"},
	{ID: "documentary", Title: "Documentary Evidence", Description: "Case studies and documented results", Icon: "📄"},
}

var Testimonials = []Testimonial{
	{Initials: "JS", Name: "John Smith", Role: "Partner, Smith & Associates", Category: "eyewitness", Quote: "LegalAI has transformed how we approach legal research. What used to take hours now takes minutes."},
	{Initials: "MD", Name: "Maria Davis", Role: "Corporate Counsel", Category: "eyewitness", Quote: "The document analysis feature is incredible. It catches details I might have missed and saves me hours."},
	{Initials: "AL", Name: "Alex Lee", Role: "Solo Practitioner", Category: "character", Quote: "LegalAI is like having a brilliant research assistant available 24/7. Absolutely game-changing."},
	{Initials: "RK", Name: "Rina Kapoor", Role: "Legal Technology Consultant", Category: "expert", Quote: "The research pipeline cites its sources and keeps answers grounded in statute and precedent."},
	{Initials: "TW", Name: "Tom Walker", Role: "Litigation Manager", Category: "documentary", Quote: "Across our last fifty matters, first-draft research time dropped by more than half."},
}

// FindTestimonialCategory returns the category with the given id
func FindTestimonialCategory(id string) (TestimonialCategory, bool) {
	for _, c := range TestimonialCategories {
		if c.ID == id {
			return c, true
		}
	}
	return TestimonialCategory{}, false
}

// TestimonialsFor returns the testimonials filed under a category
func TestimonialsFor(category string) []Testimonial {
	var out []Testimonial
	for _, t := range Testimonials {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}
