package handlers

import "legal_ai_site/models"

const defaultDescription = "AI-powered legal research, document analysis and the latest Indian laws and rules for legal professionals."

// SEO configurations for the routed pages, keyed by route name
var pageSEO = map[string]*models.SEO{
	"home": {
		Title:       "LegalAI - AI-Powered Legal Solutions",
		Description: "Transform your legal practice with artificial intelligence. Research faster, analyze documents smarter and deliver better outcomes for your clients.",
		Keywords:    "legal AI, legal research, document analysis, law firm software",
	},
	"askai": {
		Title:       "Ask AI | LegalAI",
		Description: "Get instant answers to your legal questions from our AI legal assistant.",
		Keywords:    "legal chatbot, AI legal assistant, legal questions",
	},
	"legaldocs": {
		Title:       "Legal Document Analysis | LegalAI",
		Description: "Upload contracts and legal documents for instant AI-powered analysis, risk assessment and key insights.",
		Keywords:    "contract analysis, document review, legal risk assessment",
	},
	"about": {
		Title:       "About Us | LegalAI",
		Description: "Learn about LegalAI's mission to make legal expertise accessible through artificial intelligence.",
	},
	"contact": {
		Title:       "Contact Us | LegalAI",
		Description: "Get in touch with the LegalAI team about demos, pricing, support or partnerships.",
	},
	"services": {
		Title:       "Services & Pricing | LegalAI",
		Description: "AI legal research, document analysis, contract generation, case management and legal analytics.",
		Keywords:    "legal services, legal analytics, contract generation, pricing",
	},
	"news": {
		Title:       "Latest Laws & Rules | LegalAI",
		Description: "Recent legal developments, amendments and regulatory changes in India.",
		Keywords:    "Indian law updates, new rules, legal news",
	},
	"testimonials": {
		Title:       "Testimonials | LegalAI",
		Description: "What legal professionals say about working with LegalAI.",
	},
	"testimonial_category": {
		Title:       "Testimonials | LegalAI",
		Description: "What legal professionals say about working with LegalAI.",
	},
}

// GetSEO returns a copy of the SEO configuration for a page, filling the
// social defaults. Unknown pages get the site defaults.
func GetSEO(page string) *models.SEO {
	seo, ok := pageSEO[page]
	if !ok {
		return models.DefaultSEO("LegalAI", defaultDescription)
	}
	out := *seo
	if out.OGType == "" {
		out.OGType = "website"
	}
	if out.TwitterCard == "" {
		out.TwitterCard = "summary_large_image"
	}
	return &out
}
