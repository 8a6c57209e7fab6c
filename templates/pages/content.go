package pages

import "legal_ai_site/models"

const turnstileScript = "https://challenges.cloudflare.com/turnstile/v0/api.js"

// ContactForm is the render state of the contact form
type ContactForm struct {
	Values  models.ContactRequest
	Errors  map[string]string
	Success bool
	Error   string
	SiteKey string
}

// Offering is a product card on the services page
type Offering struct {
	Icon        string
	Title       string
	Description string
	Features    []string
}

var Offerings = []Offering{
	{"🔍", "AI Legal Research", "Advanced AI-powered legal research that searches through millions of cases, statutes, and legal documents in seconds.",
		[]string{"Natural language search queries", "Relevance ranking and filtering", "Citation analysis and verification", "Real-time legal updates"}},
	{"📄", "Document Analysis", "Intelligent document review and analysis that identifies key clauses, risks, and compliance issues automatically.",
		[]string{"Contract risk assessment", "Clause extraction and analysis", "Compliance checking", "Redlining suggestions"}},
	{"🗂️", "Case Management", "Comprehensive case management platform with AI-driven insights, deadline tracking, and workflow automation.",
		[]string{"Automated deadline tracking", "Case outcome prediction", "Client communication tools", "Document organization"}},
	{"✍️", "Contract Generation", "AI-powered contract generation and customization based on your specific requirements and industry standards.",
		[]string{"Template library access", "Custom clause generation", "Industry-specific contracts", "Version control and tracking"}},
	{"💬", "Legal Chatbot", "24/7 AI assistant that answers legal questions, provides guidance, and helps with routine legal tasks.",
		[]string{"Multi-language support", "Context-aware responses", "Integration with your systems"}},
	{"📊", "Legal Analytics", "Powerful analytics and reporting tools that provide insights into legal trends, case outcomes, and performance metrics.",
		[]string{"Performance analytics", "Trend analysis", "Outcome predictions", "Custom reporting"}},
}

// Plan is a pricing tier
type Plan struct {
	Name        string
	Price       string
	Period      string
	Description string
	Features    []string
	Featured    bool
}

var Plans = []Plan{
	{Name: "Starter", Price: "$99", Period: "per month", Description: "Perfect for solo practitioners and small firms",
		Features: []string{"AI Legal Research", "Basic Document Analysis", "Email Support"}},
	{Name: "Professional", Price: "$299", Period: "per month", Description: "Ideal for growing law firms and teams", Featured: true,
		Features: []string{"Everything in Starter", "Advanced Document Analysis", "Contract Generation", "Priority Support"}},
	{Name: "Enterprise", Price: "Custom", Period: "contact us", Description: "For large firms with custom needs",
		Features: []string{"Everything in Professional", "Custom Integrations", "Dedicated Account Manager", "On-premise Deployment"}},
}

// TeamMember is shown on the about page
type TeamMember struct {
	Name string
	Role string
	Bio  string
}

var Team = []TeamMember{
	{"Dr. Sarah Chen", "CEO & Co-Founder", "Former BigLaw partner with 15+ years in corporate law. PhD in Computer Science from Stanford."},
	{"Michael Rodriguez", "CTO & Co-Founder", "AI researcher with expertise in natural language processing. Former Google AI team lead."},
	{"Jennifer Park", "Chief Legal Officer", "Constitutional law expert with Supreme Court clerkship. Harvard Law School JD."},
	{"David Kim", "Head of Product", "Legal tech veteran with 10+ years building lawyer-focused software solutions."},
}

// Milestone is one step of the company timeline
type Milestone struct {
	Year        string
	Title       string
	Description string
}

var Milestones = []Milestone{
	{"2021", "Company Founded", "LegalAI was founded by legal and AI experts with a vision to democratize legal services."},
	{"2022", "Product Launch", "Launched our first AI-powered legal research platform serving 100+ law firms."},
	{"2023", "Series A Funding", "Raised $25M Series A to expand our AI capabilities and team."},
	{"2024", "Global Expansion", "Expanded to serve legal professionals in 15+ countries worldwide."},
}

// SampleQuestions prefill the assistant's input
var SampleQuestions = []string{
	"What are the elements of a valid contract?",
	"Explain the difference between negligence and gross negligence",
	"What is intellectual property law?",
	"How does the discovery process work in litigation?",
	"What are my rights as a tenant?",
}

const Disclaimer = "This AI assistant provides general legal information for educational purposes only. " +
	"It does not constitute legal advice and should not be relied upon as a substitute for consultation with a qualified attorney. " +
	"For specific legal matters, please consult with a licensed legal professional."
