package models

import "net/url"

// LegalService is a practice area card. Selecting one opens the assistant
// with the description prefilled.
type LegalService struct {
	Slug        string
	Title       string
	Description string
	Icon        string
}

// AskURL returns the assistant link carrying the description as payload
func (s LegalService) AskURL() string {
	return "/askai?" + url.Values{"description": {s.Description}}.Encode()
}

// LegalServices lists the practice areas shown on the home grid
var LegalServices = []LegalService{
	{Slug: "criminal-law", Title: "Criminal Law", Icon: "⚖️", Description: "Get expert guidance on criminal charges, defense strategies, and your rights in criminal proceedings."},
	{Slug: "family-law", Title: "Family Law", Icon: "👪", Description: "Navigate family matters including custody, support, adoption, and domestic relations with legal clarity."},
	{Slug: "estate-planning", Title: "Estate Planning", Icon: "📜", Description: "Protect your legacy with comprehensive estate planning, wills, trusts, and inheritance strategies."},
	{Slug: "divorce", Title: "Divorce", Icon: "💔", Description: "Understand divorce procedures, asset division, alimony, and child custody arrangements."},
	{Slug: "employment-law", Title: "Employment Law", Icon: "💼", Description: "Know your workplace rights, discrimination issues, wrongful termination, and employment contracts."},
	{Slug: "landlord-tenant", Title: "Landlord & Tenant Law", Icon: "🏢", Description: "Resolve rental disputes, lease agreements, evictions, and tenant rights issues effectively."},
	{Slug: "personal-injury", Title: "Personal Injury", Icon: "🩹", Description: "Seek compensation for injuries caused by negligence, accidents, and medical malpractice."},
	{Slug: "car-accident", Title: "Car Accident", Icon: "🚗", Description: "Handle auto accident claims, insurance disputes, and liability issues with expert legal advice."},
	{Slug: "medical-malpractice", Title: "Medical Malpractice", Icon: "🩺", Description: "Get legal support for medical errors, patient rights, and healthcare provider negligence."},
	{Slug: "civil-rights", Title: "Civil Rights", Icon: "🏛️", Description: "Safeguard your civil liberties against discrimination, police misconduct, and constitutional violations."},
	{Slug: "business-law", Title: "Business Law", Icon: "🤝", Description: "Expert guidance on business formation, contracts, compliance, and commercial disputes."},
	{Slug: "educational-law", Title: "Educational Law", Icon: "🎓", Description: "Resolve school-related legal issues, including student rights, discipline, and special education matters."},
}
