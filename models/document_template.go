package models

// DocumentTemplate is a downloadable starting point listed on the documents page
type DocumentTemplate struct {
	Name        string
	Description string
	Category    string
}

// DocumentTemplates is the static template library
var DocumentTemplates = []DocumentTemplate{
	{Name: "Non-Disclosure Agreement", Description: "Protect confidential information", Category: "Business"},
	{Name: "Service Agreement", Description: "Contract for professional services", Category: "Business"},
	{Name: "Employment Contract", Description: "Standard employment agreement", Category: "Employment"},
	{Name: "Lease Agreement", Description: "Residential or commercial lease", Category: "Real Estate"},
	{Name: "Partnership Agreement", Description: "Business partnership contract", Category: "Business"},
	{Name: "Purchase Agreement", Description: "Agreement for sale of goods", Category: "Commercial"},
}
