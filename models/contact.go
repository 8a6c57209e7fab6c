package models

import (
	"errors"
	"net/mail"
	"strings"
)

// ContactSubjects maps form values to their labels
var ContactSubjects = []struct {
	Value string
	Label string
}{
	{"general", "General Inquiry"},
	{"demo", "Request Demo"},
	{"pricing", "Pricing Information"},
	{"support", "Technical Support"},
	{"partnership", "Partnership Opportunities"},
	{"other", "Other"},
}

// ContactRequest is a submission of the contact form
type ContactRequest struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Company string `form:"company"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// Normalize trims every field
func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Company = strings.TrimSpace(r.Company)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

// Validate returns a map of field name to error message. An empty map means valid.
func (r ContactRequest) Validate() map[string]string {
	errs := map[string]string{}
	if r.Name == "" {
		errs["name"] = "Please enter your name"
	} else if len(r.Name) > 100 {
		errs["name"] = "Name must be 100 characters or fewer"
	}
	if r.Email == "" {
		errs["email"] = "Please enter your email"
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs["email"] = "Please enter a valid email address"
	}
	if r.Subject == "" {
		errs["subject"] = "Please select a subject"
	} else if SubjectLabel(r.Subject) == "" {
		errs["subject"] = "Please select a valid subject"
	}
	if r.Message == "" {
		errs["message"] = "Please enter a message"
	} else if len(r.Message) > 5000 {
		errs["message"] = "Message must be 5000 characters or fewer"
	}
	return errs
}

// ErrInvalidContact is returned when a submission fails validation
var ErrInvalidContact = errors.New("invalid contact request")

// SubjectLabel returns the label for a subject value, or "" when unknown
func SubjectLabel(value string) string {
	for _, s := range ContactSubjects {
		if s.Value == value {
			return s.Label
		}
	}
	return ""
}
