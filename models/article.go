package models

import "strings"

// Article status classes used for the status badge and icon
const (
	StatusClassSuccess = "success"
	StatusClassWarning = "warning"
)

// Article is one entry of the recent laws and rules feed
type Article struct {
	Title                string `json:"title"`
	Topic                string `json:"topic"`
	DateOfEvent          string `json:"date_of_event"`
	ImplementationStatus string `json:"implementation_status"`
	Description          string `json:"description"`
	Source               string `json:"source,omitempty"`
	Reference            string `json:"reference,omitempty"`
	Link                 string `json:"link,omitempty"`
}

// NewsFeed is the body returned by the news endpoint
type NewsFeed struct {
	Articles []Article `json:"recent_laws_and_rules_india"`
}

// StatusClass returns StatusClassSuccess when the law is implemented or active
func (a Article) StatusClass() string {
	status := strings.ToLower(a.ImplementationStatus)
	if strings.Contains(status, "implemented") || strings.Contains(status, "active") {
		return StatusClassSuccess
	}
	return StatusClassWarning
}

// HasDetails reports whether any of the optional reference fields are set
func (a Article) HasDetails() bool {
	return a.Source != "" || a.Reference != "" || a.Link != ""
}
