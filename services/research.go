package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"legal_ai_site/services/chat"
)

const (
	researchPath = "/api/ai_research"
	// EmptyAnswer is shown when the service answers without any text
	EmptyAnswer = "I received your question but the research service returned an empty answer. Please try rephrasing it."
)

type researchRequest struct {
	Query string `json:"query"`
}

type researchResponse struct {
	Response string `json:"response"`
	Result   string `json:"result"`
}

// ResearchClient calls the AI research endpoint. It implements chat.Researcher.
type ResearchClient struct {
	baseURL string
	client  *http.Client
}

// NewResearchClient creates a client with an explicit request timeout.
func NewResearchClient(baseURL string, timeout time.Duration) *ResearchClient {
	return &ResearchClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the configured service address.
func (c *ResearchClient) BaseURL() string {
	return c.baseURL
}

// Research posts the query and returns the answer text. Failures are
// returned as *chat.StatusError, *chat.TransportError or a plain error.
func (c *ResearchClient) Research(ctx context.Context, query string) (string, error) {
	body, err := json.Marshal(researchRequest{Query: query})
	if err != nil {
		return "", fmt.Errorf("failed to encode research request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+researchPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build research request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &chat.TransportError{Target: c.baseURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return "", &chat.StatusError{StatusCode: resp.StatusCode}
	}

	var result researchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode research response: %w", err)
	}

	return answerText(result), nil
}

// answerText prefers "response", then "result", then a generic fallback.
func answerText(r researchResponse) string {
	if strings.TrimSpace(r.Response) != "" {
		return r.Response
	}
	if strings.TrimSpace(r.Result) != "" {
		return r.Result
	}
	return EmptyAnswer
}
