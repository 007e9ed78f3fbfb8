// Package dialogflow is a client for the Dialogflow ES detectIntent REST API.
package dialogflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultBaseURL = "https://dialogflow.googleapis.com"

	// Scope is the OAuth scope required for detectIntent calls.
	Scope = "https://www.googleapis.com/auth/cloud-platform"

	defaultTimeout = 15 * time.Second
	// Maximum response body size to read for error messages.
	maxErrorBodySize = 1024
)

// TokenSource provides bearer tokens for outbound Google API calls.
type TokenSource interface {
	AccessToken(ctx context.Context, scope string) (string, error)
}

// Client calls the Dialogflow agent of a single project.
type Client struct {
	baseURL    string
	projectID  string
	language   string
	tokens     TokenSource
	httpClient *http.Client
}

// New creates a new Client for the given project and query language.
func New(projectID, language string, tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    defaultBaseURL,
		projectID:  projectID,
		language:   language,
		tokens:     tokens,
		httpClient: httpClient,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// DetectIntent sends one utterance to the agent session identified by
// sessionID and returns the fulfillment text. An empty string is a valid
// result when the agent matched no intent.
func (c *Client) DetectIntent(ctx context.Context, sessionID, utterance string) (string, error) {
	token, err := c.tokens.AccessToken(ctx, Scope)
	if err != nil {
		return "", fmt.Errorf("failed to get dialogflow access token: %w", err)
	}

	reqBody := detectIntentRequest{
		QueryInput: queryInput{
			Text: textInput{
				Text:         utterance,
				LanguageCode: c.language,
			},
		},
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal detectIntent request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/projects/%s/agent/sessions/%s:detectIntent",
		c.baseURL, c.projectID, url.PathEscape(sessionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("failed to create detectIntent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call detectIntent: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return "", fmt.Errorf("detectIntent returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var result detectIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode detectIntent response: %w", err)
	}
	return result.QueryResult.FulfillmentText, nil
}
