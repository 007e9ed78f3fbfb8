// Package sheets is a client for the Google Sheets spreadsheets.values API.
package sheets

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
	defaultBaseURL = "https://sheets.googleapis.com"

	// Scope is the OAuth scope required for reading and appending values.
	Scope = "https://www.googleapis.com/auth/spreadsheets"

	defaultTimeout   = 15 * time.Second
	maxErrorBodySize = 1024
)

// TokenSource provides bearer tokens for outbound Google API calls.
type TokenSource interface {
	AccessToken(ctx context.Context, scope string) (string, error)
}

// Client reads and appends cell ranges of a spreadsheet.
type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values"`
}

// New creates a new Client.
func New(tokens TokenSource, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    defaultBaseURL,
		tokens:     tokens,
		httpClient: httpClient,
	}
}

// WithBaseURL overrides the API endpoint. Used by tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// GetValues fetches all rows of the given A1-notation range.
func (c *Client) GetValues(ctx context.Context, spreadsheetID, cellRange string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(cellRange))

	body, err := c.send(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("failed to unmarshal values response: %w", err)
	}
	return vr.Values, nil
}

// Append appends one row after the last row of the given range.
func (c *Client) Append(ctx context.Context, spreadsheetID, cellRange string, row []string) error {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s:append?valueInputOption=RAW",
		c.baseURL, url.PathEscape(spreadsheetID), url.PathEscape(cellRange))

	reqBytes, err := json.Marshal(valueRange{Values: [][]string{row}})
	if err != nil {
		return fmt.Errorf("failed to marshal append request: %w", err)
	}

	if _, err := c.send(ctx, http.MethodPost, endpoint, reqBytes); err != nil {
		return err
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	token, err := c.tokens.AccessToken(ctx, Scope)
	if err != nil {
		return nil, fmt.Errorf("failed to get sheets access token: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call sheets API: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheets response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if len(respBody) > maxErrorBodySize {
			respBody = respBody[:maxErrorBodySize]
		}
		return nil, fmt.Errorf("sheets API returned status %d: %s", resp.StatusCode, string(respBody))
	}
	return respBody, nil
}
