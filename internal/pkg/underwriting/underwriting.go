// Package underwriting calls the partner case-profile API. One attempt, a
// hard timeout, no retries.
package underwriting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultBaseURL = "https://apiv2.aryaxai.com"
	clientID       = "amey_balekundri_arya"
	projectName    = "lending_club_3DEWX2KF8X"

	// Case profiles can take minutes to materialize upstream.
	requestTimeout = 400 * time.Second
)

type Client struct {
	token   string
	baseURL string
	client  *http.Client
}

func New(token string) *Client {
	return &Client{
		token:   token,
		baseURL: defaultBaseURL,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewWithClient overrides the endpoint and transport, used by tests.
func NewWithClient(token string, baseURL string, httpClient *http.Client) *Client {
	return &Client{token: token, baseURL: baseURL, client: httpClient}
}

// CaseResult carries the upstream answer. Data is set when the partner
// returned valid JSON; RawText when it returned anything else.
type CaseResult struct {
	Data    json.RawMessage
	RawText string
}

func (c *Client) GetCaseProfile(ctx context.Context, tag string, id string) (*CaseResult, error) {
	payload := map[string]string{
		"client_id":         clientID,
		"project_name":      projectName,
		"unique_identifier": id,
		"tag":               tag,
		"refresh":           "true",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/project/get-case-profile", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("upstream request failed: status %d", resp.StatusCode)
	}

	if !json.Valid(raw) {
		return &CaseResult{RawText: string(raw)}, nil
	}

	return &CaseResult{Data: raw}, nil
}
