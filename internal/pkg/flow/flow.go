// Package flow calls the flow-orchestration partner and unwraps its nested
// response envelope down to the produced text.
package flow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Flow runs are the slowest call in the system.
const requestTimeout = 900 * time.Second

type Client struct {
	url    string
	apiKey string
	client *http.Client
}

func New(url string, apiKey string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// NewWithClient overrides the transport, used by tests.
func NewWithClient(url string, apiKey string, httpClient *http.Client) *Client {
	return &Client{url: url, apiKey: apiKey, client: httpClient}
}

type runResponse struct {
	Outputs []struct {
		Outputs []struct {
			Results struct {
				Message struct {
					Data struct {
						Text string `json:"text"`
					} `json:"data"`
				} `json:"message"`
			} `json:"results"`
		} `json:"outputs"`
	} `json:"outputs"`
}

// Run triggers the flow and returns the text at
// outputs[0].outputs[0].results.message.data.text.
func (c *Client) Run(ctx context.Context) (string, error) {
	body, err := json.Marshal(map[string]string{"output_type": "chat"})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making API request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error making API request: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("error making API request: status %d", resp.StatusCode)
	}

	var parsed runResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("error parsing response: %w", err)
	}

	if len(parsed.Outputs) == 0 || len(parsed.Outputs[0].Outputs) == 0 {
		return "", errors.New("error parsing response: no outputs")
	}

	return parsed.Outputs[0].Outputs[0].Results.Message.Data.Text, nil
}
