// Package mailer implements the outbound email relay over the Resend HTTP
// API. Delivery is best-effort: with no API key configured the client reports
// the send as skipped instead of failing the caller.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
)

const defaultBaseURL = "https://api.resend.com"

// ResendClient sends email through the Resend REST API.
type ResendClient struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

// Ensure ResendClient implements the Mailer port
var _ portssvc.Mailer = (*ResendClient)(nil)

// Option configures a ResendClient.
type Option func(*ResendClient)

// WithBaseURL overrides the API endpoint, used in tests.
func WithBaseURL(url string) Option {
	return func(c *ResendClient) { c.baseURL = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *ResendClient) { c.client = client }
}

// NewResendClient creates a mail relay client. An empty apiKey yields a
// client that skips every send.
func NewResendClient(apiKey, from string, opts ...Option) *ResendClient {
	c := &ResendClient{
		apiKey:  apiKey,
		from:    from,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send delivers one email. It returns (false, nil) when no API key is
// configured, (true, nil) on success, and (false, err) on a delivery failure.
func (c *ResendClient) Send(ctx context.Context, email portssvc.Email) (bool, error) {
	if c.apiKey == "" {
		return false, nil
	}

	body, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      email.To,
		ReplyTo: email.ReplyTo,
		Subject: email.Subject,
		HTML:    email.HTML,
	})
	if err != nil {
		return false, fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, fmt.Errorf("email API returned status %d: %s", resp.StatusCode, string(detail))
	}
	return true, nil
}
