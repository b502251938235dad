// Package api implements the HTTP client for the Puter drivers endpoint
// and the per-driver probe built on top of it.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	DefaultEndpoint = "https://api.puter.com/drivers/call"
	DefaultOrigin   = "https://puter.com"

	// DriverClaude routes to Anthropic natively; DriverOpenRouter goes
	// through the OpenRouter aggregator.
	DriverClaude     = "claude"
	DriverOpenRouter = "openrouter"

	chatInterface  = "puter-chat-completion"
	completeMethod = "complete"
)

// Envelope is the request body posted to the drivers endpoint.
type Envelope struct {
	Interface string       `json:"interface"`
	Driver    string       `json:"driver"`
	Method    string       `json:"method"`
	Args      EnvelopeArgs `json:"args"`
}

// EnvelopeArgs holds the chat-completion arguments. The endpoint accepts
// the OpenAI message wire form, so the messages reuse go-openai's type.
type EnvelopeArgs struct {
	Messages []openai.ChatCompletionMessage `json:"messages"`
	Model    string                         `json:"model"`
}

// Client issues drivers calls. The bearer token is held for the duration
// of one comparison run and never persisted.
type Client struct {
	Endpoint   string
	Origin     string
	Token      string
	HTTPClient *http.Client
}

// NewClient creates a Client. Empty endpoint and origin fall back to the
// Puter defaults; a nil httpClient falls back to http.DefaultClient.
func NewClient(endpoint, origin, token string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if origin == "" {
		origin = DefaultOrigin
	}

	return &Client{
		Endpoint:   endpoint,
		Origin:     origin,
		Token:      token,
		HTTPClient: httpClient,
	}
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

// Call posts one envelope and returns the decoded reply plus wall-clock
// latency in milliseconds, measured from just before the request is
// issued until the body is fully decoded. Transport and decode failures
// come back as a synthetic failed DriverResponse; nothing is retried.
// Context cancellation surfaces the same way.
func (c *Client) Call(ctx context.Context, driver, model, prompt string) (DriverResponse, int64) {
	env := Envelope{
		Interface: chatInterface,
		Driver:    driver,
		Method:    completeMethod,
		Args: EnvelopeArgs{
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Model: model,
		},
	}

	body, err := json.Marshal(env)
	if err != nil {
		return failedResponse(fmt.Errorf("marshal envelope: %w", err)), 0
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return failedResponse(fmt.Errorf("build request: %w", err)), latencyMs(start)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", c.Origin)
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return failedResponse(fmt.Errorf("do request: %w", err)), latencyMs(start)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return failedResponse(fmt.Errorf("read response: %w", err)), latencyMs(start)
	}

	var decoded DriverResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		// The endpoint reports provider errors as JSON with
		// success=false, so a body that won't decode means the
		// transport itself misbehaved.
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return failedResponse(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, bytes.TrimSpace(respBody))), latencyMs(start)
		}
		return failedResponse(fmt.Errorf("decode response: %w", err)), latencyMs(start)
	}

	return decoded, latencyMs(start)
}

func latencyMs(start time.Time) int64 {
	ms := time.Since(start).Milliseconds()
	if ms < 0 {
		return 0
	}
	return ms
}

func failedResponse(err error) DriverResponse {
	return DriverResponse{
		Error: &DriverError{Message: err.Error()},
	}
}
