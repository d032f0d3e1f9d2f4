package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sebasr/cloud-compute-demo/internal/auth"
	"github.com/sebasr/cloud-compute-demo/internal/config"
	"github.com/sebasr/cloud-compute-demo/internal/models"
)

const (
	pathHello = "/api/hello"

	// NoMessageFallback is returned when a successful response carries no message
	NoMessageFallback = "No message returned from backend."

	// maxErrorBody bounds how much of an error response is read
	maxErrorBody = 64 << 10
)

// HTTPClient calls the greeting service over HTTP
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	tokens     *auth.TokenService
	clientName string
}

var _ Client = (*HTTPClient)(nil)

// Option configures an HTTPClient
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is kept as given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithServiceToken makes every request carry a fresh service token naming clientName
func WithServiceToken(tokens *auth.TokenService, clientName string) Option {
	return func(c *HTTPClient) {
		c.tokens = tokens
		c.clientName = clientName
	}
}

// NewHTTPClient creates a client for the service at cfg.BackendURL. Requests
// time out after cfg.RequestTimeout and are never retried.
func NewHTTPClient(cfg config.ClientConfig, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimSuffix(cfg.BackendURL, "/"),
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BackendURL returns the configured service base URL
func (c *HTTPClient) BackendURL() string {
	return c.baseURL
}

// Hello posts name to the service and returns the greeting message.
// Errors are *TransportError or *ResponseError.
func (c *HTTPClient) Hello(ctx context.Context, name string) (string, error) {
	payload, err := json.Marshal(models.GreetingRequest{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to encode greeting request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathHello, bytes.NewReader(payload))
	if err != nil {
		return "", &TransportError{BackendURL: c.baseURL, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if c.tokens != nil {
		token, err := c.tokens.GenerateToken(c.clientName)
		if err != nil {
			return "", err
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransportError{BackendURL: c.baseURL, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeErrorResponse(resp)
	}

	var greeting models.GreetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&greeting); err != nil {
		return "", &ResponseError{
			StatusCode: resp.StatusCode,
			Detail:     fmt.Sprintf("invalid response body: %v", err),
		}
	}
	if greeting.Message == "" {
		return NoMessageFallback, nil
	}
	return greeting.Message, nil
}

func decodeErrorResponse(resp *http.Response) *ResponseError {
	respErr := &ResponseError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return respErr
	}

	var detail struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err != nil || len(detail.Detail) == 0 {
		return respErr
	}

	var text string
	if err := json.Unmarshal(detail.Detail, &text); err == nil {
		if text != "" {
			respErr.Detail = text
		}
		return respErr
	}

	// Non-string details are shown as raw JSON
	if string(detail.Detail) != "null" {
		respErr.Detail = string(detail.Detail)
	}
	return respErr
}
