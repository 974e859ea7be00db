// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jeranaias/lendbench-tui/internal/model"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the workbench API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeConnection
	ErrTypeTimeout
	ErrTypeNotFound
	ErrTypeServer
	ErrTypeInvalidResponse
	ErrTypeInvalidStatus
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable   = &ClientError{Type: ErrTypeConnection, Message: "workbench API is unreachable"}
	ErrTimeout       = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNotFound      = &ClientError{Type: ErrTypeNotFound, Message: "application not found"}
	ErrInvalidStatus = &ClientError{Type: ErrTypeInvalidStatus, Message: "invalid review status"}
)

// IsNotFound reports whether err is a not-found error from the API.
func IsNotFound(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeNotFound
}

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeTimeout
}

// IsInvalidStatus reports whether err is a rejected review-status value.
// These are caller contract violations surfaced before any network dispatch.
func IsInvalidStatus(err error) bool {
	var ce *ClientError
	return errors.As(err, &ce) && ce.Type == ErrTypeInvalidStatus
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the workbench API client.
type ClientConfig struct {
	// BaseURL is the backend base URL; all API paths are formed by
	// appending "/api" to it (default: http://127.0.0.1:8000)
	BaseURL string

	// Timeout for requests (default: 30s). Chat calls wait on an LLM
	// round-trip server-side, so this is deliberately generous.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:8000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the workbench backend API.
//
// The Client is stateless and safe for concurrent use. It never retries:
// every failure is terminal for that single attempt, and callers decide
// what (if anything) to do about it.
//
// Example:
//
//	client := api.NewClient(cfg.Server.BaseURL)
//	result, err := client.ListApplications(ctx, "")
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL.
// An empty baseURL falls back to the default.
func NewClient(baseURL string) *Client {
	cfg := DefaultConfig()
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return NewClientWithConfig(cfg)
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:8000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// apiURL joins the base URL, the /api prefix, and the given path.
func (c *Client) apiURL(path string) string {
	return c.config.BaseURL + "/api" + path
}

// =============================================================================
// APPLICATIONS
// =============================================================================

// ListApplications fetches the application list and aggregate stats.
// search is passed through verbatim as the filter parameter; empty search
// returns the unfiltered set. Filtering semantics are server-defined.
func (c *Client) ListApplications(ctx context.Context, search string) (*ListResult, error) {
	u := c.apiURL("/applications")
	if search != "" {
		u += "?search=" + url.QueryEscape(search)
	}

	var result ListResult
	if err := c.getJSON(ctx, u, &result); err != nil {
		return nil, err
	}
	if result.Applications == nil {
		result.Applications = []model.Application{}
	}
	return &result, nil
}

// GetApplication fetches one application, enriched for the detail view.
// Returns a not-found error when id does not resolve.
func (c *Client) GetApplication(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	if err := c.getJSON(ctx, c.apiURL("/applications/"+url.PathEscape(id)), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// UpdateReviewStatus transitions an application's review status.
//
// status must be one of the four enumerated values; anything else is a
// caller contract violation rejected here, before any network dispatch.
// The response body is not trusted: callers always refetch the list
// afterward for authoritative state.
func (c *Client) UpdateReviewStatus(ctx context.Context, id string, status model.ReviewStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	body, err := json.Marshal(reviewStatusRequest{ReviewStatus: status.String()})
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	resp, err := c.do(ctx, http.MethodPut, c.apiURL("/applications/"+url.PathEscape(id)+"/review-status"), body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return c.checkStatus(resp)
}

// =============================================================================
// CHAT
// =============================================================================

// SendChat sends one user message on the given session and returns the
// assistant's reply. applicationID is empty for the workbench-wide
// assistant and set for the per-application one.
func (c *Client) SendChat(ctx context.Context, sessionID, message, applicationID string) (string, error) {
	body, err := json.Marshal(chatRequest{
		SessionID:     sessionID,
		Message:       message,
		ApplicationID: applicationID,
	})
	if err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	resp, err := c.do(ctx, http.MethodPost, c.apiURL("/chat"), body)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return "", err
	}

	var reply chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode chat response", Cause: err}
	}
	return reply.Response, nil
}

// GetChatHistory fetches the stored messages of one session, oldest first.
func (c *Client) GetChatHistory(ctx context.Context, sessionID string) ([]model.ChatMessage, error) {
	var history historyResponse
	if err := c.getJSON(ctx, c.apiURL("/chat/"+url.PathEscape(sessionID)+"/history"), &history); err != nil {
		return nil, err
	}
	if history.Messages == nil {
		history.Messages = []model.ChatMessage{}
	}
	return history.Messages, nil
}

// =============================================================================
// SEED
// =============================================================================

// SeedDatabase asks the backend to (re)populate its demonstration data.
// Idempotent from the client's point of view.
func (c *Client) SeedDatabase(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, c.apiURL("/seed"), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	// Drain the ack; its contents are informational only.
	var ack seedResponse
	_ = json.NewDecoder(resp.Body).Decode(&ack)
	return nil
}

// =============================================================================
// INTERNAL HELPERS
// =============================================================================

// do issues a single request with a JSON body and maps transport failures
// onto the client error taxonomy.
func (c *Client) do(ctx context.Context, method, u string, body []byte) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeConnection, Message: "workbench API is unreachable", Cause: err}
	}
	return resp, nil
}

// getJSON issues a GET and decodes a 200 response into out.
func (c *Client) getJSON(ctx context.Context, u string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return nil
}

// checkStatus maps non-2xx responses onto the error taxonomy.
func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return &ClientError{
		Type:    ErrTypeServer,
		Message: "unexpected status from workbench API: " + resp.Status,
	}
}
