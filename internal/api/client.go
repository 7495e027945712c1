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
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the chat client.
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

// Is matches on the error type so sentinel comparisons work after wrapping.
func (e *ClientError) Is(target error) bool {
	t, ok := target.(*ClientError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// ErrorType categorizes client errors for handling. Transport errors and
// application errors are kept distinct: the former means the server never
// answered, the latter means it answered with a failure payload.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeTransport
	ErrTypeTimeout
	ErrTypeApplication
	ErrTypeInvalidResponse
	ErrTypeCancelled
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable     = &ClientError{Type: ErrTypeTransport, Message: "chat server is unreachable"}
	ErrTimeout         = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrCancelled       = &ClientError{Type: ErrTypeCancelled, Message: "request cancelled"}
	ErrInvalidResponse = &ClientError{Type: ErrTypeInvalidResponse, Message: "malformed response from server"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the chat client.
type ClientConfig struct {
	// BaseURL is the chat server base URL (default: http://127.0.0.1:5000)
	BaseURL string

	// Timeout for requests (default: 120s; RAG retrieval can be slow)
	Timeout time.Duration

	// MaxRetries for transient transport failures (default: 2)
	MaxRetries int

	// RetryDelay between retries (default: 500ms)
	RetryDelay time.Duration

	// RequestsPerSecond caps the outbound request rate (0 = unlimited)
	RequestsPerSecond float64
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL:    "http://127.0.0.1:5000",
		Timeout:    120 * time.Second,
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the chat server.
//
// The Client is thread-safe for concurrent use, though callers are expected
// to keep at most one chat request in flight per conversation.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new chat client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a new chat client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	// Fill in defaults for any zero values
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 120 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 2
	}
	if config.RetryDelay == 0 {
		config.RetryDelay = 500 * time.Millisecond
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1)
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		limiter:    limiter,
	}
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckHealth verifies that the chat server is reachable and healthy.
func (c *Client) CheckHealth(ctx context.Context) (*HealthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/health", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeTransport,
			Message: "unexpected status from server: " + resp.Status,
		}
	}

	var health HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "malformed health response", Cause: err}
	}
	return &health, nil
}

// =============================================================================
// CHAT
// =============================================================================

// Chat sends the full message history to the server and returns the reply
// text. The history must already be in wire form (error messages filtered,
// bot messages mapped to "assistant").
//
// Cancellation via ctx yields ErrCancelled; transport failures are retried
// up to MaxRetries, application errors never are.
func (c *Client) Chat(ctx context.Context, messages []Message, language string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", classifyTransportError(ctx, err)
		}
	}

	body, err := json.Marshal(ChatRequest{Messages: messages, Language: language})
	if err != nil {
		return "", &ClientError{Type: ErrTypeUnknown, Message: "failed to encode request", Cause: err}
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", classifyTransportError(ctx, ctx.Err())
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
		}

		reply, err := c.doChat(ctx, body)
		if err == nil {
			return reply, nil
		}

		var ce *ClientError
		if errors.As(err, &ce) {
			// Only transport failures are worth retrying; the server saw
			// and rejected anything that produced an application error.
			if ce.Type != ErrTypeTransport {
				return "", err
			}
		}
		lastErr = err
	}
	return "", lastErr
}

// doChat performs a single POST /chat round trip.
func (c *Client) doChat(ctx context.Context, body []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ClientError{Type: ErrTypeTransport, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return "", classifyTransportError(ctx, err)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(data, &chatResp); err != nil {
		return "", &ClientError{Type: ErrTypeInvalidResponse, Message: "malformed response from server", Cause: err}
	}

	// The server reports failures in-band with a non-2xx status and an
	// error field. Either signal alone is treated as an application error.
	if resp.StatusCode != http.StatusOK || chatResp.Error != "" {
		msg := chatResp.Error
		if msg == "" {
			msg = "server returned " + resp.Status
		}
		return "", &ClientError{Type: ErrTypeApplication, Message: msg}
	}

	if chatResp.Response == nil {
		return "", ErrInvalidResponse
	}
	return *chatResp.Response, nil
}

// classifyTransportError maps low-level errors to client error types,
// distinguishing caller cancellation from timeouts and dead servers.
func classifyTransportError(ctx context.Context, err error) *ClientError {
	switch {
	case ctx.Err() == context.Canceled || errors.Is(err, context.Canceled):
		return ErrCancelled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrTimeout
	default:
		return &ClientError{Type: ErrTypeTransport, Message: "chat server is unreachable", Cause: err}
	}
}
