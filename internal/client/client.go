// Package client implements the EventConnect REST API access layer. Every
// operation builds a fresh request, attaches bearer authentication where
// required, and normalizes all failures into *domain.APIError. There is no
// retrying and no caching.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"eventconnect/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client talks to the EventConnect backend. The token is read through the
// provider port only; the client never touches persistent storage itself.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     domain.TokenProvider
	logger     *slog.Logger
}

// New returns a Client for the given base URL. A nil httpClient gets a
// default with a request timeout.
func New(baseURL string, httpClient *http.Client, tokens domain.TokenProvider, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		tokens:     tokens,
		logger:     logger,
	}
}

// do issues one request and decodes the JSON response into out (which may be
// nil for operations with no interesting body). authed operations fail fast
// with domain.ErrNotAuthenticated when no token is available; public
// operations never read the token at all.
func (c *Client) do(ctx context.Context, op, method, path string, body any, authed bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &domain.APIError{Op: op, Message: "failed to encode request", Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &domain.APIError{Op: op, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, ok := c.tokens.Token()
		if !ok {
			return &domain.APIError{
				Op:      op,
				Message: "authentication required",
				Err:     domain.ErrNotAuthenticated,
			}
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.APIError{Op: op, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(op, resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.APIError{
			Op:      op,
			Status:  resp.StatusCode,
			Message: "malformed response",
			Err:     err,
		}
	}
	return nil
}

// errorFromResponse prefers the server's message field, falling back to a
// generic description of the failed operation.
func (c *Client) errorFromResponse(op string, resp *http.Response) error {
	apiErr := &domain.APIError{Op: op, Status: resp.StatusCode}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	c.logger.Debug("api request failed", "op", op, "status", resp.StatusCode)
	return apiErr
}

// malformed builds the error for a 2xx response whose body does not match
// the operation's contract.
func malformed(op string, detail string) error {
	return &domain.APIError{Op: op, Message: "malformed response: " + detail}
}
