package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"JaundiceRate/internal/ports"
)

// ErrBadStatus marks a reachable URL that answered with a non-success code.
var ErrBadStatus = errors.New("non-success response status")

// maxBodyBytes caps how much of a response we are willing to read; article
// pages beyond this are almost certainly not articles.
const maxBodyBytes = 8 << 20

// Client fetches raw page content over HTTP. One client is shared by all
// concurrent pipelines of a batch; per-call deadlines come from the caller
// context, not from the underlying http.Client.
type Client struct {
	http      *http.Client
	userAgent string
}

var _ ports.Fetcher = (*Client)(nil)

// NewClient wires an HTTP client; a nil client falls back to a plain one
// with no global timeout, because stage deadlines are context-driven.
func NewClient(client *http.Client) *Client {
	if client == nil {
		client = &http.Client{}
	}
	return &Client{http: client, userAgent: "JaundiceRate/1.0"}
}

// Fetch retrieves the page body as a string. Deadline expiry surfaces as
// an error wrapping context.DeadlineExceeded.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%s answered %s: %w", url, resp.Status, ErrBadStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}

	return string(body), nil
}
