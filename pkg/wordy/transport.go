package wordy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Response is the raw outcome of a completed HTTP exchange.
type Response struct {
	Status int
	Body   []byte
}

// Transport executes a form-encoded POST. An error means the exchange did not
// complete; any status code with a readable body is a Response.
type Transport interface {
	Execute(ctx context.Context, rawURL string, form url.Values) (*Response, error)
	Close() error
}

// HTTPTransport is the Transport backed by a single *http.Client that lives as
// long as the Wordy client.
type HTTPTransport struct {
	client    *http.Client
	userAgent string
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport wraps client. The transport owns it from now on: Close
// releases its idle connections.
func NewHTTPTransport(client *http.Client, userAgent string) *HTTPTransport {
	return &HTTPTransport{client: client, userAgent: userAgent}
}

// Execute sends form to rawURL and reads the whole response body.
func (t *HTTPTransport) Execute(ctx context.Context, rawURL string, form url.Values) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &Response{Status: resp.StatusCode, Body: body}, nil
}

// Close releases idle connections held by the underlying client.
func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
