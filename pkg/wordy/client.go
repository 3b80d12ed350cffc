package wordy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Client calls the Wordy API v2 on behalf of one customer.
//
// A Client owns its transport from New until Close. Calls on one Client are
// serialized: each method holds the client for its whole round trip, so
// callers that need parallel requests should use separate clients.
type Client struct {
	config    *Config
	session   *SessionState
	builder   *RequestBuilder
	transport Transport
	logger    hclog.Logger

	mu     sync.Mutex
	closed bool
}

// New validates cfg and creates a client with no active session.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("wordy config is required")
	}

	config := *cfg
	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wordy config: %w", err)
	}

	transport := config.Transport
	if transport == nil {
		httpClient := config.HTTPClient
		if httpClient == nil {
			httpClient = config.NewHTTPClient()
		}
		transport = NewHTTPTransport(httpClient, config.UserAgent)
	}

	session := NewSessionState(config.APISecret)

	return &Client{
		config:    &config,
		session:   session,
		builder:   NewRequestBuilder(config.Endpoint, config.APIKey, session),
		transport: transport,
		logger:    config.Logger.Named("wordy"),
	}, nil
}

// Close ends the local session and releases the transport. Calls made after
// Close fail with ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.session.Reset()
	return c.transport.Close()
}

// CustomerID returns the customer the client acts for.
func (c *Client) CustomerID() int64 {
	return c.config.CustomerID
}

func (c *Client) customerParams() Params {
	p := Params{}
	p.SetInt("customer_id", c.config.CustomerID)
	return p
}

// envelope is implemented by every result type through the embedded Result.
type envelope interface {
	rawSetter
	ok() bool
}

func (r *Result) ok() bool {
	return r.Success
}

// call locks the client and performs a JSON call.
func call[T any, P interface {
	*T
	envelope
}](ctx context.Context, c *Client, op, path string, params Params, sign bool) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return callLocked[T, P](ctx, c, op, path, params, sign)
}

// callLocked performs a JSON call. The caller holds c.mu.
func callLocked[T any, P interface {
	*T
	envelope
}](ctx context.Context, c *Client, op, path string, params Params, sign bool) (*T, error) {
	start := time.Now()
	resp, err := c.roundTrip(ctx, op, path, params, sign)
	if err != nil {
		return nil, err
	}

	result := P(new(T))
	if err := decode(resp.Body, result); err != nil {
		observeRequest(op, outcomeMalformed, time.Since(start))
		return nil, malformedError(op, resp, err)
	}

	outcome := outcomeSuccess
	if !result.ok() {
		outcome = outcomeRemoteFailure
		c.logger.Debug("wordy reported failure", "operation", op, "status", resp.Status)
	}
	observeRequest(op, outcome, time.Since(start))

	return (*T)(result), nil
}

// roundTrip builds and executes one request. The caller holds c.mu.
func (c *Client) roundTrip(ctx context.Context, op, path string, params Params, sign bool) (*Response, error) {
	if c.closed {
		return nil, ErrClosed
	}

	req := c.builder.Build(path, params, sign)
	logger := c.logger.With("operation", op, "request_id", uuid.NewString())

	logger.Debug("sending request",
		"path", req.Path,
		"signed", req.Signed,
		"session", c.session.Active(),
		"params", len(req.Form),
	)

	start := time.Now()
	resp, err := c.transport.Execute(ctx, req.URL, req.Form)
	if err != nil {
		observeRequest(op, outcomeTransport, time.Since(start))
		logger.Warn("request failed", "error", err, "duration", time.Since(start))
		return nil, transportError(op, err)
	}

	logger.Debug("received response",
		"status", resp.Status,
		"bytes", len(resp.Body),
		"duration", time.Since(start),
	)
	return resp, nil
}

func decode(body []byte, result envelope) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return errors.New("response is not a JSON object")
	}
	if err := json.Unmarshal(trimmed, result); err != nil {
		return err
	}
	result.setRaw(trimmed)
	return nil
}

// PaymentURL returns the page where the customer pays for an order.
func (c *Client) PaymentURL(orderID ID) string {
	return strings.TrimRight(c.config.PaymentEndpoint, "/") + "/" + orderID.String() + "/"
}
