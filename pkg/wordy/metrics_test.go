package wordy

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTransport answers every request with the same response or error.
type stubTransport struct {
	resp *Response
	err  error
}

func (s *stubTransport) Execute(context.Context, string, url.Values) (*Response, error) {
	return s.resp, s.err
}

func (s *stubTransport) Close() error { return nil }

func newStubClient(t *testing.T, tr Transport) *Client {
	t.Helper()
	cfg := validConfig()
	cfg.Transport = tr
	c, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMetrics_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		tr      *stubTransport
		call    func(c *Client) error
		outcome string
	}{
		{
			name: "success",
			op:   "customer/info",
			tr:   &stubTransport{resp: &Response{Status: 200, Body: []byte(`{"success":true}`)}},
			call: func(c *Client) error {
				_, err := c.CustomerInfo(context.Background())
				return err
			},
			outcome: outcomeSuccess,
		},
		{
			name: "remote failure",
			op:   "account/users",
			tr:   &stubTransport{resp: &Response{Status: 200, Body: []byte(`{"success":false}`)}},
			call: func(c *Client) error {
				_, err := c.AccountUsers(context.Background())
				return err
			},
			outcome: outcomeRemoteFailure,
		},
		{
			name: "malformed",
			op:   "base/testimonial",
			tr:   &stubTransport{resp: &Response{Status: 502, Body: []byte(`<html>bad gateway</html>`)}},
			call: func(c *Client) error {
				_, err := c.BaseTestimonial(context.Background())
				return err
			},
			outcome: outcomeMalformed,
		},
		{
			name: "transport",
			op:   "base/statistics",
			tr:   &stubTransport{err: errors.New("connection refused")},
			call: func(c *Client) error {
				_, err := c.BaseStatistics(context.Background())
				return err
			},
			outcome: outcomeTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := requestsTotal.WithLabelValues(tt.op, tt.outcome)
			before := testutil.ToFloat64(counter)

			_ = tt.call(newStubClient(t, tt.tr))

			assert.Equal(t, before+1, testutil.ToFloat64(counter))
		})
	}
}

func TestMalformedError_TruncatesBody(t *testing.T) {
	body := make([]byte, 1000)
	for i := range body {
		body[i] = 'x'
	}

	err := malformedError("base/info", &Response{Status: 500, Body: body}, errors.New("not json"))

	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Len(t, reqErr.Body, maxErrorBody+len("..."))
	assert.Equal(t, 500, reqErr.Status)
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Contains(t, err.Error(), "(HTTP 500)")
}
