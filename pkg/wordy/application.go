package wordy

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// expiresAtLayout is the timestamp format application/startsession accepts.
const expiresAtLayout = "2006-01-02 15:04:05"

// StartSession asks Wordy for a session token. On success the token signs
// every later request instead of the API secret. A zero expiresAt lets Wordy
// pick the session window.
//
// Starting a session while one is active replaces the token. A successful
// reply without a token leaves the current session untouched.
func (c *Client) StartSession(ctx context.Context, expiresAt time.Time) (*SessionResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	params := c.customerParams()
	if !expiresAt.IsZero() {
		params["expires_at"] = expiresAt.Format(expiresAtLayout)
	}

	res, err := callLocked[SessionResult](ctx, c, "application/startsession", "/application/startsession/", params, true)
	if err != nil {
		return nil, err
	}

	if res.Success {
		if res.Session == nil || res.Session.Token == "" {
			c.logger.Warn("session reply carried no token, keeping the current session")
			return res, nil
		}
		c.session.SetToken(res.Session.Token)
		c.logger.Debug("session started", "expires_at", res.Session.ExpiresAt)
	}
	return res, nil
}

// ExpireSession ends the session on Wordy. The local token is cleared whatever
// the outcome, so later requests are signed with the API secret again.
func (c *Client) ExpireSession(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.session.Reset()

	return callLocked[Result](ctx, c, "application/expiresession", "/application/expiresession/", c.customerParams(), true)
}

// SessionToken returns the active session token, if any.
func (c *Client) SessionToken() (string, bool) {
	return c.session.Token()
}

// SetSessionToken adopts a token obtained elsewhere, for example by another
// process that started the session. An empty token ends the session locally.
func (c *Client) SetSessionToken(token string) {
	c.session.SetToken(token)
}

// ResetSession forgets the session token without telling Wordy.
func (c *Client) ResetSession() {
	c.session.Reset()
}

// WithSession starts a session, runs fn and expires the session again, even
// when fn fails. Errors from fn and from expiring are combined.
func (c *Client) WithSession(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	res, err := c.StartSession(ctx, time.Time{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	if !res.Success {
		return ErrNoSession
	}

	defer func() {
		if _, expireErr := c.ExpireSession(ctx); expireErr != nil {
			err = multierror.Append(err, fmt.Errorf("failed to expire session: %w", expireErr))
		}
	}()

	return fn(ctx)
}
