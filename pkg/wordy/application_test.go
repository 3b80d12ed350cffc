package wordy_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/wordy/pkg/wordy"
	"github.com/hashicorp-forge/wordy/pkg/wordy/wordytest"
)

func TestClient_StartSession(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("account/info", map[string]any{"success": true})
	ctx := context.Background()

	expiresAt := time.Date(2031, time.March, 4, 5, 6, 7, 0, time.UTC)
	res, err := client.StartSession(ctx, expiresAt)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Session)
	assert.Equal(t, "session-token-1", res.Session.Token)
	assert.Equal(t, "2031-03-04 05:06:07", res.Session.ExpiresAt)

	token, ok := client.SessionToken()
	assert.True(t, ok)
	assert.Equal(t, "session-token-1", token)

	start := srv.RequestsFor("application/startsession")
	require.Len(t, start, 1)
	assert.True(t, start[0].SignatureValid, "startsession is signed with the secret")
	assert.Empty(t, start[0].Token)
	assert.Equal(t, "42", start[0].Param("customer_id"))
	assert.Equal(t, "2031-03-04 05:06:07", start[0].Param("expires_at"))

	_, err = client.AccountInfo(ctx)
	require.NoError(t, err)

	info := srv.RequestsFor("account/info")
	require.Len(t, info, 1)
	assert.Equal(t, "session-token-1", info[0].Token)
	assert.True(t, info[0].SignatureValid, "later requests are signed with the session token")
}

func TestClient_StartSessionRefused(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("application/startsession", map[string]any{"success": false, "message": "bad key"})

	res, err := client.StartSession(context.Background(), time.Time{})
	require.NoError(t, err)
	assert.False(t, res.Success)

	_, ok := client.SessionToken()
	assert.False(t, ok)
	assert.Empty(t, srv.RequestsFor("application/startsession")[0].Param("expires_at"))
}

func TestClient_StartSessionTwiceReplacesToken(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.StartSession(ctx, time.Time{})
	require.NoError(t, err)
	_, err = client.StartSession(ctx, time.Time{})
	require.NoError(t, err)

	token, _ := client.SessionToken()
	assert.Equal(t, "session-token-2", token)
}

func TestClient_StartSessionWithoutTokenKeepsSession(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	_, err := client.StartSession(ctx, time.Time{})
	require.NoError(t, err)

	srv.Respond("application/startsession", map[string]any{
		"success": true,
		"session": map[string]any{"token": ""},
	})
	res, err := client.StartSession(ctx, time.Time{})
	require.NoError(t, err)
	assert.True(t, res.Success)

	token, ok := client.SessionToken()
	assert.True(t, ok)
	assert.Equal(t, "session-token-1", token)
}

func TestClient_ExpireSession(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(srv *wordytest.Server)
		success bool
		wantErr error
	}{
		{
			name:    "accepted",
			setup:   func(*wordytest.Server) {},
			success: true,
		},
		{
			name: "rejected",
			setup: func(srv *wordytest.Server) {
				srv.Respond("application/expiresession", map[string]any{"success": false})
			},
		},
		{
			name: "malformed",
			setup: func(srv *wordytest.Server) {
				srv.Handle("application/expiresession", func(wordytest.Request) wordytest.Reply {
					return wordytest.Raw("Session expired!")
				})
			},
			wantErr: wordy.ErrMalformedResponse,
		},
		{
			name:    "transport failure",
			setup:   func(srv *wordytest.Server) { srv.Close() },
			wantErr: wordy.ErrTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t)
			ctx := context.Background()

			_, err := client.StartSession(ctx, time.Time{})
			require.NoError(t, err)

			tt.setup(srv)
			res, err := client.ExpireSession(ctx)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.success, res.Success)
			}

			_, ok := client.SessionToken()
			assert.False(t, ok, "the local token is cleared whatever the outcome")
		})
	}
}

func TestClient_RequestsAfterExpireUseSecret(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("customer/info", map[string]any{"success": true})
	ctx := context.Background()

	_, err := client.StartSession(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, srv.ActiveTokens())

	res, err := client.ExpireSession(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Zero(t, srv.ActiveTokens())

	expire := srv.RequestsFor("application/expiresession")
	require.Len(t, expire, 1)
	assert.Equal(t, "session-token-1", expire[0].Token, "expiresession is signed with the session")

	_, err = client.CustomerInfo(ctx)
	require.NoError(t, err)

	info := srv.RequestsFor("customer/info")
	require.Len(t, info, 1)
	assert.Empty(t, info[0].Token)
	assert.True(t, info[0].SignatureValid)
}

func TestClient_SetSessionToken(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("account/users", map[string]any{"success": true, "customers": []any{}, "editors": []any{}})

	client.SetSessionToken("shared-token")
	_, err := client.AccountUsers(context.Background())
	require.NoError(t, err)

	reqs := srv.RequestsFor("account/users")
	require.Len(t, reqs, 1)
	assert.Equal(t, "shared-token", reqs[0].Token)

	client.ResetSession()
	_, ok := client.SessionToken()
	assert.False(t, ok)
}

func TestClient_WithSession(t *testing.T) {
	t.Run("runs fn inside a session", func(t *testing.T) {
		client, srv := newTestClient(t)

		err := client.WithSession(context.Background(), func(context.Context) error {
			token, ok := client.SessionToken()
			assert.True(t, ok)
			assert.Equal(t, "session-token-1", token)
			return nil
		})
		require.NoError(t, err)

		_, ok := client.SessionToken()
		assert.False(t, ok)
		assert.Zero(t, srv.ActiveTokens())
	})

	t.Run("expires the session when fn fails", func(t *testing.T) {
		client, srv := newTestClient(t)
		errBoom := errors.New("boom")

		err := client.WithSession(context.Background(), func(context.Context) error {
			return errBoom
		})
		require.ErrorIs(t, err, errBoom)
		assert.Zero(t, srv.ActiveTokens())
	})

	t.Run("combines fn and expire errors", func(t *testing.T) {
		client, srv := newTestClient(t)
		errBoom := errors.New("boom")

		err := client.WithSession(context.Background(), func(context.Context) error {
			srv.Close()
			return errBoom
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errBoom)
		assert.ErrorIs(t, err, wordy.ErrTransport)
		assert.Contains(t, err.Error(), "failed to expire session")
	})

	t.Run("session refused", func(t *testing.T) {
		client, srv := newTestClient(t)
		srv.Respond("application/startsession", map[string]any{"success": false})

		called := false
		err := client.WithSession(context.Background(), func(context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, wordy.ErrNoSession)
		assert.False(t, called)
	})
}
