package wordy_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/hashicorp-forge/wordy/pkg/wordy"
	"github.com/hashicorp-forge/wordy/pkg/wordy/wordytest"
)

const (
	testKey      = "test-key"
	testSecret   = "test-secret"
	testCustomer = 42
)

func testConfig(srv *wordytest.Server) *wordy.Config {
	cfg := wordy.DefaultConfig()
	cfg.Endpoint = srv.Endpoint()
	cfg.APIKey = testKey
	cfg.APISecret = testSecret
	cfg.CustomerID = testCustomer
	cfg.HTTPClient = srv.Client()
	cfg.Logger = hclog.NewNullLogger()
	return cfg
}

func newTestClient(t *testing.T) (*wordy.Client, *wordytest.Server) {
	t.Helper()

	srv := wordytest.NewServer(testKey, testSecret)
	t.Cleanup(srv.Close)

	client, err := wordy.New(testConfig(srv))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, srv
}

func TestNew_InvalidConfig(t *testing.T) {
	_, err := wordy.New(nil)
	require.Error(t, err)

	_, err = wordy.New(&wordy.Config{APIKey: "key"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wordy config")
}

func TestClient_SignedRequest(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("account/info", map[string]any{
		"success": true,
		"account": map[string]any{"id": testCustomer, "balance": "12.50"},
	})

	res, err := client.AccountInfo(context.Background())
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "12.50", res.Account["balance"])

	reqs := srv.RequestsFor("account/info")
	require.Len(t, reqs, 1)
	req := reqs[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.True(t, req.Signed)
	assert.True(t, req.SignatureValid)
	assert.Equal(t, testKey, req.APIKey)
	assert.Empty(t, req.Token)
	assert.Equal(t, "42", req.Param("customer_id"))
	assert.NotContains(t, req.Form, "signature")
	assert.NotContains(t, req.Form, "api_key")
}

func TestClient_UnsignedRequests(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("base", map[string]any{"success": true})
	srv.Respond("customer/create", map[string]any{
		"success":  true,
		"customer": map[string]any{"id": 7},
	})

	ctx := context.Background()

	_, err := client.BaseInfo(ctx)
	require.NoError(t, err)
	_, err = client.BaseEstimate(ctx, 250)
	require.NoError(t, err)

	created, err := client.CreateCustomer(ctx, wordy.NewCustomer{
		Email:       "jane@example.com",
		Password:    "hunter2",
		Confirm:     "hunter2",
		FirstName:   "Jane",
		LastName:    "Doe",
		CountryCode: "DK",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 7, created.Customer["id"])

	reqs := srv.Requests()
	require.Len(t, reqs, 3)

	assert.Equal(t, "base/info", reqs[0].Operation)
	assert.Equal(t, "base/estimate/word_count/250", reqs[1].Operation)
	assert.Equal(t, wordytest.Prefix+"/base/estimate/word_count/250", reqs[1].Path)
	assert.Equal(t, "customer/create", reqs[2].Operation)
	assert.Equal(t, "jane@example.com", reqs[2].Param("email"))
	assert.Equal(t, "DK", reqs[2].Param("country_code"))

	for _, r := range reqs {
		assert.False(t, r.Signed, r.Operation)
	}
}

func TestClient_RemoteFailureIsAResult(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("customer/info", map[string]any{"success": false, "message": "unknown customer"})

	res, err := client.CustomerInfo(context.Background())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.False(t, res.Success)

	var msg string
	found, err := res.Field("message", &msg)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "unknown customer", msg)
}

func TestClient_MalformedResponse(t *testing.T) {
	tests := []struct {
		name  string
		reply wordytest.Reply
	}{
		{name: "html error page", reply: wordytest.Reply{Status: http.StatusInternalServerError, Body: "<h1>Internal error</h1>"}},
		{name: "empty body", reply: wordytest.Raw("")},
		{name: "json array", reply: wordytest.Raw(`[{"success":true}]`)},
		{name: "truncated json", reply: wordytest.Raw(`{"success":tr`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t)
			srv.Handle("account/users", func(wordytest.Request) wordytest.Reply { return tt.reply })

			res, err := client.AccountUsers(context.Background())
			assert.Nil(t, res)
			require.ErrorIs(t, err, wordy.ErrMalformedResponse)
			assert.NotErrorIs(t, err, wordy.ErrTransport)

			var reqErr *wordy.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, "account/users", reqErr.Operation)
			assert.Equal(t, tt.reply.Status, reqErr.Status)
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Close()

	res, err := client.BaseStatistics(context.Background())
	assert.Nil(t, res)
	require.ErrorIs(t, err, wordy.ErrTransport)

	var reqErr *wordy.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "base/statistics", reqErr.Operation)
	assert.Zero(t, reqErr.Status)
}

func TestClient_ContextCanceled(t *testing.T) {
	client, srv := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.DocumentInfo(ctx, "d-1")
	require.ErrorIs(t, err, wordy.ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, srv.Requests())
}

func TestClient_Close(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("customer/info", map[string]any{"success": true})

	_, err := client.StartSession(context.Background(), time.Time{})
	require.NoError(t, err)

	require.NoError(t, client.Close())
	require.NoError(t, client.Close(), "closing twice is fine")

	_, ok := client.SessionToken()
	assert.False(t, ok)

	_, err = client.CustomerInfo(context.Background())
	assert.ErrorIs(t, err, wordy.ErrClosed)
	assert.Empty(t, srv.RequestsFor("customer/info"))
}

func TestClient_PaymentURL(t *testing.T) {
	client, _ := newTestClient(t)
	assert.Equal(t, "http://www.wordy.com/order/new/pay/order_id/9001/", client.PaymentURL("9001"))
	assert.EqualValues(t, testCustomer, client.CustomerID())
}

func TestClient_ConcurrentCallsStaySigned(t *testing.T) {
	client, srv := newTestClient(t)
	srv.Respond("document/info", map[string]any{
		"success":  true,
		"document": map[string]any{"id": "d-1", "type": "text", "status": "document_open"},
	})

	_, err := client.StartSession(context.Background(), time.Time{})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := client.DocumentInfo(context.Background(), "d-1")
			if err == nil && !res.Success {
				err = errors.New("document/info failed")
			}
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	for _, r := range srv.RequestsFor("document/info") {
		assert.True(t, r.SignatureValid)
		assert.Equal(t, "session-token-1", r.Token)
	}
}

func TestClient_NoGoroutineLeak(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	srv := wordytest.NewServer(testKey, testSecret)
	defer srv.Close()
	srv.Respond("base/info", map[string]any{"success": true})

	client, err := wordy.New(testConfig(srv))
	require.NoError(t, err)
	defer client.Close()

	err = client.WithSession(context.Background(), func(ctx context.Context) error {
		_, err := client.BaseInfo(ctx)
		return err
	})
	require.NoError(t, err)
}
