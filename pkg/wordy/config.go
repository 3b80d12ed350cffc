package wordy

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Config contains everything needed to talk to Wordy on behalf of one customer.
//
// APIKey, APISecret and CustomerID identify the caller and never change for
// the lifetime of a Client.
type Config struct {
	// Endpoint is the API base URL.
	// Default: DefaultEndpoint
	Endpoint string `json:"endpoint"`

	// PaymentEndpoint is the base of the payment page URL returned by PaymentURL.
	// Default: DefaultPaymentEndpoint
	PaymentEndpoint string `json:"payment_endpoint"`

	APIKey string `json:"api_key"`

	// APISecret signs requests until a session is started. It is never sent.
	APISecret string `json:"-"`

	CustomerID int64 `json:"customer_id"`

	// Timeout for a single HTTP exchange.
	// Default: 30 seconds
	Timeout time.Duration `json:"timeout"`

	// TLSVerify controls TLS certificate verification.
	// Set to false only for development against self-signed certificates.
	TLSVerify *bool `json:"tls_verify,omitempty"`

	// UserAgent is sent with every request when set.
	UserAgent string `json:"user_agent,omitempty"`

	// HTTPClient replaces the client built by NewHTTPClient. The Client takes
	// ownership of it.
	HTTPClient *http.Client `json:"-"`

	// Transport replaces the HTTP transport entirely. HTTPClient is ignored
	// when it is set.
	Transport Transport `json:"-"`

	// Logger (optional)
	Logger hclog.Logger `json:"-"`
}

// DefaultConfig returns a Config with production endpoints and defaults. The
// credentials still have to be filled in.
func DefaultConfig() *Config {
	tlsVerify := true
	return &Config{
		Endpoint:        DefaultEndpoint,
		PaymentEndpoint: DefaultPaymentEndpoint,
		Timeout:         30 * time.Second,
		TLSVerify:       &tlsVerify,
	}
}

func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.PaymentEndpoint == "" {
		c.PaymentEndpoint = defaults.PaymentEndpoint
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.TLSVerify == nil {
		c.TLSVerify = defaults.TLSVerify
	}
	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}
}

// Validate checks that the configuration can produce a working client.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Endpoint, validation.Required, validation.By(httpURL)),
		validation.Field(&c.PaymentEndpoint, validation.By(httpURL)),
		validation.Field(&c.APIKey, validation.Required),
		validation.Field(&c.APISecret, validation.Required),
		validation.Field(&c.CustomerID, validation.Required, validation.Min(int64(1))),
		validation.Field(&c.Timeout, validation.Min(time.Duration(1)).Error("must be positive")),
	)
}

func httpURL(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must use http or https scheme")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// NewHTTPClient creates the HTTP client a Client uses when none is supplied.
func (c *Config) NewHTTPClient() *http.Client {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}

	if c.TLSVerify != nil && !*c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   c.Timeout,
		Transport: transport,
	}
}
