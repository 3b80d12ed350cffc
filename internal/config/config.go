package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"

	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

// Config contains the configuration for the wordy CLI.
type Config struct {
	// LogLevel is the level of the root logger (trace, debug, info, warn,
	// error). Default: info
	LogLevel string `hcl:"log_level,optional"`

	// Wordy configures the API client.
	Wordy *Wordy `hcl:"wordy,block"`
}

// Wordy configures access to the Wordy API.
type Wordy struct {
	// Endpoint is the API base URL.
	Endpoint string `hcl:"endpoint,optional"`

	// PaymentEndpoint is the base of the order payment page.
	PaymentEndpoint string `hcl:"payment_endpoint,optional"`

	APIKey    string `hcl:"api_key,optional"`
	APISecret string `hcl:"api_secret,optional"`

	CustomerID int64 `hcl:"customer_id,optional"`

	// Timeout for a single request, as a duration string like "30s".
	Timeout string `hcl:"timeout,optional"`

	// TLSVerify disables certificate verification when false.
	TLSVerify *bool `hcl:"tls_verify,optional"`
}

// Environment variables that override the configuration file.
const (
	EnvEndpoint        = "WORDY_ENDPOINT"
	EnvPaymentEndpoint = "WORDY_PAYMENT_ENDPOINT"
	EnvAPIKey          = "WORDY_API_KEY"
	EnvAPISecret       = "WORDY_API_SECRET"
	EnvCustomerID      = "WORDY_CUSTOMER_ID"
	EnvLogLevel        = "WORDY_LOG_LEVEL"
)

// Loader reads configuration and order files.
type Loader struct {
	Fs        afero.Fs
	LookupEnv func(key string) (string, bool)
}

// NewLoader returns a loader for the local filesystem and process environment.
func NewLoader() *Loader {
	return &Loader{
		Fs:        afero.NewOsFs(),
		LookupEnv: os.LookupEnv,
	}
}

// Load parses the configuration file at path and applies environment
// overrides. An empty path configures from the environment alone.
func (l *Loader) Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if err := l.decode(path, cfg); err != nil {
			return nil, err
		}
	}
	if cfg.Wordy == nil {
		cfg.Wordy = &Wordy{}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) decode(path string, target any) error {
	exists, err := afero.Exists(l.Fs, path)
	if err != nil {
		return fmt.Errorf("error checking file %q: %w", path, err)
	}
	if !exists {
		return fmt.Errorf("configuration file not found: %s", path)
	}

	src, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return fmt.Errorf("error reading file %q: %w", path, err)
	}

	if err := hclsimple.Decode(path, src, l.evalContext(), target); err != nil {
		return fmt.Errorf("failed to parse file %q: %w", path, err)
	}
	return nil
}

// evalContext exposes env("NAME") to configuration files.
func (l *Loader) evalContext() *hcl.EvalContext {
	env := function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			v, _ := l.LookupEnv(args[0].AsString())
			return cty.StringVal(v), nil
		},
	})

	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"env": env,
		},
	}
}

func (l *Loader) applyEnv(cfg *Config) error {
	for key, dst := range map[string]*string{
		EnvEndpoint:        &cfg.Wordy.Endpoint,
		EnvPaymentEndpoint: &cfg.Wordy.PaymentEndpoint,
		EnvAPIKey:          &cfg.Wordy.APIKey,
		EnvAPISecret:       &cfg.Wordy.APISecret,
		EnvLogLevel:        &cfg.LogLevel,
	} {
		if val, ok := l.LookupEnv(key); ok && val != "" {
			*dst = val
		}
	}

	if val, ok := l.LookupEnv(EnvCustomerID); ok && val != "" {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvCustomerID, err)
		}
		cfg.Wordy.CustomerID = id
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Info
	}
	return hclog.LevelFromString(c.LogLevel)
}

// ClientConfig converts the configuration into a validated client config.
func (c *Config) ClientConfig(logger hclog.Logger) (*wordy.Config, error) {
	cfg := wordy.DefaultConfig()
	cfg.Logger = logger

	w := c.Wordy
	if w == nil {
		w = &Wordy{}
	}
	if w.Endpoint != "" {
		cfg.Endpoint = w.Endpoint
	}
	if w.PaymentEndpoint != "" {
		cfg.PaymentEndpoint = w.PaymentEndpoint
	}
	if w.TLSVerify != nil {
		cfg.TLSVerify = w.TLSVerify
	}
	if w.Timeout != "" {
		timeout, err := time.ParseDuration(w.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid wordy timeout %q: %w", w.Timeout, err)
		}
		cfg.Timeout = timeout
	}
	cfg.APIKey = w.APIKey
	cfg.APISecret = w.APISecret
	cfg.CustomerID = w.CustomerID

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wordy configuration: %w", err)
	}
	return cfg, nil
}
