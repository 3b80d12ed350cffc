package base

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/wordy/internal/version"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

// Output formats accepted by -format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ClientCommand is embedded by commands that call the Wordy API.
type ClientCommand struct {
	*Command

	flagConfig  string
	flagFormat  string
	flagSession bool
}

func NewClientCommand(c *Command) *ClientCommand {
	return &ClientCommand{Command: c}
}

// ClientFlags registers the flags shared by API commands. session is the
// default of -session.
func (c *ClientCommand) ClientFlags(f *FlagSet, session bool) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to the wordy HCL config file. Settings can also come from\n"+
			"WORDY_* environment variables.",
	)
	f.StringVar(
		&c.flagFormat, "format", FormatJSON,
		"Output format (json, yaml).",
	)
	f.BoolVar(
		&c.flagSession, "session", session,
		"Run the call inside a session that is expired afterwards.",
	)
}

// NewClient creates a client from the configuration file and environment.
// The caller must close it.
func (c *ClientCommand) NewClient() (*wordy.Client, error) {
	if c.flagFormat != FormatJSON && c.flagFormat != FormatYAML {
		return nil, fmt.Errorf("unsupported output format %q", c.flagFormat)
	}

	cfg, err := c.Config.Load(c.flagConfig)
	if err != nil {
		return nil, err
	}
	if cfg.LogLevel != "" {
		c.Log.SetLevel(cfg.Level())
	}

	clientCfg, err := cfg.ClientConfig(c.Log)
	if err != nil {
		return nil, err
	}
	clientCfg.UserAgent = version.UserAgent()

	return wordy.New(clientCfg)
}

// WithClient runs fn with a new client and returns the exit code. With
// -session the call runs inside WithSession.
func (c *ClientCommand) WithClient(fn func(ctx context.Context, client *wordy.Client) error) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating wordy client: %v", err))
		return 1
	}
	defer client.Close()

	run := func(ctx context.Context) error {
		return fn(ctx, client)
	}
	if c.flagSession {
		err = client.WithSession(ctx, run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		c.UI.Error(fmt.Sprintf("error calling wordy: %v", err))
		return 1
	}
	return 0
}

// CallFunc performs one API call. Wrap typed endpoint calls with Result.
type CallFunc func(ctx context.Context, client *wordy.Client) (*wordy.Result, error)

// Call runs fn and prints the response body. It exits with 2 when Wordy
// reported a failure.
func (c *ClientCommand) Call(fn CallFunc) int {
	var res *wordy.Result
	code := c.WithClient(func(ctx context.Context, client *wordy.Client) error {
		var err error
		res, err = fn(ctx, client)
		return err
	})
	if code != 0 || res == nil {
		return code
	}
	return c.OutputResult(res)
}

// OutputResult prints the body of res and returns the exit code for it.
func (c *ClientCommand) OutputResult(res *wordy.Result) int {
	if err := c.Output(res.Raw); err != nil {
		c.UI.Error(fmt.Sprintf("error writing output: %v", err))
		return 1
	}
	if !res.Success {
		c.UI.Error("wordy reported a failure")
		return 2
	}
	return 0
}

// Result adapts a typed endpoint call to a CallFunc result.
func Result[T any, P interface {
	*T
	Envelope() *wordy.Result
}](res P, err error) (*wordy.Result, error) {
	if err != nil || res == nil {
		return nil, err
	}
	return res.Envelope(), nil
}

// Output prints a JSON document in the selected format.
func (c *ClientCommand) Output(raw json.RawMessage) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	var (
		out []byte
		err error
	)
	switch c.flagFormat {
	case FormatYAML:
		out, err = yaml.Marshal(yamlNumbers(doc))
	default:
		out, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return err
	}

	c.UI.Output(strings.TrimRight(string(out), "\n"))
	return nil
}

// yamlNumbers replaces json.Number values with int64 or float64 so YAML
// renders them as numbers rather than quoted strings.
func yamlNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = yamlNumbers(e)
		}
	case []any:
		for i, e := range t {
			t[i] = yamlNumbers(e)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	}
	return v
}
