package order

import (
	"context"
	"flag"
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Place orders and pay for them"
}

func (c *Command) Help() string {
	return `Usage: wordy order <subcommand> [options]

  This command groups subcommands for Wordy orders.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type CreateCommand struct {
	*base.ClientCommand

	flagFile     string
	flagBrief    string
	flagLanguage string
}

func (c *CreateCommand) Synopsis() string {
	return "Place an order described in an HCL file"
}

func (c *CreateCommand) Help() string {
	return `Usage: wordy order create -file=<order.hcl> [options]

  Places an order with one document per field block of the order file:

      brief         = "Please proofread"
      language_code = "GB"

      field "post_title" {
        type  = "shorttext"
        value = "Hello"
      }

      metadata = { source = "cli" }

  Fields with an unknown type, an empty title or an empty value are not sent.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.ClientFlags(f, true)

	f.StringVar(&c.flagFile, "file", "", "(Required) Path to the order file (.hcl or .json).")
	f.StringVar(&c.flagBrief, "brief", "", "Overrides the brief of the order file.")
	f.StringVar(&c.flagLanguage, "language", "", "Overrides the language code of the order file.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	o, err := c.Config.LoadOrder(c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading order: %v", err))
		return 1
	}
	if c.flagBrief != "" {
		o.Brief = c.flagBrief
	}
	if c.flagLanguage != "" {
		o.LanguageCode = c.flagLanguage
	}

	fields := o.WordyFields()
	if len(fields) == 0 {
		c.UI.Error("order file has no fields")
		return 1
	}
	for _, f := range fields {
		if err := f.Validate(); err != nil {
			c.UI.Warn(fmt.Sprintf("field %q will be skipped: %v", f.Title, err))
		}
	}

	metadata, err := o.WordyMetadata()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error loading order: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.CreateOrder(ctx, o.Brief, o.LanguageCode, fields, metadata))
	})
}

type PaymentURLCommand struct {
	*base.ClientCommand

	flagOrder string
}

func (c *PaymentURLCommand) Synopsis() string {
	return "Print the payment page of an order"
}

func (c *PaymentURLCommand) Help() string {
	return `Usage: wordy order payment-url -order=<id> [options]` + c.Flags().Help()
}

func (c *PaymentURLCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("payment-url", flag.ContinueOnError))
	c.ClientFlags(f, false)
	f.StringVar(&c.flagOrder, "order", "", "(Required) ID of the order.")
	return f
}

func (c *PaymentURLCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagOrder == "" {
		c.UI.Error("order flag is required")
		return 1
	}

	client, err := c.NewClient()
	if err != nil {
		c.UI.Error(fmt.Sprintf("error creating wordy client: %v", err))
		return 1
	}
	defer client.Close()

	c.UI.Output(client.PaymentURL(wordy.ID(c.flagOrder)))
	return 0
}
