package document

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
	return "Inspect, download and manage documents"
}

func (c *Command) Help() string {
	return `Usage: wordy document <subcommand> [options]

  This command groups subcommands for the documents of an order.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

// Action selects the document endpoint an ActionCommand calls.
type Action string

const (
	ActionInfo   Action = "info"
	ActionCancel Action = "cancel"
	ActionReedit Action = "reedit"
)

// ActionCommand calls document/info, document/cancel or document/reedit.
type ActionCommand struct {
	*base.ClientCommand

	Action Action

	flagID      string
	flagMessage string
}

func (c *ActionCommand) Synopsis() string {
	switch c.Action {
	case ActionCancel:
		return "Cancel a document that was not edited yet"
	case ActionReedit:
		return "Send a completed document back for editing"
	default:
		return "Show a document with its type and status"
	}
}

func (c *ActionCommand) Help() string {
	usage := fmt.Sprintf("Usage: wordy document %s -id=<id> [options]", c.Action)
	if c.Action == ActionReedit {
		usage = "Usage: wordy document reedit -id=<id> -message=<text> [options]"
	}
	return usage + c.Flags().Help()
}

func (c *ActionCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(string(c.Action), flag.ContinueOnError))
	c.ClientFlags(f, true)
	f.StringVar(&c.flagID, "id", "", "(Required) ID of the document.")
	if c.Action == ActionReedit {
		f.StringVar(&c.flagMessage, "message", "", "(Required) What the editor should change.")
	}
	return f
}

func (c *ActionCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == "" {
		c.UI.Error("id flag is required")
		return 1
	}
	if c.Action == ActionReedit && c.flagMessage == "" {
		c.UI.Error("message flag is required")
		return 1
	}
	id := wordy.ID(c.flagID)

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		switch c.Action {
		case ActionCancel:
			return base.Result(client.DocumentCancel(ctx, id))
		case ActionReedit:
			return base.Result(client.DocumentReedit(ctx, id, c.flagMessage))
		default:
			return base.Result(client.DocumentInfo(ctx, id))
		}
	})
}
