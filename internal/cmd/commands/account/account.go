package account

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
	return "Manage the customer account"
}

func (c *Command) Help() string {
	return `Usage: wordy account <subcommand> [options]

  This command groups subcommands for the account of the configured customer.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type InfoCommand struct {
	*base.ClientCommand
}

func (c *InfoCommand) Synopsis() string {
	return "Show the account"
}

func (c *InfoCommand) Help() string {
	return `Usage: wordy account info [options]` + c.Flags().Help()
}

func (c *InfoCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("info", flag.ContinueOnError))
	c.ClientFlags(f, true)
	return f
}

func (c *InfoCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.AccountInfo(ctx))
	})
}

type UsersCommand struct {
	*base.ClientCommand
}

func (c *UsersCommand) Synopsis() string {
	return "List the customers and editors of the account"
}

func (c *UsersCommand) Help() string {
	return `Usage: wordy account users [options]` + c.Flags().Help()
}

func (c *UsersCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("users", flag.ContinueOnError))
	c.ClientFlags(f, true)
	return f
}

func (c *UsersCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.AccountUsers(ctx))
	})
}
