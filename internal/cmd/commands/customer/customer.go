package customer

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
	return "Show or register customers"
}

func (c *Command) Help() string {
	return `Usage: wordy customer <subcommand> [options]

  This command groups subcommands for Wordy customers.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type InfoCommand struct {
	*base.ClientCommand
}

func (c *InfoCommand) Synopsis() string {
	return "Show the configured customer"
}

func (c *InfoCommand) Help() string {
	return `Usage: wordy customer info [options]` + c.Flags().Help()
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
		return base.Result(client.CustomerInfo(ctx))
	})
}
