package service

import (
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Query public information about the Wordy service"
}

func (c *Command) Help() string {
	return `Usage: wordy base <subcommand> [options]

  This command groups subcommands for the unsigned base endpoints.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
