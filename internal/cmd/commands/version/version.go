package version

import (
	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the version of wordy"
}

func (c *Command) Help() string {
	return "Usage: wordy version"
}

func (c *Command) Run(args []string) int {
	c.UI.Output(version.Version)
	return 0
}
