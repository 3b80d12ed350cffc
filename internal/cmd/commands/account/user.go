package account

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

// UserCommand adds a user to the account, or removes one when Remove is set.
type UserCommand struct {
	*base.ClientCommand

	Remove bool

	flagUser string
}

func (c *UserCommand) name() string {
	if c.Remove {
		return "remove-user"
	}
	return "add-user"
}

func (c *UserCommand) Synopsis() string {
	if c.Remove {
		return "Detach a user from the account"
	}
	return "Attach a user to the account"
}

func (c *UserCommand) Help() string {
	return fmt.Sprintf(`Usage: wordy account %s -user=<id> [options]`, c.name()) + c.Flags().Help()
}

func (c *UserCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.name(), flag.ContinueOnError))
	c.ClientFlags(f, true)
	f.StringVar(&c.flagUser, "user", "", "(Required) ID of the user.")
	return f
}

func (c *UserCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagUser == "" {
		c.UI.Error("user flag is required")
		return 1
	}
	userID := wordy.ID(c.flagUser)

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		if c.Remove {
			return base.Result(client.AccountRemoveUser(ctx, userID))
		}
		return base.Result(client.AccountAddUser(ctx, userID))
	})
}
