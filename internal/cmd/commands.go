package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/account"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/customer"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/document"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/order"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/service"
	"github.com/hashicorp-forge/wordy/internal/cmd/commands/version"
	"github.com/hashicorp-forge/wordy/internal/config"
)

// Commands is the mapping of all available wordy commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui, loader *config.Loader) {
	b := base.NewCommand(log, ui)
	b.Config = loader

	client := func() *base.ClientCommand {
		return base.NewClientCommand(b)
	}

	Commands = map[string]cli.CommandFactory{
		"account": func() (cli.Command, error) {
			return &account.Command{Command: b}, nil
		},
		"account info": func() (cli.Command, error) {
			return &account.InfoCommand{ClientCommand: client()}, nil
		},
		"account users": func() (cli.Command, error) {
			return &account.UsersCommand{ClientCommand: client()}, nil
		},
		"account add-user": func() (cli.Command, error) {
			return &account.UserCommand{ClientCommand: client()}, nil
		},
		"account remove-user": func() (cli.Command, error) {
			return &account.UserCommand{ClientCommand: client(), Remove: true}, nil
		},

		"base": func() (cli.Command, error) {
			return &service.Command{Command: b}, nil
		},
		"base info": func() (cli.Command, error) {
			return &service.InfoCommand{ClientCommand: client()}, nil
		},
		"base estimate": func() (cli.Command, error) {
			return &service.EstimateCommand{ClientCommand: client()}, nil
		},
		"base statistics": func() (cli.Command, error) {
			return &service.StatisticsCommand{ClientCommand: client()}, nil
		},
		"base testimonial": func() (cli.Command, error) {
			return &service.TestimonialCommand{ClientCommand: client()}, nil
		},

		"customer": func() (cli.Command, error) {
			return &customer.Command{Command: b}, nil
		},
		"customer info": func() (cli.Command, error) {
			return &customer.InfoCommand{ClientCommand: client()}, nil
		},
		"customer create": func() (cli.Command, error) {
			return &customer.CreateCommand{ClientCommand: client()}, nil
		},

		"document": func() (cli.Command, error) {
			return &document.Command{Command: b}, nil
		},
		"document info": func() (cli.Command, error) {
			return &document.ActionCommand{ClientCommand: client(), Action: document.ActionInfo}, nil
		},
		"document cancel": func() (cli.Command, error) {
			return &document.ActionCommand{ClientCommand: client(), Action: document.ActionCancel}, nil
		},
		"document reedit": func() (cli.Command, error) {
			return &document.ActionCommand{ClientCommand: client(), Action: document.ActionReedit}, nil
		},
		"document download": func() (cli.Command, error) {
			return &document.DownloadCommand{ClientCommand: client()}, nil
		},

		"order": func() (cli.Command, error) {
			return &order.Command{Command: b}, nil
		},
		"order create": func() (cli.Command, error) {
			return &order.CreateCommand{ClientCommand: client()}, nil
		},
		"order payment-url": func() (cli.Command, error) {
			return &order.PaymentURLCommand{ClientCommand: client()}, nil
		},

		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
