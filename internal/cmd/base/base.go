package base

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wordy/internal/config"
)

// Command is embedded by every wordy command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Config loads configuration and order files.
	Config *config.Loader
}

// NewCommand returns a Command that reads files from the local filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:    log,
		UI:     ui,
		Config: config.NewLoader(),
	}
}
