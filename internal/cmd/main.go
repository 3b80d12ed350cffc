package cmd

import (
	"bufio"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/hashicorp-forge/wordy/internal/config"
	"github.com/hashicorp-forge/wordy/internal/version"
)

// Main runs the CLI with the given arguments and returns the exit code.
func Main(args []string) int {
	ui := &cli.BasicUi{
		Reader:      bufio.NewReader(os.Stdin),
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
	}
	return run(args, ui, config.NewLoader())
}

func run(args []string, ui cli.Ui, loader *config.Loader) int {
	cliName := "wordy"

	level := hclog.Warn
	if v, ok := loader.LookupEnv(config.EnvLogLevel); ok && v != "" {
		level = hclog.LevelFromString(v)
	}
	log := hclog.New(&hclog.LoggerOptions{
		Name:  cliName,
		Level: level,
	})

	if len(args) == 2 &&
		(args[1] == "-version" ||
			args[1] == "-v") {
		args = []string{args[0], "version"}
	}

	initCommands(log, ui, loader)

	c := &cli.CLI{
		Name:     cliName,
		Args:     args[1:],
		Version:  version.Version,
		Commands: Commands,
	}

	exitCode, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	return exitCode
}
