package document

import (
	"context"
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

type DownloadCommand struct {
	*base.ClientCommand

	flagID  string
	flagOut string
}

func (c *DownloadCommand) Synopsis() string {
	return "Download the content of a document"
}

func (c *DownloadCommand) Help() string {
	return `Usage: wordy document download -id=<id> [options]

  Downloads a document. Text documents are printed as a response document;
  file documents are written to -out, or printed when -out is not set.` +
		c.Flags().Help()
}

func (c *DownloadCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("download", flag.ContinueOnError))
	c.ClientFlags(f, true)
	f.StringVar(&c.flagID, "id", "", "(Required) ID of the document.")
	f.StringVar(&c.flagOut, "out", "", "Path to write the content of a file document to.")
	return f
}

func (c *DownloadCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagID == "" {
		c.UI.Error("id flag is required")
		return 1
	}

	var res *wordy.DownloadResult
	code := c.WithClient(func(ctx context.Context, client *wordy.Client) error {
		var err error
		res, err = client.DocumentDownload(ctx, wordy.ID(c.flagID))
		return err
	})
	if code != 0 {
		return code
	}

	switch res.Type {
	case wordy.DocumentText:
		return c.OutputResult(res.Text)

	case wordy.DocumentFile:
		if c.flagOut == "" {
			c.UI.Output(string(res.Content))
			return 0
		}
		if err := afero.WriteFile(c.Config.Fs, c.flagOut, res.Content, 0o644); err != nil {
			c.UI.Error(fmt.Sprintf("error writing document: %v", err))
			return 1
		}
		c.UI.Info(fmt.Sprintf("Wrote %d bytes to %s", len(res.Content), c.flagOut))
		return 0

	default:
		// Probe failed or reported a type without a download.
		code := c.OutputResult(res.Info.Envelope())
		if code == 0 {
			c.UI.Error(fmt.Sprintf("document %s has no downloadable content", c.flagID))
			code = 2
		}
		return code
	}
}
