package service

import (
	"context"
	"flag"
	"fmt"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

type InfoCommand struct {
	*base.ClientCommand
}

func (c *InfoCommand) Synopsis() string {
	return "Show general service information"
}

func (c *InfoCommand) Help() string {
	return `Usage: wordy base info [options]` + c.Flags().Help()
}

func (c *InfoCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("info", flag.ContinueOnError))
	c.ClientFlags(f, false)
	return f
}

func (c *InfoCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.BaseInfo(ctx))
	})
}

type EstimateCommand struct {
	*base.ClientCommand

	flagWords int
}

func (c *EstimateCommand) Synopsis() string {
	return "Estimate price and delivery for a word count"
}

func (c *EstimateCommand) Help() string {
	return `Usage: wordy base estimate -words=<count> [options]` + c.Flags().Help()
}

func (c *EstimateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("estimate", flag.ContinueOnError))
	c.ClientFlags(f, false)
	f.IntVar(&c.flagWords, "words", 0, "(Required) Number of words to estimate.")
	return f
}

func (c *EstimateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	if c.flagWords < 1 {
		c.UI.Error("words must be at least 1")
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.BaseEstimate(ctx, c.flagWords))
	})
}

type StatisticsCommand struct {
	*base.ClientCommand
}

func (c *StatisticsCommand) Synopsis() string {
	return "Show public service statistics"
}

func (c *StatisticsCommand) Help() string {
	return `Usage: wordy base statistics [options]` + c.Flags().Help()
}

func (c *StatisticsCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("statistics", flag.ContinueOnError))
	c.ClientFlags(f, false)
	return f
}

func (c *StatisticsCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.BaseStatistics(ctx))
	})
}

type TestimonialCommand struct {
	*base.ClientCommand
}

func (c *TestimonialCommand) Synopsis() string {
	return "Show a customer testimonial"
}

func (c *TestimonialCommand) Help() string {
	return `Usage: wordy base testimonial [options]` + c.Flags().Help()
}

func (c *TestimonialCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("testimonial", flag.ContinueOnError))
	c.ClientFlags(f, false)
	return f
}

func (c *TestimonialCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.BaseTestimonial(ctx))
	})
}
