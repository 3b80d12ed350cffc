package customer

import (
	"context"
	"flag"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/hashicorp-forge/wordy/internal/cmd/base"
	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

type CreateCommand struct {
	*base.ClientCommand

	flagEmail     string
	flagPassword  string
	flagFirstName string
	flagLastName  string
	flagCountry   string
	flagCompany   string
}

func (c *CreateCommand) Synopsis() string {
	return "Register a new customer"
}

func (c *CreateCommand) Help() string {
	return `Usage: wordy customer create [options]

  Registers a new Wordy customer. The request is not signed, but the
  configuration still needs credentials to build a client.` + c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))
	c.ClientFlags(f, false)

	f.StringVar(&c.flagEmail, "email", "", "(Required) Email address of the customer.")
	f.StringVar(&c.flagPassword, "password", "", "(Required) Password of the customer.")
	f.StringVar(&c.flagFirstName, "first-name", "", "(Required) First name.")
	f.StringVar(&c.flagLastName, "last-name", "", "(Required) Last name.")
	f.StringVar(&c.flagCountry, "country", "", "(Required) Two letter country code.")
	f.StringVar(&c.flagCompany, "company", "", "Company name.")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	if err := c.Flags().Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	customer := wordy.NewCustomer{
		Email:       c.flagEmail,
		Password:    c.flagPassword,
		Confirm:     c.flagPassword,
		FirstName:   c.flagFirstName,
		LastName:    c.flagLastName,
		CountryCode: c.flagCountry,
		CompanyName: c.flagCompany,
	}
	if err := validation.ValidateStruct(&customer,
		validation.Field(&customer.Email, validation.Required, is.EmailFormat),
		validation.Field(&customer.Password, validation.Required),
		validation.Field(&customer.FirstName, validation.Required),
		validation.Field(&customer.LastName, validation.Required),
		validation.Field(&customer.CountryCode, validation.Required, is.CountryCode2),
	); err != nil {
		c.UI.Error(fmt.Sprintf("invalid customer: %v", err))
		return 1
	}

	return c.Call(func(ctx context.Context, client *wordy.Client) (*wordy.Result, error) {
		return base.Result(client.CreateCustomer(ctx, customer))
	})
}
