package wordy

import "context"

// NewCustomer holds the sign-up details for CreateCustomer.
type NewCustomer struct {
	Email       string
	Password    string
	Confirm     string
	FirstName   string
	LastName    string
	CountryCode string
	CompanyName string
}

func (n NewCustomer) params() Params {
	return Params{
		"email":        n.Email,
		"password":     n.Password,
		"confirm":      n.Confirm,
		"first_name":   n.FirstName,
		"last_name":    n.LastName,
		"country_code": n.CountryCode,
		"company_name": n.CompanyName,
	}
}

// CreateCustomer registers a new customer. The call is unsigned: the new
// customer has no credentials yet.
func (c *Client) CreateCustomer(ctx context.Context, customer NewCustomer) (*CustomerResult, error) {
	return call[CustomerResult](ctx, c, "customer/create", "/customer/create/", customer.params(), false)
}

// CustomerInfo returns the configured customer.
func (c *Client) CustomerInfo(ctx context.Context) (*CustomerResult, error) {
	return call[CustomerResult](ctx, c, "customer/info", "/customer/info/", c.customerParams(), true)
}
