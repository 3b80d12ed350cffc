package wordy

import "context"

// AccountInfo returns the account of the configured customer.
func (c *Client) AccountInfo(ctx context.Context) (*AccountResult, error) {
	return call[AccountResult](ctx, c, "account/info", "/account/info/", c.customerParams(), true)
}

// AccountAddUser attaches the user to the account.
func (c *Client) AccountAddUser(ctx context.Context, userID ID) (*UserResult, error) {
	params := c.customerParams()
	params["user_id"] = userID.String()
	return call[UserResult](ctx, c, "account/adduser", "/account/adduser/", params, true)
}

// AccountRemoveUser detaches the user from the account.
func (c *Client) AccountRemoveUser(ctx context.Context, userID ID) (*UserResult, error) {
	params := c.customerParams()
	params["user_id"] = userID.String()
	return call[UserResult](ctx, c, "account/removeuser", "/account/removeuser/", params, true)
}

// AccountUsers lists the customers and editors attached to the account.
func (c *Client) AccountUsers(ctx context.Context) (*UsersResult, error) {
	return call[UsersResult](ctx, c, "account/users", "/account/users/", c.customerParams(), true)
}
