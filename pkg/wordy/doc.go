// Package wordy is a client for the Wordy API v2, the HTTP API of the Wordy
// proofreading and copy-editing service.
//
// # Overview
//
// Every operation of the API maps onto one Client method. Requests are form
// encoded POSTs; responses are JSON objects with a boolean "success" field
// plus an operation-specific payload:
//
//	base/info, base/estimate, base/statistics, base/testimonial   (unsigned)
//	application/startsession, application/expiresession
//	account/info, account/adduser, account/removeuser, account/users
//	order/create
//	document/info, document/download, document/cancel, document/reedit
//	customer/create (unsigned), customer/info
//
// # Signing
//
// Signed requests carry the API key and an MD5 signature as path segments:
//
//	/document/info/api_key/<key>/signature/<md5>/token/<session token>/
//
// The signature covers the form parameters sorted by key and written as
// key=value with no separators, followed by the signing token. Until a session
// is started the signing token is the API secret; after StartSession it is the
// session token, which is also sent as the token segment. The secret itself is
// never transmitted.
//
// # Sessions
//
//	client, err := wordy.New(&wordy.Config{
//		APIKey:     os.Getenv("WORDY_API_KEY"),
//		APISecret:  os.Getenv("WORDY_API_SECRET"),
//		CustomerID: 1,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	err = client.WithSession(ctx, func(ctx context.Context) error {
//		res, err := client.CreateOrder(ctx, "Please proofread", "GB", []wordy.Field{
//			{Title: "post_title", Type: wordy.FieldShortText, Value: title},
//			{Title: "post_content", Type: wordy.FieldHTML, Value: body},
//		}, nil)
//		if err != nil {
//			return err
//		}
//		if res.Success {
//			fmt.Println(client.PaymentURL(res.Order.ID))
//		}
//		return nil
//	})
//
// The client never checks the session expiry time locally; it trusts Wordy.
//
// # Errors
//
// Only infrastructure failures are errors: ErrTransport when the request did
// not complete and ErrMalformedResponse when the body is not the expected
// JSON. A call Wordy rejected returns a result with Success set to false and
// the full body in Raw.
//
// Calls are at-most-once. No idempotency key exists in the protocol, so
// retrying after a timeout can create duplicate orders or cancellations.
//
// # Concurrency
//
// A Client serializes its own calls and holds one HTTP connection pool from
// New until Close. Use separate clients for parallel work.
package wordy
