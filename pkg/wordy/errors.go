package wordy

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport means the request could not complete: network, DNS,
	// timeout or cancellation. It is never retried.
	ErrTransport = errors.New("wordy: transport failure")

	// ErrMalformedResponse means the response body was not the JSON object the
	// endpoint returns.
	ErrMalformedResponse = errors.New("wordy: malformed response")

	// ErrClosed is returned by calls made after Close.
	ErrClosed = errors.New("wordy: client closed")

	// ErrNoSession is returned by WithSession when Wordy refused to start a session.
	ErrNoSession = errors.New("wordy: session not started")
)

// RequestError describes a failed call. Kind is ErrTransport or
// ErrMalformedResponse; Err is the lower-level cause.
//
// A response with "success": false is not a RequestError. It is returned as a
// normal result so callers can inspect what Wordy reported.
type RequestError struct {
	Kind      error
	Operation string
	Status    int
	Body      string
	Err       error
}

func (e *RequestError) Error() string {
	msg := fmt.Sprintf("%v: %s", e.Kind, e.Operation)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: body %q", msg, e.Body)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

const maxErrorBody = 256

func transportError(op string, err error) error {
	return &RequestError{Kind: ErrTransport, Operation: op, Err: err}
}

func malformedError(op string, resp *Response, err error) error {
	body := string(resp.Body)
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody] + "..."
	}
	return &RequestError{
		Kind:      ErrMalformedResponse,
		Operation: op,
		Status:    resp.Status,
		Body:      body,
		Err:       err,
	}
}
