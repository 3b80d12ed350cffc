package wordy

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Result is the envelope every endpoint responds with. Success is false when
// Wordy rejected the call; Raw keeps the full body so any error payload can
// be inspected.
type Result struct {
	Success bool            `json:"success"`
	Raw     json.RawMessage `json:"-"`
}

// Field decodes the top-level key of the raw body into v. It reports false
// when the key is missing.
func (r *Result) Field(key string, v any) (bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(r.Raw, &fields); err != nil {
		return false, err
	}
	raw, ok := fields[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

// Envelope returns the part every typed result shares.
func (r *Result) Envelope() *Result {
	return r
}

func (r *Result) setRaw(body []byte) {
	r.Raw = append(json.RawMessage(nil), body...)
}

// rawSetter is implemented by every result type through the embedded Result.
type rawSetter interface {
	setRaw(body []byte)
}

// Object is an opaque JSON object passed through from Wordy.
type Object map[string]any

// ID is a remote identifier. Wordy sends some identifiers as numbers and some
// as strings; both decode into an ID.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// Int64 parses the identifier as a decimal number.
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// Session is the payload of application/startsession.
type Session struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at,omitempty"`
}

// Document is a single editable unit of an order. Raw keeps every attribute
// Wordy sent.
type Document struct {
	ID     ID              `json:"id"`
	Type   DocumentType    `json:"type,omitempty"`
	Status DocumentStatus  `json:"status,omitempty"`
	Raw    json.RawMessage `json:"-"`
}

func (d *Document) UnmarshalJSON(b []byte) error {
	type plain Document
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*d = Document(p)
	d.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// Order groups the documents submitted together.
type Order struct {
	ID        ID              `json:"id"`
	Documents []Document      `json:"documents,omitempty"`
	Raw       json.RawMessage `json:"-"`
}

func (o *Order) UnmarshalJSON(b []byte) error {
	type plain Order
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = Order(p)
	o.Raw = append(json.RawMessage(nil), b...)
	return nil
}

type SessionResult struct {
	Result
	Session *Session `json:"session,omitempty"`
}

type AccountResult struct {
	Result
	Account Object `json:"account,omitempty"`
}

type UserResult struct {
	Result
	User Object `json:"user,omitempty"`
}

// UsersResult lists the people attached to the account.
type UsersResult struct {
	Result
	Customers []Object `json:"customers,omitempty"`
	Editors   []Object `json:"editors,omitempty"`
}

type OrderResult struct {
	Result
	Order *Order `json:"order,omitempty"`
}

type DocumentResult struct {
	Result
	Document *Document `json:"document,omitempty"`
}

type CustomerResult struct {
	Result
	Customer Object `json:"customer,omitempty"`
}

// BaseResult is returned by base/info. Its payload has no fixed key; use
// Field or Raw.
type BaseResult struct {
	Result
}

type EstimateResult struct {
	Result
	Estimate json.RawMessage `json:"estimate,omitempty"`
}

type StatisticsResult struct {
	Result
	Statistics json.RawMessage `json:"statistics,omitempty"`
}

type TestimonialResult struct {
	Result
	Testimonial json.RawMessage `json:"testimonial,omitempty"`
}

// DownloadResult is the outcome of DocumentDownload.
//
// Info is always the document/info probe. When the probe succeeded, Type tells
// which of Content (file documents, raw bytes) or Text (text documents,
// decoded JSON) is set. Both are empty when the probe failed or reported an
// unknown type.
type DownloadResult struct {
	Info    *DocumentResult
	Type    DocumentType
	Content []byte
	Text    *Result
}
