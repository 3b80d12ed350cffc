package wordy

import (
	"net/url"
	"strings"
)

// Request is a fully built API call.
type Request struct {
	// URL is the endpoint joined with the path and signature segments.
	URL string

	// Path is the request path without signature segments. It is safe to log.
	Path string

	// Form is the POST body. The signature is never part of it.
	Form url.Values

	Signed bool
}

// RequestBuilder turns an endpoint path and its parameters into a Request.
type RequestBuilder struct {
	endpoint string
	apiKey   string
	session  *SessionState
}

// NewRequestBuilder returns a builder for the given endpoint base URL.
func NewRequestBuilder(endpoint, apiKey string, session *SessionState) *RequestBuilder {
	return &RequestBuilder{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		session:  session,
	}
}

// Build produces the request for path. Requests without parameters, or with
// sign set to false, go out unsigned.
//
// Signed requests get /api_key/<key>/signature/<sig>/ appended to the path,
// followed by token/<token>/ while a session is active.
func (b *RequestBuilder) Build(path string, params Params, sign bool) Request {
	req := Request{
		Path: path,
		Form: make(url.Values, len(params)),
	}
	for k, v := range params {
		req.Form.Set(k, v)
	}

	if sign && len(params) > 0 {
		path = strings.TrimRight(path, "/") + b.signatureSuffix(params)
		req.Signed = true
	}

	req.URL = b.endpoint + "/" + strings.TrimLeft(path, "/")
	return req
}

func (b *RequestBuilder) signatureSuffix(params Params) string {
	// One read, so the signature and the token segment always agree.
	token, ok := b.session.Token()
	signingToken := token
	if !ok {
		signingToken = b.session.secret
	}

	var s strings.Builder
	s.WriteString("/api_key/")
	s.WriteString(b.apiKey)
	s.WriteString("/signature/")
	s.WriteString(Sign(params, signingToken))
	s.WriteString("/")

	if ok {
		s.WriteString("token/")
		s.WriteString(token)
		s.WriteString("/")
	}
	return s.String()
}
