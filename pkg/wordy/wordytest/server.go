// Package wordytest provides an in-process Wordy API for tests. It records
// every request and checks its signature the way Wordy does.
package wordytest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"

	"github.com/hashicorp-forge/wordy/pkg/wordy"
)

// Prefix is the path the API is served under, as on www.wordy.com.
const Prefix = "/api/version/2"

// Request is a request as seen by the server.
type Request struct {
	// Operation is the path without prefix and signature segments, e.g. "document/info".
	Operation string
	Method    string
	Path      string
	Form      url.Values

	Signed         bool
	APIKey         string
	Signature      string
	Token          string
	SignatureValid bool
}

// Param returns the first value of a form parameter.
func (r Request) Param(key string) string {
	return r.Form.Get(key)
}

// Reply is what a handler answers with.
type Reply struct {
	Status int
	Body   string
}

// JSON encodes v as a 200 reply.
func JSON(v any) Reply {
	b, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("wordytest: cannot encode reply: %v", err))
	}
	return Reply{Status: http.StatusOK, Body: string(b)}
}

// Raw returns a 200 reply with body sent as is.
func Raw(body string) Reply {
	return Reply{Status: http.StatusOK, Body: body}
}

// HandlerFunc answers one operation.
type HandlerFunc func(r Request) Reply

// Server is a fake Wordy API.
type Server struct {
	*httptest.Server

	APIKey    string
	APISecret string

	mu       sync.Mutex
	handlers map[string]HandlerFunc
	requests []Request
	tokens   map[string]bool
	issued   int
}

// NewServer starts a server that accepts the given credentials. Sessions are
// handled out of the box; every other operation answers with success false
// until a handler is registered.
func NewServer(apiKey, apiSecret string) *Server {
	s := &Server{
		APIKey:    apiKey,
		APISecret: apiSecret,
		handlers:  make(map[string]HandlerFunc),
		tokens:    make(map[string]bool),
	}
	s.handlers["application/startsession"] = s.startSession
	s.handlers["application/expiresession"] = s.expireSession

	s.Server = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	return s
}

// Endpoint is the base URL to configure a wordy.Client with.
func (s *Server) Endpoint() string {
	return s.URL + Prefix + "/"
}

// Handle registers fn for an operation. An operation also matches requests
// with extra path segments, so "base/estimate" answers
// "base/estimate/word_count/120".
func (s *Server) Handle(operation string, fn HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[strings.Trim(operation, "/")] = fn
}

// Respond registers a fixed JSON reply for an operation.
func (s *Server) Respond(operation string, v any) {
	reply := JSON(v)
	s.Handle(operation, func(Request) Reply { return reply })
}

// Requests returns every request received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsFor returns the requests received for one operation.
func (s *Server) RequestsFor(operation string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Operation == operation || strings.HasPrefix(r.Operation, operation+"/") {
			out = append(out, r)
		}
	}
	return out
}

// ActiveTokens returns how many issued session tokens were not expired.
func (s *Server) ActiveTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.HasPrefix(r.URL.Path, Prefix+"/") {
		http.NotFound(w, r)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	form, err := url.ParseQuery(string(body))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	req := parsePath(strings.TrimPrefix(r.URL.Path, Prefix))
	req.Method = r.Method
	req.Path = r.URL.Path
	req.Form = form
	if req.Signed {
		req.SignatureValid = s.verify(req)
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	handler := s.lookup(req.Operation)
	s.mu.Unlock()

	reply := JSON(map[string]any{"success": false, "message": "unknown operation " + req.Operation})
	if handler != nil {
		reply = handler(req)
	}
	if reply.Status == 0 {
		reply.Status = http.StatusOK
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

// lookup finds the handler for op or its closest parent. s.mu is held.
func (s *Server) lookup(op string) HandlerFunc {
	for op != "" {
		if h, ok := s.handlers[op]; ok {
			return h
		}
		i := strings.LastIndex(op, "/")
		if i < 0 {
			break
		}
		op = op[:i]
	}
	return nil
}

func parsePath(p string) Request {
	segs := strings.Split(strings.Trim(p, "/"), "/")

	var req Request
	i := 0
	for ; i < len(segs); i++ {
		if segs[i] == "api_key" {
			break
		}
	}
	req.Operation = strings.Join(segs[:i], "/")

	for ; i+1 < len(segs); i += 2 {
		switch segs[i] {
		case "api_key":
			req.Signed = true
			req.APIKey = segs[i+1]
		case "signature":
			req.Signature = segs[i+1]
		case "token":
			req.Token = segs[i+1]
		}
	}
	return req
}

func (s *Server) verify(req Request) bool {
	if req.APIKey != s.APIKey {
		return false
	}

	signingToken := s.APISecret
	if req.Token != "" {
		s.mu.Lock()
		known := s.tokens[req.Token]
		s.mu.Unlock()
		if !known {
			return false
		}
		signingToken = req.Token
	}

	params := wordy.Params{}
	for k := range req.Form {
		params[k] = req.Form.Get(k)
	}
	return wordy.Sign(params, signingToken) == req.Signature
}

func (s *Server) startSession(req Request) Reply {
	if !req.SignatureValid {
		return JSON(map[string]any{"success": false, "message": "invalid signature"})
	}

	s.mu.Lock()
	s.issued++
	token := fmt.Sprintf("session-token-%d", s.issued)
	s.tokens[token] = true
	s.mu.Unlock()

	expiresAt := req.Param("expires_at")
	if expiresAt == "" {
		expiresAt = "2030-01-01 00:00:00"
	}
	return JSON(map[string]any{
		"success": true,
		"session": map[string]any{"token": token, "expires_at": expiresAt},
	})
}

func (s *Server) expireSession(req Request) Reply {
	if !req.SignatureValid || req.Token == "" {
		return JSON(map[string]any{"success": false, "message": "no session"})
	}

	s.mu.Lock()
	delete(s.tokens, req.Token)
	s.mu.Unlock()

	return JSON(map[string]any{"success": true})
}
