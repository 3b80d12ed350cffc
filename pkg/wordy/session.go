package wordy

import "sync"

// SessionState holds the session token issued by application/startsession and
// picks the token requests are signed with.
//
// Before a session exists the API secret signs requests. Once a token is set
// it replaces the secret until the token is cleared.
type SessionState struct {
	secret string

	mu    sync.RWMutex
	token string
}

// NewSessionState returns a state with no active session.
func NewSessionState(secret string) *SessionState {
	return &SessionState{secret: secret}
}

// SigningToken returns the active session token, or the API secret when no
// session is active.
func (s *SessionState) SigningToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return s.secret
	}
	return s.token
}

// Token returns the active session token and whether one is set.
func (s *SessionState) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// SetToken replaces the session token. An empty token ends the session.
func (s *SessionState) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Reset ends the session.
func (s *SessionState) Reset() {
	s.SetToken("")
}

// Active reports whether a session token is set.
func (s *SessionState) Active() bool {
	_, ok := s.Token()
	return ok
}
