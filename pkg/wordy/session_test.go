package wordy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_InitiallySignsWithSecret(t *testing.T) {
	s := NewSessionState("secret")

	assert.False(t, s.Active())
	assert.Equal(t, "secret", s.SigningToken())

	token, ok := s.Token()
	assert.False(t, ok)
	assert.Empty(t, token)
}

func TestSessionState_TokenTakesPrecedence(t *testing.T) {
	s := NewSessionState("secret")
	s.SetToken("tok-1")

	for i := 0; i < 3; i++ {
		assert.Equal(t, "tok-1", s.SigningToken())
	}
	assert.True(t, s.Active())

	s.SetToken("tok-2")
	assert.Equal(t, "tok-2", s.SigningToken(), "a second session overwrites the first")
}

func TestSessionState_ClearFallsBackToSecret(t *testing.T) {
	tests := []struct {
		name  string
		clear func(s *SessionState)
	}{
		{name: "reset", clear: func(s *SessionState) { s.Reset() }},
		{name: "empty token", clear: func(s *SessionState) { s.SetToken("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSessionState("secret")
			s.SetToken("tok")
			tt.clear(s)

			assert.False(t, s.Active())
			assert.Equal(t, "secret", s.SigningToken())
		})
	}
}
