package auth

import (
	"sync"

	"github.com/google/uuid"
)

// Sessions maps browser session tokens to usernames. In-memory only: a restart
// logs everyone out, which is fine for a small trusted team on one host.
type Sessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func NewSessions() *Sessions {
	return &Sessions{tokens: make(map[string]string)}
}

// Start opens a session for username and returns its token.
func (s *Sessions) Start(username string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = username
	s.mu.Unlock()
	return token
}

// Lookup resolves a token to its username.
func (s *Sessions) Lookup(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	username, ok := s.tokens[token]
	return username, ok
}

// End closes the session for token.
func (s *Sessions) End(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}
