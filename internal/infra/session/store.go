// Package session holds the in-memory token store behind the session cookie.
// Tokens are process-local; a restart logs everyone out, which is fine for a
// single-tenant deployment.
package session

import (
	"sync"

	"github.com/google/uuid"
)

const CookieName = "pipetrack_session"

type Store struct {
	mu      sync.RWMutex
	byToken map[string]string // token -> user id
}

func NewStore() *Store {
	return &Store{byToken: make(map[string]string)}
}

// Issue creates a new session for the user and returns its token.
func (s *Store) Issue(userID string) string {
	token := uuid.New().String()

	s.mu.Lock()
	s.byToken[token] = userID
	s.mu.Unlock()

	return token
}

// Resolve returns the user id behind a token, if the session exists.
func (s *Store) Resolve(token string) (string, bool) {
	s.mu.RLock()
	userID, ok := s.byToken[token]
	s.mu.RUnlock()
	return userID, ok
}

// Revoke deletes the session. Revoking an unknown token is a no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.byToken, token)
	s.mu.Unlock()
}
