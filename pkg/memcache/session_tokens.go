package mem

import (
	"sync"
	"time"
)

type SessionStore interface {
	Create(token string, accountID string, ttl time.Duration)

	// Lookup returns the accountID for token if not expired,
	// without consuming it. Returns "" if missing/expired.
	Lookup(token string) string

	// Consume returns the accountID and removes the token (single-use
	// refresh). Returns "" if missing/expired.
	Consume(token string) string

	Invalidate(token string)
}

type entry struct {
	accountID string
	expiresAt time.Time
}

type SessionTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewSessionTokens() *SessionTokens {
	return &SessionTokens{
		data: make(map[string]entry),
	}
}

func (s *SessionTokens) Create(token string, accountID string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		accountID: accountID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *SessionTokens) Lookup(token string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[token]
	if !ok || time.Now().After(e.expiresAt) {
		return ""
	}
	return e.accountID
}

func (s *SessionTokens) Consume(token string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[token]
	if !ok {
		return ""
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, token) // cleanup expired
		return ""
	}
	delete(s.data, token) // single-use
	return e.accountID
}

func (s *SessionTokens) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, token)
}
