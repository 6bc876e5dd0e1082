// Package session holds the bearer credentials used when calling the upstream
// back-office API. The token is acquired once at login, injected explicitly
// into every outbound client, and cleared at logout. Keeping it in a dedicated
// store avoids ad-hoc reads of ambient global state.
package session

import (
	"sync"

	"backoffice/internal/pkg/errs"
)

// ErrNoActiveSession is returned when a token is requested before login or
// after logout.
var ErrNoActiveSession = errs.NewUnauthorizedError("no active session")

// Store is a concurrency-safe holder for the current bearer token and role.
type Store struct {
	mu    sync.RWMutex
	token string
	role  string
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{}
}

// Login records the bearer token and role for the current session.
func (s *Store) Login(token, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.role = role
}

// Logout clears the stored credentials.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.role = ""
}

// Token returns the current bearer token, or ErrNoActiveSession when none is
// set.
func (s *Store) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", ErrNoActiveSession
	}
	return s.token, nil
}

// Role returns the role recorded at login. Empty when no session is active.
func (s *Store) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}
