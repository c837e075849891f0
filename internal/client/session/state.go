// Package session holds the "current user" of a running front end.
package session

import (
	"sync"

	"github.com/dmitrijs2005/snoozer/internal/client/models"
)

// State is the explicit session object owned by the application shell.
// It holds at most one user. The zero value is a logged-out session.
type State struct {
	mu   sync.RWMutex
	user *models.User
}

func New() *State {
	return &State{}
}

// Set replaces the current user. A nil user logs the session out.
func (s *State) Set(u *models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

// Current returns the current user or nil.
func (s *State) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *State) LoggedIn() bool {
	return s.Current() != nil
}

func (s *State) Clear() {
	s.Set(nil)
}
