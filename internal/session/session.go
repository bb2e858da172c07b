// Package session holds the process's notion of who is currently logged in.
// There is at most one active session at a time: either nobody (anonymous)
// or a direct handle to exactly one user.
package session

import (
	"sync"

	"github.com/powerfolio/backend/internal/models"
)

// State classifies the current session
type State string

// Session states
const (
	StateAnonymous State = "anonymous"
	StateUser      State = "user"
	StateAdmin     State = "admin"
)

// Manager owns the single current-session reference
type Manager struct {
	mu      sync.RWMutex
	current *models.User
}

// NewManager creates a session manager with no active session
func NewManager() *Manager {
	return &Manager{}
}

// Current returns a copy of the logged-in user, or nil when anonymous
func (m *Manager) Current() *models.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	u := *m.current
	return &u
}

// Set replaces the current session with the given user
func (m *Manager) Set(user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := *user
	m.current = &u
}

// Clear drops the session unconditionally; clearing an absent session is fine
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil
}

// State classifies the session as anonymous, user, or admin
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch {
	case m.current == nil:
		return StateAnonymous
	case m.current.Role == models.RoleAdmin:
		return StateAdmin
	default:
		return StateUser
	}
}

// IsAuthenticated reports whether any user is logged in
func (m *Manager) IsAuthenticated() bool {
	return m.State() != StateAnonymous
}

// IsAdmin reports whether the logged-in user has the admin role
func (m *Manager) IsAdmin() bool {
	return m.State() == StateAdmin
}
