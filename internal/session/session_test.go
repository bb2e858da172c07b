package session

import (
	"testing"

	"github.com/powerfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestManager_AnonymousByDefault(t *testing.T) {
	m := NewManager()

	assert.Nil(t, m.Current())
	assert.Equal(t, StateAnonymous, m.State())
	assert.False(t, m.IsAuthenticated())
	assert.False(t, m.IsAdmin())
}

func TestManager_Classification(t *testing.T) {
	tests := []struct {
		name          string
		user          *models.User
		expectedState State
		isAdmin       bool
	}{
		{
			name:          "regular user",
			user:          &models.User{ID: "u1", Role: models.RoleUser},
			expectedState: StateUser,
		},
		{
			name:          "admin",
			user:          &models.User{ID: "a1", Role: models.RoleAdmin},
			expectedState: StateAdmin,
			isAdmin:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager()
			m.Set(tt.user)

			assert.Equal(t, tt.expectedState, m.State())
			assert.True(t, m.IsAuthenticated())
			assert.Equal(t, tt.isAdmin, m.IsAdmin())
		})
	}
}

func TestManager_SingleSession(t *testing.T) {
	m := NewManager()
	m.Set(&models.User{ID: "u1", Role: models.RoleUser})
	m.Set(&models.User{ID: "u2", Role: models.RoleAdmin})

	// At most one session: the second login replaced the first
	assert.Equal(t, "u2", m.Current().ID)
	assert.Equal(t, StateAdmin, m.State())
}

func TestManager_Clear(t *testing.T) {
	m := NewManager()
	m.Set(&models.User{ID: "u1", Role: models.RoleUser})

	m.Clear()
	assert.Nil(t, m.Current())
	assert.Equal(t, StateAnonymous, m.State())

	// Clearing with no active session is fine
	m.Clear()
	assert.Equal(t, StateAnonymous, m.State())
}

func TestManager_CurrentReturnsCopy(t *testing.T) {
	m := NewManager()
	m.Set(&models.User{ID: "u1", Name: "Original", Role: models.RoleUser})

	got := m.Current()
	got.Name = "mutated"

	assert.Equal(t, "Original", m.Current().Name)
}
