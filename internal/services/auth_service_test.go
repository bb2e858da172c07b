package services

import (
	"context"
	"errors"
	"testing"

	"github.com/powerfolio/backend/internal/models"
	"github.com/powerfolio/backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mockUserRepository is a stateful mock implementation of UserRepository
type mockUserRepository struct {
	users     []models.User
	createErr error
	listErr   error
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.users = append(m.users, *user)
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			if upd.Name != nil {
				m.users[i].Name = *upd.Name
			}
			if upd.Email != nil {
				m.users[i].Email = *upd.Email
			}
			if upd.PasswordHash != nil {
				m.users[i].PasswordHash = *upd.PasswordHash
			}
			if upd.Role != nil {
				m.users[i].Role = *upd.Role
			}
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *mockUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// hashFor returns a bcrypt hash for fixtures
func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		req           models.SignupRequest
		existing      []models.User
		expectedError error
		wantField     string
	}{
		{
			name: "success",
			req:  models.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "secret12"},
		},
		{
			name:      "missing name",
			req:       models.SignupRequest{Email: "alice@example.com", Password: "secret12"},
			wantField: "name",
		},
		{
			name:      "missing email",
			req:       models.SignupRequest{Name: "Alice", Password: "secret12"},
			wantField: "email",
		},
		{
			name:      "missing password",
			req:       models.SignupRequest{Name: "Alice", Email: "alice@example.com"},
			wantField: "password",
		},
		{
			name: "email already registered",
			req:  models.SignupRequest{Name: "Alice", Email: "taken@example.com", Password: "secret12"},
			existing: []models.User{
				{ID: "u0", Email: "taken@example.com", Role: models.RoleUser},
			},
			expectedError: models.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{users: tt.existing}
			sessions := session.NewManager()
			svc := NewAuthService(repo, sessions, zap.NewNop())

			before := len(repo.users)
			user, err := svc.Signup(context.Background(), &tt.req)

			if tt.wantField != "" {
				var validationErr *models.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tt.wantField, validationErr.Field)
				return
			}
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Len(t, repo.users, before, "a failed signup must not change the user table")
				assert.Nil(t, sessions.Current())
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.Equal(t, models.RoleUser, user.Role, "signup never grants admin")
			assert.False(t, user.CreatedAt.IsZero())
			assert.NotEqual(t, tt.req.Password, user.PasswordHash, "credential is stored hashed")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.req.Password)))

			// The new user became the current session
			require.NotNil(t, sessions.Current())
			assert.Equal(t, user.ID, sessions.Current().ID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	existing := func(t *testing.T) []models.User {
		return []models.User{
			{ID: "u1", Name: "Alice", Email: "alice@example.com", PasswordHash: hashFor(t, "correct"), Role: models.RoleUser},
		}
	}

	t.Run("success sets session and returns user", func(t *testing.T) {
		repo := &mockUserRepository{users: existing(t)}
		sessions := session.NewManager()
		svc := NewAuthService(repo, sessions, zap.NewNop())

		user, err := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "correct"})
		require.NoError(t, err)
		assert.Equal(t, "u1", user.ID)
		require.NotNil(t, sessions.Current())
		assert.Equal(t, "u1", sessions.Current().ID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		repo := &mockUserRepository{users: existing(t)}
		sessions := session.NewManager()
		svc := NewAuthService(repo, sessions, zap.NewNop())

		_, errWrongPassword := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "nope"})
		_, errUnknownEmail := svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "anything"})

		// Same opaque failure either way: no email-existence leak
		assert.ErrorIs(t, errWrongPassword, models.ErrInvalidCredentials)
		assert.ErrorIs(t, errUnknownEmail, models.ErrInvalidCredentials)
		assert.True(t, errors.Is(errWrongPassword, errUnknownEmail) || errWrongPassword.Error() == errUnknownEmail.Error())
		assert.Nil(t, sessions.Current())
	})
}

func TestAuthService_Logout(t *testing.T) {
	repo := &mockUserRepository{users: []models.User{
		{ID: "u1", Email: "alice@example.com", PasswordHash: hashFor(t, "correct"), Role: models.RoleUser},
	}}
	sessions := session.NewManager()
	svc := NewAuthService(repo, sessions, zap.NewNop())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "alice@example.com", Password: "correct"})
	require.NoError(t, err)

	svc.Logout(context.Background())
	assert.Nil(t, svc.Current(context.Background()))

	// Logging out with no session is still fine
	svc.Logout(context.Background())
	assert.Nil(t, svc.Current(context.Background()))
}
