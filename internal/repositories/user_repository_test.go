package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/powerfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestUser builds a user with the given id and email
func newTestUser(id, email string) *models.User {
	return &models.User{
		ID:           id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "hash-" + id,
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(zap.NewNop())
	ctx := context.Background()

	user := newTestUser("u1", "u1@example.com")
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1@example.com", got.Email)

	byEmail, err := repo.GetByEmail(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "u1@example.com")))

	exists, err := repo.ExistsByEmail(ctx, "u1@example.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUserRepository_GetReturnsCopy(t *testing.T) {
	repo := NewUserRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "u1@example.com")))

	got, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	got.Name = "mutated"

	again, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "User u1", again.Name, "mutating a returned user must not affect stored state")
}

func TestUserRepository_Update(t *testing.T) {
	tests := []struct {
		name          string
		id            string
		upd           models.UserUpdate
		expectedError error
		check         func(t *testing.T, u *models.User)
	}{
		{
			name: "merge name only",
			id:   "u1",
			upd:  models.UserUpdate{Name: strPtr("Renamed")},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, "Renamed", u.Name)
				assert.Equal(t, "u1@example.com", u.Email, "unset fields keep their value")
				assert.Equal(t, models.RoleUser, u.Role)
			},
		},
		{
			name: "merge role",
			id:   "u1",
			upd:  models.UserUpdate{Role: rolePtr(models.RoleAdmin)},
			check: func(t *testing.T, u *models.User) {
				assert.Equal(t, models.RoleAdmin, u.Role)
			},
		},
		{
			name:          "unknown id",
			id:            "missing",
			upd:           models.UserUpdate{Name: strPtr("x")},
			expectedError: models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewUserRepository(zap.NewNop())
			ctx := context.Background()
			require.NoError(t, repo.Create(ctx, newTestUser("u1", "u1@example.com")))

			got, err := repo.Update(ctx, tt.id, &tt.upd)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newTestUser("u1", "u1@example.com")))

	removed, err := repo.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, removed)

	// Deleting again is a no-op, not an error
	removed, err = repo.Delete(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, removed)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func strPtr(s string) *string            { return &s }
func rolePtr(r models.Role) *models.Role { return &r }
