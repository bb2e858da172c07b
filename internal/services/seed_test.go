package services

import (
	"context"
	"testing"

	"github.com/powerfolio/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed(t *testing.T) {
	userRepo := &mockUserRepository{}
	projectRepo := &mockProjectRepository{}

	require.NoError(t, Seed(context.Background(), userRepo, projectRepo))

	require.Len(t, userRepo.users, 1)
	admin := userRepo.users[0]
	assert.Equal(t, SeedAdminEmail, admin.Email)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(SeedAdminPassword)))

	require.Len(t, projectRepo.projects, 3)
	for _, p := range projectRepo.projects {
		assert.Equal(t, models.StatusApproved, p.Status)
		assert.Equal(t, admin.ID, p.UserID)
		assert.NotEmpty(t, p.Technologies)
	}
}

func TestSeed_SkipsNonEmptyStore(t *testing.T) {
	userRepo := &mockUserRepository{users: []models.User{{ID: "u1", Email: "x@example.com"}}}
	projectRepo := &mockProjectRepository{}

	require.NoError(t, Seed(context.Background(), userRepo, projectRepo))

	assert.Len(t, userRepo.users, 1)
	assert.Empty(t, projectRepo.projects)
}
