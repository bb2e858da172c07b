package repositories

import (
	"context"
	"sync"

	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// userRepository is an in-memory implementation of the user collection.
// All state lives for the lifetime of the process; there is no durability.
// A single RWMutex guards the collection so reads never observe a partially
// applied write.
type userRepository struct {
	mu     sync.RWMutex
	users  []models.User
	logger *zap.Logger
}

// NewUserRepository creates a new in-memory user repository
func NewUserRepository(logger *zap.Logger) *userRepository {
	return &userRepository{
		users:  make([]models.User, 0),
		logger: logger,
	}
}

// List returns a defensive copy of all users in insertion order
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

// GetByEmail retrieves a user by email
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

// ExistsByEmail checks if a user with such email exists
func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Create appends a new user to the collection
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, *user)
	return nil
}

// Update merges the set fields of the partial over the stored user and
// returns the updated copy. Unset fields keep their prior value.
func (r *userRepository) Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID != id {
			continue
		}
		if upd.Name != nil {
			r.users[i].Name = *upd.Name
		}
		if upd.Email != nil {
			r.users[i].Email = *upd.Email
		}
		if upd.PasswordHash != nil {
			r.users[i].PasswordHash = *upd.PasswordHash
		}
		if upd.Role != nil {
			r.users[i].Role = *upd.Role
		}
		u := r.users[i]
		return &u, nil
	}
	return nil, models.ErrNotFound
}

// Delete removes a user by ID and reports whether a row was removed.
// Deleting an absent ID is a no-op, not an error.
func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
