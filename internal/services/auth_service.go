package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/powerfolio/backend/internal/models"
	"github.com/powerfolio/backend/internal/session"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository is the interface that wraps methods for user collection access
type UserRepository interface {
	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)
	// GetByID retrieves a user by ID, or models.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by email, or models.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// ExistsByEmail checks if a user with such email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Create inserts a new user.
	Create(ctx context.Context, user *models.User) error
	// Update merges the set fields over the stored user.
	Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error)
	// Delete removes a user by ID and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
}

// authService implements signup, login, logout and session classification
type authService struct {
	userRepo UserRepository
	sessions *session.Manager
	logger   *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo UserRepository, sessions *session.Manager, logger *zap.Logger) *authService {
	return &authService{
		userRepo: userRepo,
		sessions: sessions,
		logger:   logger,
	}
}

// Signup registers a new user, sets it as the current session and returns it.
// The role is always "user"; admins exist only via seeding or an admin edit.
func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if req.Name == "" {
		return nil, &models.ValidationError{Field: "name"}
	}
	if req.Email == "" {
		return nil, &models.ValidationError{Field: "email"}
	}
	if req.Password == "" {
		return nil, &models.ValidationError{Field: "password"}
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("failed to check email existence", zap.Error(err))
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, models.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		s.logger.Error("failed to create user", zap.Error(err))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.sessions.Set(user)
	s.logger.Info("user signed up", zap.String("user_id", user.ID))
	return user, nil
}

// Login validates credentials and, on success, sets the session and returns
// the user. Every failure path returns the same models.ErrInvalidCredentials
// so callers cannot learn whether the email exists.
func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	s.sessions.Set(user)
	s.logger.Info("user logged in", zap.String("user_id", user.ID))
	return user, nil
}

// Logout clears the session unconditionally; it succeeds even when no
// session was active
func (s *authService) Logout(ctx context.Context) {
	s.sessions.Clear()
}

// Current returns the logged-in user, or nil when anonymous
func (s *authService) Current(ctx context.Context) *models.User {
	return s.sessions.Current()
}
