package services

import (
	"context"

	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// adminService implements moderation and user management. Authorization is
// the router's job: these methods assume the caller already passed the admin
// gate.
type adminService struct {
	userRepo    UserRepository
	projectRepo ProjectRepository
	logger      *zap.Logger
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo UserRepository, projectRepo ProjectRepository, logger *zap.Logger) *adminService {
	return &adminService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// ListProjects returns projects of any status matching the filter
func (s *adminService) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return s.projectRepo.List(ctx, filter)
}

// SetProjectStatus moderates a submission. Any of the three statuses may be
// set, including re-approving a previously rejected project.
func (s *adminService) SetProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error) {
	if !status.Valid() {
		return nil, &models.ValidationError{Field: "status"}
	}
	project, err := s.projectRepo.Update(ctx, id, &models.ProjectUpdate{Status: &status})
	if err != nil {
		return nil, err
	}
	s.logger.Info("project moderated",
		zap.String("project_id", id),
		zap.String("status", string(status)),
	)
	return project, nil
}

// DeleteProject removes a project and reports whether a row was removed
func (s *adminService) DeleteProject(ctx context.Context, id string) (bool, error) {
	return s.projectRepo.Delete(ctx, id)
}

// ListUsers returns all registered users
func (s *adminService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser applies a partial update to a user. Renaming a user does not
// rewrite the name snapshots on their projects.
func (s *adminService) UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	if upd.Role != nil && !upd.Role.Valid() {
		return nil, &models.ValidationError{Field: "role"}
	}
	return s.userRepo.Update(ctx, id, upd)
}

// DeleteUser removes a user and reports whether a row was removed. The
// user's projects are left in place with a dangling userId; readers
// tolerate it.
func (s *adminService) DeleteUser(ctx context.Context, id string) (bool, error) {
	removed, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if removed {
		s.logger.Info("user deleted", zap.String("user_id", id))
	}
	return removed, nil
}
