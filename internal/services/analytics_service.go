package services

import (
	"context"
	"fmt"

	"github.com/powerfolio/backend/internal/models"
)

// analyticsService derives summary counts over the current collections. The
// result is recomputed from scratch on every call; there is no cache and no
// incremental maintenance. Both List calls hand out snapshot copies, so the
// sums are internally consistent per collection.
type analyticsService struct {
	userRepo    UserRepository
	projectRepo ProjectRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(userRepo UserRepository, projectRepo ProjectRepository) *analyticsService {
	return &analyticsService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// Summary computes the aggregate counts. Views and likes sum over all
// projects regardless of status.
func (s *analyticsService) Summary(ctx context.Context) (*models.Analytics, error) {
	projects, err := s.projectRepo.List(ctx, models.ProjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summary := &models.Analytics{
		TotalProjects: len(projects),
		TotalUsers:    len(users),
	}
	for i := range projects {
		switch projects[i].Status {
		case models.StatusApproved:
			summary.ApprovedProjects++
		case models.StatusPending:
			summary.PendingProjects++
		case models.StatusRejected:
			summary.RejectedProjects++
		}
		summary.TotalViews += projects[i].Views
		summary.TotalLikes += projects[i].Likes
	}
	return summary, nil
}
