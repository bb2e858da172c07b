package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// defaultProjectImage is used when a submission does not include an image URL
const defaultProjectImage = "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=800"

// ProjectRepository is the interface that wraps methods for project collection access
type ProjectRepository interface {
	// List returns the projects matching the filter, newest first.
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	// GetByID retrieves a project by ID, or models.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Project, error)
	// Create inserts a new project.
	Create(ctx context.Context, project *models.Project) error
	// Update merges the set fields over the stored project.
	Update(ctx context.Context, id string, upd *models.ProjectUpdate) (*models.Project, error)
	// Delete removes a project by ID and reports whether a row was removed.
	Delete(ctx context.Context, id string) (bool, error)
	// IncrementViews adds one to the view counter atomically.
	IncrementViews(ctx context.Context, id string) error
	// IncrementLikes adds one to the like counter atomically and returns the new count.
	IncrementLikes(ctx context.Context, id string) (int, error)
}

// projectService implements project submission, browsing and ownership mutations
type projectService struct {
	projectRepo ProjectRepository
	logger      *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo ProjectRepository, logger *zap.Logger) *projectService {
	return &projectService{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Create validates a submission and inserts it for the given owner. New
// projects always start pending with zero likes and views; the owner's name
// is snapshotted into the project and never synced with later renames.
func (s *projectService) Create(ctx context.Context, owner *models.User, req *models.CreateProjectRequest) (*models.Project, error) {
	if req.Title == "" {
		return nil, &models.ValidationError{Field: "title"}
	}
	if req.Description == "" {
		return nil, &models.ValidationError{Field: "description"}
	}
	if len(req.Technologies) == 0 {
		return nil, &models.ValidationError{Field: "technologies"}
	}

	image := req.Image
	if image == "" {
		image = defaultProjectImage
	}

	project := &models.Project{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Technologies: req.Technologies,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Image:        image,
		UserID:       owner.ID,
		UserName:     owner.Name,
		Status:       models.StatusPending,
		Likes:        0,
		Views:        0,
		CreatedAt:    time.Now(),
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		s.logger.Error("failed to create project", zap.Error(err))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.logger.Info("project submitted",
		zap.String("project_id", project.ID),
		zap.String("user_id", owner.ID),
	)
	return project, nil
}

// List returns the projects matching the filter
func (s *projectService) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	return s.projectRepo.List(ctx, filter)
}

// Get retrieves a single project by ID
func (s *projectService) Get(ctx context.Context, id string) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// RecordView adds one view to the project. Unknown IDs are ignored: a stale
// detail page must not surface an error to the visitor.
func (s *projectService) RecordView(ctx context.Context, id string) {
	if err := s.projectRepo.IncrementViews(ctx, id); err != nil && err != models.ErrNotFound {
		s.logger.Error("failed to record view", zap.Error(err), zap.String("project_id", id))
	}
}

// ToggleLike adds one like and returns the new count. Despite the name there
// is no per-user dedup: every call from any user counts, matching the
// product's behavior.
func (s *projectService) ToggleLike(ctx context.Context, id string) (int, error) {
	return s.projectRepo.IncrementLikes(ctx, id)
}

// Update applies a partial update on behalf of the actor. Only the owner or
// an admin may update; no business rules are re-validated, so a rejected
// project can be edited back into any status.
func (s *projectService) Update(ctx context.Context, actor *models.User, id string, upd *models.ProjectUpdate) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canModify(actor, project) {
		return nil, models.ErrForbidden
	}
	return s.projectRepo.Update(ctx, id, upd)
}

// Delete removes a project on behalf of the actor and reports whether a row
// was removed. Deleting an absent ID is a no-op. Owner-or-admin only.
func (s *projectService) Delete(ctx context.Context, actor *models.User, id string) (bool, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err == models.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !canModify(actor, project) {
		return false, models.ErrForbidden
	}
	return s.projectRepo.Delete(ctx, id)
}

// canModify reports whether the actor owns the project or is an admin
func canModify(actor *models.User, project *models.Project) bool {
	return actor.Role == models.RoleAdmin || actor.ID == project.UserID
}
