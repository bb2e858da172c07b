package repositories

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// projectRepository is an in-memory implementation of the project collection.
// Projects are held in insertion order; the filter sorts copies, never the
// stored slice, so insertion order survives as the tie-breaker for equal
// creation times.
type projectRepository struct {
	mu       sync.RWMutex
	projects []models.Project
	logger   *zap.Logger
}

// NewProjectRepository creates a new in-memory project repository
func NewProjectRepository(logger *zap.Logger) *projectRepository {
	return &projectRepository{
		projects: make([]models.Project, 0),
		logger:   logger,
	}
}

// cloneProject copies a project including its technologies slice, so callers
// can mutate the result without touching stored state
func cloneProject(p models.Project) models.Project {
	p.Technologies = slices.Clone(p.Technologies)
	return p
}

// List returns the projects matching every active predicate of the filter,
// sorted by creation time descending. The sort is stable: projects with
// equal creation times keep their insertion order.
func (r *projectRepository) List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Project, 0, len(r.projects))
	for i := range r.projects {
		if matchesFilter(&r.projects[i], &filter) {
			out = append(out, cloneProject(r.projects[i]))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// matchesFilter applies the AND-combined predicates; an unset field imposes
// no constraint
func matchesFilter(p *models.Project, f *models.ProjectFilter) bool {
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.UserID != "" && p.UserID != f.UserID {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	return true
}

// matchesSearch checks the search term against title, description, and each
// technology entry, case-insensitively
func matchesSearch(p *models.Project, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tech := range p.Technologies {
		if strings.Contains(strings.ToLower(tech), needle) {
			return true
		}
	}
	return false
}

// GetByID retrieves a project by ID
func (r *projectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			p := cloneProject(r.projects[i])
			return &p, nil
		}
	}
	return nil, models.ErrNotFound
}

// Create appends a new project to the collection
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects = append(r.projects, cloneProject(*project))
	return nil
}

// Update merges the set fields of the partial over the stored project and
// returns the updated copy. Counters and CreatedAt are not reachable from
// here; they only move through the increment operations.
func (r *projectRepository) Update(ctx context.Context, id string, upd *models.ProjectUpdate) (*models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID != id {
			continue
		}
		if upd.Title != nil {
			r.projects[i].Title = *upd.Title
		}
		if upd.Description != nil {
			r.projects[i].Description = *upd.Description
		}
		if upd.Category != nil {
			r.projects[i].Category = *upd.Category
		}
		if upd.Technologies != nil {
			r.projects[i].Technologies = slices.Clone(*upd.Technologies)
		}
		if upd.GithubURL != nil {
			r.projects[i].GithubURL = *upd.GithubURL
		}
		if upd.LiveURL != nil {
			r.projects[i].LiveURL = *upd.LiveURL
		}
		if upd.Image != nil {
			r.projects[i].Image = *upd.Image
		}
		if upd.Status != nil {
			r.projects[i].Status = *upd.Status
		}
		p := cloneProject(r.projects[i])
		return &p, nil
	}
	return nil, models.ErrNotFound
}

// Delete removes a project by ID and reports whether a row was removed
func (r *projectRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// IncrementViews adds one to the view counter. The read-modify-write runs
// under the write lock so concurrent callers cannot lose updates.
func (r *projectRepository) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects[i].Views++
			return nil
		}
	}
	return models.ErrNotFound
}

// IncrementLikes adds one to the like counter and returns the new count.
// Same locking discipline as IncrementViews.
func (r *projectRepository) IncrementLikes(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].ID == id {
			r.projects[i].Likes++
			return r.projects[i].Likes, nil
		}
	}
	return 0, models.ErrNotFound
}
