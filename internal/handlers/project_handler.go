package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/powerfolio/backend/internal/models"
	"github.com/powerfolio/backend/internal/session"
	"go.uber.org/zap"
)

// ProjectService is the interface that wraps methods for project business logic.
type ProjectService interface {
	// Method Create validates and inserts a submission for the owner; new
	// projects start pending with zero likes and views.
	Create(ctx context.Context, owner *models.User, req *models.CreateProjectRequest) (*models.Project, error)
	// Method List returns the projects matching the filter, newest first.
	List(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	// Method Get retrieves a project by ID, or models.ErrNotFound.
	Get(ctx context.Context, id string) (*models.Project, error)
	// Method RecordView adds one view; unknown IDs are ignored.
	RecordView(ctx context.Context, id string)
	// Method ToggleLike adds one like and returns the new count. No per-user
	// dedup exists.
	ToggleLike(ctx context.Context, id string) (int, error)
	// Method Update applies a partial update; owner-or-admin only.
	Update(ctx context.Context, actor *models.User, id string, upd *models.ProjectUpdate) (*models.Project, error)
	// Method Delete removes a project; owner-or-admin only. Reports whether a
	// row was removed.
	Delete(ctx context.Context, actor *models.User, id string) (bool, error)
}

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	BaseHandler
	projectService ProjectService
	sessions       *session.Manager
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService ProjectService, sessions *session.Manager, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{
		BaseHandler:    BaseHandler{Logger: logger},
		projectService: projectService,
		sessions:       sessions,
	}
}

// RegisterRoutes registers the public project routes.
// Note: This assumes the router is already scoped to /api/v1. Patterns are
// registered flat (not via Route) because the authenticated group adds more
// methods on the same paths and chi only mounts a subrouter once.
func (h *ProjectHandler) RegisterRoutes(r chi.Router) {
	r.Get("/projects", h.ListApproved)
	r.Get("/projects/{id}", h.GetDetail)
}

// RegisterAuthenticatedRoutes registers the routes that need a session
func (h *ProjectHandler) RegisterAuthenticatedRoutes(r chi.Router) {
	r.Post("/projects", h.Create)
	r.Get("/projects/mine", h.ListMine)
	r.Put("/projects/{id}", h.Update)
	r.Delete("/projects/{id}", h.Delete)
	r.Post("/projects/{id}/like", h.Like)
}

// ListApproved handles GET /projects
// @Summary Browse approved projects
// @Description List approved projects, optionally filtered by category and search term, newest first.
// @Tags projects
// @Produce json
// @Param category query string false "Exact category match ('all' means any)"
// @Param search query string false "Case-insensitive substring over title, description and technologies"
// @Success 200 {array} models.Project
// @Router /projects [get]
func (h *ProjectHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	filter := models.ProjectFilter{
		Status:   models.StatusApproved,
		Category: r.URL.Query().Get("category"),
		Search:   r.URL.Query().Get("search"),
	}
	// The gallery treats "all" as no category constraint
	if filter.Category == "all" {
		filter.Category = ""
	}

	projects, err := h.projectService.List(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, projects)
}

// GetDetail handles GET /projects/{id}
// @Summary Project detail
// @Description Fetch a single project. Opening a detail view counts one view.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.Get(r.Context(), id)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.projectService.RecordView(r.Context(), id)

	h.RespondJSON(w, http.StatusOK, project)
}

// Create handles POST /projects
// @Summary Submit a project
// @Description Submit a new project. It enters moderation with status pending.
// @Tags projects
// @Accept json
// @Produce json
// @Param request body models.CreateProjectRequest true "Project submission"
// @Success 201 {object} models.Project
// @Failure 400 {object} map[string]string "Missing required field"
// @Failure 401 {object} map[string]string
// @Router /projects [post]
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner := h.sessions.Current()
	if owner == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectService.Create(r.Context(), owner, &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusCreated, project)
}

// ListMine handles GET /projects/mine
// @Summary My projects
// @Description List the current user's projects across all statuses.
// @Tags projects
// @Produce json
// @Success 200 {array} models.Project
// @Failure 401 {object} map[string]string
// @Router /projects/mine [get]
func (h *ProjectHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	user := h.sessions.Current()
	if user == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	projects, err := h.projectService.List(r.Context(), models.ProjectFilter{UserID: user.ID})
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, projects)
}

// Update handles PUT /projects/{id}
// @Summary Update a project
// @Description Partially update a project. Owner or admin only; absent fields keep their value.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body models.ProjectUpdate true "Fields to change"
// @Success 200 {object} models.Project
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor := h.sessions.Current()
	if actor == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var upd models.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.projectService.Update(r.Context(), actor, chi.URLParam(r, "id"), &upd)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, project)
}

// Delete handles DELETE /projects/{id}
// @Summary Delete a project
// @Description Delete a project. Owner or admin only; deleting an absent ID reports removed=false.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} map[string]string
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := h.sessions.Current()
	if actor == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	removed, err := h.projectService.Delete(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// Like handles POST /projects/{id}/like
// @Summary Like a project
// @Description Add one like and return the new count. Likes are not deduplicated per user.
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]int
// @Failure 404 {object} map[string]string
// @Router /projects/{id}/like [post]
func (h *ProjectHandler) Like(w http.ResponseWriter, r *http.Request) {
	if h.sessions.Current() == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	likes, err := h.projectService.ToggleLike(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]int{"likes": likes})
}
