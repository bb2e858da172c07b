package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// AdminService is the interface that wraps methods for moderation and user management.
type AdminService interface {
	// Method ListProjects returns projects of any status matching the filter.
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]models.Project, error)
	// Method SetProjectStatus moderates a submission to any of the three statuses.
	SetProjectStatus(ctx context.Context, id string, status models.Status) (*models.Project, error)
	// Method DeleteProject removes a project and reports whether a row was removed.
	DeleteProject(ctx context.Context, id string) (bool, error)
	// Method ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]models.User, error)
	// Method UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error)
	// Method DeleteUser removes a user without cascading to their projects.
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// AnalyticsService is the interface that wraps the aggregate summary computation.
type AnalyticsService interface {
	// Method Summary recomputes the aggregate counts from the current collections.
	Summary(ctx context.Context) (*models.Analytics, error)
}

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	BaseHandler
	adminService     AdminService
	analyticsService AnalyticsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService AdminService, analyticsService AnalyticsService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:      BaseHandler{Logger: logger},
		adminService:     adminService,
		analyticsService: analyticsService,
	}
}

// RegisterRoutes registers all admin handler routes
// Note: The caller wraps these in the admin role middleware
func (h *AdminHandler) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/projects", h.ListProjects)
		r.Put("/projects/{id}/status", h.SetProjectStatus)
		r.Delete("/projects/{id}", h.DeleteProject)
		r.Get("/users", h.ListUsers)
		r.Put("/users/{id}", h.UpdateUser)
		r.Delete("/users/{id}", h.DeleteUser)
		r.Get("/analytics", h.Analytics)
	})
}

// ListProjects handles GET /admin/projects
// @Summary List projects for moderation
// @Description List projects of any status, with the same filter surface as the public gallery plus status and userId.
// @Tags admin
// @Produce json
// @Param status query string false "pending | approved | rejected"
// @Param userId query string false "Owning user ID"
// @Param category query string false "Exact category match"
// @Param search query string false "Substring search"
// @Success 200 {array} models.Project
// @Router /admin/projects [get]
func (h *AdminHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.ProjectFilter{
		Status:   models.Status(q.Get("status")),
		UserID:   q.Get("userId"),
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.RespondError(w, http.StatusBadRequest, "unknown status")
		return
	}

	projects, err := h.adminService.ListProjects(r.Context(), filter)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, projects)
}

// SetProjectStatus handles PUT /admin/projects/{id}/status
// @Summary Moderate a project
// @Description Approve or reject a submission. Re-approving a rejected project is allowed.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param request body object{status=string} true "New status"
// @Success 200 {object} models.Project
// @Failure 400 {object} map[string]string "Unknown status"
// @Failure 404 {object} map[string]string
// @Router /admin/projects/{id}/status [put]
func (h *AdminHandler) SetProjectStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status models.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	project, err := h.adminService.SetProjectStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, project)
}

// DeleteProject handles DELETE /admin/projects/{id}
// @Summary Delete any project
// @Tags admin
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} map[string]bool
// @Router /admin/projects/{id} [delete]
func (h *AdminHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	removed, err := h.adminService.DeleteProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// ListUsers handles GET /admin/users
// @Summary List users
// @Tags admin
// @Produce json
// @Success 200 {array} models.User
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminService.ListUsers(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, users)
}

// UpdateUser handles PUT /admin/users/{id}
// @Summary Update a user
// @Description Partially update a user. Renames do not rewrite the name snapshots on existing projects.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.User
// @Failure 404 {object} map[string]string
// @Router /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var upd models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.adminService.UpdateUser(r.Context(), chi.URLParam(r, "id"), &upd)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, user)
}

// DeleteUser handles DELETE /admin/users/{id}
// @Summary Delete a user
// @Description Delete a user. Their projects stay in place with a dangling userId.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]bool
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	removed, err := h.adminService.DeleteUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]bool{"removed": removed})
}

// Analytics handles GET /admin/analytics
// @Summary Aggregate analytics
// @Description Point-in-time counts of projects by status plus total users, views and likes.
// @Tags admin
// @Produce json
// @Success 200 {object} models.Analytics
// @Router /admin/analytics [get]
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.Summary(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}
	h.RespondJSON(w, http.StatusOK, summary)
}
