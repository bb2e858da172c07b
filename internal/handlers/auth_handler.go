package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/powerfolio/backend/internal/models"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Signup registers a new user and sets it as the current session.
	//
	// "req" parameter contains name, email and password.
	//
	// If the email is already registered, models.ErrEmailTaken is returned; a
	// missing required field yields a models.ValidationError.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error)
	// Method Login validates credentials and sets the current session.
	//
	// "req" parameter contains email and password.
	//
	// Every failure returns models.ErrInvalidCredentials, regardless of
	// whether the email exists.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, error)
	// Method Logout clears the current session unconditionally.
	Logout(ctx context.Context)
	// Method Current returns the logged-in user, or nil when anonymous.
	Current(ctx context.Context) *models.User
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler: BaseHandler{Logger: logger},
		authService: authService,
	}
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Get("/me", h.Me)
	})
}

// Signup handles POST /auth/signup
// @Summary Register a new user
// @Description Register a new user with name, email and password. The new user becomes the current session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string "Missing required field"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// @Summary Login
// @Description Authenticate with email and password. On success the user becomes the current session.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, user)
}

// Logout handles POST /auth/logout
// @Summary Logout
// @Description Clear the current session. Succeeds even when nobody is logged in.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.Logout(r.Context())
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Return the user of the current session.
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "No active session"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.authService.Current(r.Context())
	if user == nil {
		h.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	h.RespondJSON(w, http.StatusOK, user)
}
