package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/delivery/http/middleware"
	"eventmicrosite/internal/domain"
)

// loginRequest is the request body for POST /api/auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *loginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Username) == "" {
		errs = append(errs, "username is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

type AuthController struct {
	Service  domain.AuthService
	Sessions *scs.SessionManager
	Logger   *slog.Logger
}

func NewAuthController(svc domain.AuthService, sessions *scs.SessionManager, logger *slog.Logger) *AuthController {
	return &AuthController{Service: svc, Sessions: sessions, Logger: logger}
}

// Login godoc
// @Summary Log in with username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} helpers.APIResponse{data=domain.User}
// @Failure 401 {object} helpers.APIResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid username or password")
			return
		}
		writeDomainError(w, c.Logger, err)
		return
	}

	// A fresh token on privilege change prevents session fixation.
	if err := c.Sessions.RenewToken(r.Context()); err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	c.Sessions.Put(r.Context(), middleware.SessionUserID, strconv.FormatInt(user.ID, 10))
	c.Sessions.Put(r.Context(), middleware.SessionUserRole, user.Role)
	h.WriteJSONSuccess(w, http.StatusOK, user)
}

// Logout godoc
// @Summary Destroy the current session
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Destroy(r.Context()); err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"loggedOut": true})
}

// Session godoc
// @Summary Return the currently logged-in user
// @Tags auth
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.User}
// @Failure 401 {object} helpers.APIResponse
// @Router /api/auth/session [get]
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	raw := c.Sessions.GetString(r.Context(), middleware.SessionUserID)
	if raw == "" {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not logged in")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not logged in")
		return
	}
	user, err := c.Service.GetUser(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// The account was removed after login; drop the stale session.
			_ = c.Sessions.Destroy(r.Context())
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "not logged in")
			return
		}
		writeDomainError(w, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, user)
}
