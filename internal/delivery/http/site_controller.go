package http

import (
	"log/slog"
	"net/http"

	"github.com/alexedwards/scs/v2"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/delivery/http/middleware"
	"eventmicrosite/internal/domain"
)

// sitePasswordRequest is the body for POST /api/site/verify-password.
type sitePasswordRequest struct {
	Password string `json:"password"`
}

func (r *sitePasswordRequest) Validate() []string {
	if r.Password == "" {
		return []string{"password is required"}
	}
	return nil
}

// SiteController handles the shared-passphrase access gate endpoints.
type SiteController struct {
	Service  domain.AuthService
	Sessions *scs.SessionManager
	Logger   *slog.Logger
}

func NewSiteController(svc domain.AuthService, sessions *scs.SessionManager, logger *slog.Logger) *SiteController {
	return &SiteController{Service: svc, Sessions: sessions, Logger: logger}
}

// VerifyPassword godoc
// @Summary Submit the shared site passphrase
// @Tags site
// @Accept json
// @Produce json
// @Param passphrase body sitePasswordRequest true "Passphrase"
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/site/verify-password [post]
func (c *SiteController) VerifyPassword(w http.ResponseWriter, r *http.Request) {
	var req sitePasswordRequest
	if !DecodeAndValidate(w, r, &req) {
		return
	}
	ok, err := c.Service.VerifySitePassword(r.Context(), req.Password)
	if err != nil {
		writeDomainError(w, c.Logger, err)
		return
	}
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "incorrect password")
		return
	}
	c.Sessions.Put(r.Context(), middleware.SessionSiteAccess, true)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"access": true})
}

// CheckAccess godoc
// @Summary Report whether the session already has site access
// @Tags site
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /api/site/check-access [get]
func (c *SiteController) CheckAccess(w http.ResponseWriter, r *http.Request) {
	access := c.Sessions.GetBool(r.Context(), middleware.SessionSiteAccess)
	h.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"access": access})
}
