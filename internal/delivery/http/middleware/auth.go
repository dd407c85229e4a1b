package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"

	h "eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

// Session keys. Values are strings and bools only so they survive the JSON
// session codec.
const (
	SessionUserID     = "userID"
	SessionUserRole   = "userRole"
	SessionSiteAccess = "siteAccess"
)

// RequireAuth returns a wrapper that rejects requests without a logged-in
// session with 401. It never redirects.
func RequireAuth(sessions *scs.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if sessions.GetString(r.Context(), SessionUserID) == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			next(w, r)
		}
	}
}

// RequireAdmin returns a wrapper that rejects anonymous requests with 401
// and authenticated non-admin requests with 403.
func RequireAdmin(sessions *scs.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if sessions.GetString(r.Context(), SessionUserID) == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			if sessions.GetString(r.Context(), SessionUserRole) != domain.RoleAdmin {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "admin role required")
				return
			}
			next(w, r)
		}
	}
}

// RequireViewer returns a wrapper that admits viewers and admins and rejects
// everyone else.
func RequireViewer(sessions *scs.SessionManager) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if sessions.GetString(r.Context(), SessionUserID) == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			role := sessions.GetString(r.Context(), SessionUserRole)
			if role != domain.RoleViewer && role != domain.RoleAdmin {
				h.WriteJSONError(w, http.StatusForbidden, h.ErrCodeForbidden, "viewer role required")
				return
			}
			next(w, r)
		}
	}
}
