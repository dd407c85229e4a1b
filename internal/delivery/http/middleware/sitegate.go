package middleware

import (
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	h "eventmicrosite/internal/delivery/http/helpers"
)

// Paths the site gate never blocks. Static assets load on the passphrase
// prompt itself, and the two site endpoints are how access is obtained.
var gateAllowedPrefixes = []string{
	"/css/",
	"/js/",
	"/images/",
	"/uploads/",
	"/media/",
	"/swagger/",
}

var gateAllowedPaths = map[string]bool{
	"/api/site/verify-password": true,
	"/api/site/check-access":    true,
}

// SiteGate blocks API traffic until the session carries the site access
// flag, set by a successful shared-passphrase submission. Non-API paths pass
// through; the browser layer decides whether to prompt. The 401 carries a
// machine-readable code so clients can tell "need passphrase" apart from
// "need login".
func SiteGate(sessions *scs.SessionManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gateAllowedPaths[r.URL.Path] {
			next.ServeHTTP(w, r)
			return
		}
		for _, prefix := range gateAllowedPrefixes {
			if strings.HasPrefix(r.URL.Path, prefix) {
				next.ServeHTTP(w, r)
				return
			}
		}
		if sessions.GetBool(r.Context(), SessionSiteAccess) {
			next.ServeHTTP(w, r)
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeSiteAccessRequired, "site password required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
