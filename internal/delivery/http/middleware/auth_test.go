package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventmicrosite/internal/delivery/http/helpers"
	"eventmicrosite/internal/domain"
)

func newTestSessions() *scs.SessionManager {
	sessions := scs.New()
	sessions.Store = memstore.New()
	return sessions
}

// serve runs the wrapped handler inside LoadAndSave with the given session
// values pre-set and returns the recorded response.
func serve(t *testing.T, sessions *scs.SessionManager, wrapped http.HandlerFunc, values map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	handler := sessions.LoadAndSave(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for k, v := range values {
			sessions.Put(r.Context(), k, v)
		}
		wrapped(w, r)
	}))
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/events", nil))
	return rr
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	return env.Error.Code
}

func TestRequireAdmin(t *testing.T) {
	sessions := newTestSessions()
	var called bool
	wrapped := RequireAdmin(sessions)(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	t.Run("anonymous gets 401", func(t *testing.T) {
		called = false
		rr := serve(t, sessions, wrapped, nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, helpers.ErrCodeUnauthorized, errCode(t, rr))
		assert.False(t, called)
	})

	t.Run("viewer gets 403", func(t *testing.T) {
		called = false
		rr := serve(t, sessions, wrapped, map[string]any{
			SessionUserID: "2", SessionUserRole: domain.RoleViewer,
		})
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, helpers.ErrCodeForbidden, errCode(t, rr))
		assert.False(t, called)
	})

	t.Run("admin passes", func(t *testing.T) {
		called = false
		rr := serve(t, sessions, wrapped, map[string]any{
			SessionUserID: "1", SessionUserRole: domain.RoleAdmin,
		})
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, called)
	})
}

func TestRequireAuth(t *testing.T) {
	sessions := newTestSessions()
	wrapped := RequireAuth(sessions)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rr := serve(t, sessions, wrapped, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = serve(t, sessions, wrapped, map[string]any{
		SessionUserID: "2", SessionUserRole: domain.RoleViewer,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireViewer(t *testing.T) {
	sessions := newTestSessions()
	wrapped := RequireViewer(sessions)(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("viewer and admin both pass", func(t *testing.T) {
		for _, role := range []string{domain.RoleViewer, domain.RoleAdmin} {
			rr := serve(t, sessions, wrapped, map[string]any{
				SessionUserID: "1", SessionUserRole: role,
			})
			assert.Equal(t, http.StatusOK, rr.Code, "role %s", role)
		}
	})

	t.Run("unknown role gets 403", func(t *testing.T) {
		rr := serve(t, sessions, wrapped, map[string]any{
			SessionUserID: "1", SessionUserRole: "intern",
		})
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}
