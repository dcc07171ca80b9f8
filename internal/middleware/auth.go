package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/nestlist/nestlist/internal/models"
	"github.com/nestlist/nestlist/internal/session"
)

type ctxKey string

const principalKey ctxKey = "principal"

// WithSession resolves the session cookie and, when a live session exists,
// attaches the principal to the request context. Anonymous requests pass
// through untouched; a store failure during resolution is logged and the
// request proceeds as anonymous rather than failing the whole page.
func WithSession(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := m.Principal(r)
			if err != nil {
				slog.Error("session lookup failed", "path", r.URL.Path, "error", err)
			}
			if principal != nil {
				ctx := context.WithValue(r.Context(), principalKey, principal)
				r = r.WithContext(ctx)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Principal returns the authenticated session bound to the request, or nil.
func Principal(ctx context.Context) *models.Session {
	p, _ := ctx.Value(principalKey).(*models.Session)
	return p
}

// RequireSession redirects anonymous requests to /login. Used by
// dashboard-class routes.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Principal(r.Context()) == nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin responds 403 unless the session principal's email exactly
// matches adminEmail.
func RequireAdmin(adminEmail string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := Principal(r.Context())
			if p == nil || p.Email != adminEmail {
				http.Error(w, "Access denied", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
