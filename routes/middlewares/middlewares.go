package middlewares

import (
	"net/http"

	"github.com/vip25/site/session"
)

// RequireAdmin gates everything that touches stored submissions.
// Anonymous callers are redirected to the login page instead of seeing
// data or an error payload.
func RequireAdmin(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessions.Authenticated(r) {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecurityHeaders sets the response headers the site serves on every
// page. Inline scripts and styles are allowed for the frontend
// templates.
func SecurityHeaders(next http.Handler) http.Handler {
	const csp = "default-src 'self' https://fonts.googleapis.com https://fonts.gstatic.com; " +
		"script-src 'self' 'unsafe-inline'; " +
		"style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
		"img-src 'self' data:; " +
		"media-src 'self'"

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Content-Security-Policy", csp)
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}
