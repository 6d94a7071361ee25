package middleware

import (
	"net/http"
)

// ReadOnlyMiddleware blocks mutating requests when the server runs in
// read-only mode (shared demo instances). It runs ahead of the auth
// middleware, so the super-admin bypass parses the token itself.
func ReadOnlyMiddleware(readOnly bool) func(http.Handler) http.Handler {
	allowedPosts := map[string]bool{
		"/api/login":    true,
		"/api/register": true,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if readOnly && r.Method != http.MethodGet {
				if r.Method == http.MethodPost && allowedPosts[r.URL.Path] {
					next.ServeHTTP(w, r)
					return
				}
				if claims, err := ParseTokenFromRequest(r); err == nil {
					if superAdmin, _ := claims["super_admin"].(bool); superAdmin {
						next.ServeHTTP(w, r)
						return
					}
				}
				http.Error(w, "Read-only mode: only GET requests are allowed", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
