package middleware

import "net/http"

// CORS allows the configured browser origin to call the API. Only one origin
// is allowed; the frontend is the sole browser client.
type CORS struct {
	allowedOrigin string
}

// NewCORS creates a new CORS middleware instance.
func NewCORS(allowedOrigin string) *CORS {
	return &CORS{allowedOrigin: allowedOrigin}
}

// Handle wraps next with CORS headers and preflight handling.
func (m *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := r.Header.Get("Origin"); origin == m.allowedOrigin {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
