package middleware

import "net/http"

// CORS applies one permissive policy to every route, the share gateway
// included, and answers preflight requests itself.
type CORS struct{}

// NewCORS creates a new CORS middleware instance.
func NewCORS() *CORS {
	return &CORS{}
}

// Handle sets the CORS headers and short-circuits OPTIONS with 204.
func (m *CORS) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
