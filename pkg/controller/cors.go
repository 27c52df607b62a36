package controller

import "net/http"

// corsAllowedHeaders lists the request headers a browser client may send,
// including the API key used for rate-limit identification.
const corsAllowedHeaders = "Content-Type, Content-Length, Accept-Encoding, Accept, Origin, Cache-Control, X-Api-Key"

// WithCORS returns a middleware that attaches permissive CORS headers to
// every response and answers OPTIONS preflight with 204 before the request
// reaches the router.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", corsAllowedHeaders)
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		next.ServeHTTP(w, r)
	})
}
