package middleware

import "net/http"

// MaxBytes caps incoming request bodies (OOM protection). Oversized payloads
// fail at json.Decode time with a 400 from the handler.
func MaxBytes(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
