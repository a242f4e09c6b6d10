package hmiddleware

import (
	"net/http"

	"github.com/heroku/sslify/hcontext"
)

// RequestID makes sure every request carries a request ID, generating one if
// the client or router didn't send it. The ID is stored in the request
// context and echoed in the X-Request-Id response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := hcontext.FromRequest(r)
		w.Header().Set(hcontext.RequestIDHeader, requestID)

		ctx := hcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
