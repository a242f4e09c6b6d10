package hmiddleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/heroku/sslify"
	"github.com/heroku/sslify/hcontext"
	"github.com/heroku/sslify/scrub"
)

// PreRequestLogger is a middleware for the github.com/sirupsen/logrus to log requests.
// It logs things similar to heroku logs and adds remote_addr, user_agent and
// how the request reached us (secure, forwarded_proto).
func PreRequestLogger(l logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}
			logRequest(l, r, 0, 0, 0, "start")
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// PostRequestLogger is a middleware for the github.com/sirupsen/logrus to log requests.
// Placed outside an sslify.Enforcer it records redirects as status=301 or 302
// along with their location. Secrets in paths and locations are scrubbed.
func PostRequestLogger(l logrus.FieldLogger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww, ok := w.(middleware.WrapResponseWriter)
			if !ok {
				ww = middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			}

			t0 := time.Now()
			defer func() {
				log := l
				if loc := ww.Header().Get("Location"); loc != "" {
					log = log.WithField("location", scrub.String(loc))
				}
				logRequest(log, r, ww.Status(), ww.BytesWritten(), time.Since(t0), "finish")
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

func logRequest(l logrus.FieldLogger, r *http.Request, status int, bytes int, service time.Duration, at string) {
	requestID, ok := hcontext.RequestIDFromContext(r.Context())
	if !ok {
		requestID = hcontext.Get(r)
	}

	log := l.WithFields(logrus.Fields{
		"request_id":  requestID,
		"method":      r.Method,
		"host":        r.Host,
		"path":        scrub.String(r.URL.RequestURI()),
		"remote_addr": r.RemoteAddr,
		"user_agent":  r.UserAgent(),
		"secure":      sslify.FromHTTP(r).IsSecure(),
		"at":          at,
	})

	if proto := r.Header.Get(sslify.HeaderForwardedProto); proto != "" {
		log = log.WithField("forwarded_proto", proto)
	}

	if status > 0 {
		log = log.WithField("status", status)
	}

	if bytes > 0 {
		log = log.WithField("bytes", bytes)
	}

	if service > 0 {
		log = log.WithField("service", fmt.Sprintf("%dms", service/time.Millisecond))
	}

	log.Info()
}
