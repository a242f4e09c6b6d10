package sslify

import (
	"io"
	"net/http"

	"github.com/felixge/httpsnoop"
	"github.com/sirupsen/logrus"
)

// Middleware wraps next with the redirect and HSTS hooks. It returns next
// unchanged when the Enforcer's config has UseSSL off.
//
// Redirects are written before next runs. The HSTS header is added just
// before the response headers go out, so a value set by next wins.
func (e *Enforcer) Middleware(next http.Handler) http.Handler {
	if !e.cfg.UseSSL {
		return next
	}

	fn := func(w http.ResponseWriter, r *http.Request) {
		req := FromHTTP(r)

		if d := e.DecideRedirect(req); d.Redirect {
			e.logger.WithFields(logrus.Fields{
				"at":       "redirect",
				"status":   d.StatusCode,
				"location": d.URL,
			}).Debug()
			http.Redirect(w, r, d.URL, d.StatusCode)
			return
		}

		if !req.IsSecure() {
			next.ServeHTTP(w, r)
			return
		}

		hw := &hstsWriter{e: e, req: req, w: w}
		next.ServeHTTP(hw.wrap(), r)
		hw.decorate()
	}
	return http.HandlerFunc(fn)
}

// Handler is shorthand for New(cfg, opts...).Middleware(next).
func Handler(cfg Config, next http.Handler, opts ...Option) http.Handler {
	return New(cfg, opts...).Middleware(next)
}

// hstsWriter runs DecorateResponse once, right before headers are sent.
type hstsWriter struct {
	e    *Enforcer
	req  Request
	w    http.ResponseWriter
	done bool
}

func (hw *hstsWriter) decorate() {
	if hw.done {
		return
	}
	hw.done = true
	hw.e.DecorateResponse(hw.req, hw.w.Header())
}

// wrap keeps the optional interfaces of the underlying writer.
func (hw *hstsWriter) wrap() http.ResponseWriter {
	return httpsnoop.Wrap(hw.w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				hw.decorate()
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				hw.decorate()
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				hw.decorate()
				return next(src)
			}
		},
		Flush: func(next httpsnoop.FlushFunc) httpsnoop.FlushFunc {
			return func() {
				hw.decorate()
				next()
			}
		},
	})
}
