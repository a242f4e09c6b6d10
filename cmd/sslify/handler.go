package main

import (
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heroku/sslify"
	"github.com/heroku/sslify/cmdutil/https"
	"github.com/heroku/sslify/cmdutil/svclog"
	"github.com/heroku/sslify/hmiddleware"
)

type config struct {
	UpstreamURL *url.URL `env:"UPSTREAM_URL,required"`

	// RefusePlaintext answers plaintext requests with 403 instead of a
	// redirect.
	RefusePlaintext bool `env:"SSLIFY_REFUSE_PLAINTEXT"`

	// ACMEValidationURL hands ACME http-01 challenges to Heroku ACM.
	ACMEValidationURL *url.URL `env:"ACME_HTTP_VALIDATION_URL"`

	// Development relaxes the browser hardening headers.
	Development bool `env:"DEVELOPMENT"`

	Enforcer sslify.Config
	HTTPS    https.Config
	Logger   svclog.Config
}

// newHandler builds the middleware chain in front of the upstream proxy.
func newHandler(logger logrus.FieldLogger, cfg config) (http.Handler, error) {
	if cfg.UpstreamURL == nil || !cfg.UpstreamURL.IsAbs() {
		return nil, errors.Errorf("UPSTREAM_URL must be an absolute url, got %q", cfg.UpstreamURL)
	}
	if err := cfg.Enforcer.Validate(); err != nil {
		return nil, err
	}

	e := sslify.New(cfg.Enforcer, sslify.WithLogger(logger))
	enforce := e.Middleware
	if cfg.Enforcer.UseSSL && cfg.RefusePlaintext {
		enforce = hmiddleware.EnsureTLS(e)
	}

	r := chi.NewRouter()
	r.Use(hmiddleware.RequestID)
	r.Use(hmiddleware.PostRequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(hmiddleware.ACMEValidationMiddleware(cfg.ACMEValidationURL))
	r.Use(hmiddleware.SecureHeaders(cfg.Development))
	r.Use(enforce)
	r.Handle("/*", newProxy(logger, cfg.UpstreamURL))

	return r, nil
}

// newProxy forwards to upstream, telling it when the client connection was
// TLS terminated here.
func newProxy(logger logrus.FieldLogger, upstream *url.URL) *httputil.ReverseProxy {
	proxy := httputil.NewSingleHostReverseProxy(upstream)

	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		if r.TLS != nil {
			r.Header.Set(sslify.HeaderForwardedProto, "https")
		}
	}

	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		logger.WithFields(logrus.Fields{
			"at":       "proxy-error",
			"upstream": upstream.Host,
		}).WithError(err).Error()
		w.WriteHeader(http.StatusBadGateway)
	}

	return proxy
}
