package sslify

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	// HeaderHSTS is the response header carrying the transport policy.
	HeaderHSTS = "Strict-Transport-Security"
	// HeaderForwardedProto is set by load balancers to the client-facing scheme.
	HeaderForwardedProto = "X-Forwarded-Proto"

	insecurePrefix = "http://"
	securePrefix   = "https://"
)

// Decision is the outcome of DecideRedirect. The zero value lets the request
// proceed unmodified.
type Decision struct {
	Redirect   bool
	URL        string
	StatusCode int
}

// Enforcer holds the redirect and HSTS policy. It is safe for concurrent use.
type Enforcer struct {
	cfg    Config
	hsts   string
	logger logrus.FieldLogger
}

// Option customizes an Enforcer.
type Option func(*Enforcer)

// WithLogger sets the logger used for redirect debug lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Enforcer) {
		e.logger = l
	}
}

// New returns an Enforcer for cfg.
func New(cfg Config, opts ...Option) *Enforcer {
	e := &Enforcer{cfg: cfg}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		e.logger = l
	}
	e.hsts = buildHSTS(cfg)
	return e
}

// Config returns the configuration e was built with.
func (e *Enforcer) Config() Config {
	return e.cfg
}

// DecideRedirect decides whether req must be redirected to https.
//
// Requests that are secure, or that a proxy reports as https, pass through.
// Insecure requests whose URL doesn't start with "http://" also pass through
// untouched.
func (e *Enforcer) DecideRedirect(req Request) Decision {
	if req.IsSecure() || req.Header(HeaderForwardedProto) == "https" {
		return Decision{}
	}

	u := req.URL()
	if !strings.HasPrefix(u, insecurePrefix) {
		return Decision{}
	}

	code := http.StatusFound
	if e.cfg.Permanent {
		code = http.StatusMovedPermanently
	}

	return Decision{
		Redirect:   true,
		URL:        strings.Replace(u, insecurePrefix, securePrefix, 1),
		StatusCode: code,
	}
}

// HSTSHeaderValue returns the Strict-Transport-Security policy.
func (e *Enforcer) HSTSHeaderValue() string {
	return e.hsts
}

// DecorateResponse sets the HSTS header on h if req is secure and h doesn't
// already carry one under any spelling of its key. It returns h.
func (e *Enforcer) DecorateResponse(req Request, h http.Header) http.Header {
	if !req.IsSecure() || hasHeader(h, HeaderHSTS) {
		return h
	}
	h.Set(HeaderHSTS, e.hsts)
	return h
}

// hasHeader also finds keys written to the map without canonicalization.
func hasHeader(h http.Header, key string) bool {
	if _, ok := h[key]; ok {
		return true
	}
	for k := range h {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}

func buildHSTS(cfg Config) string {
	v := "max-age=" + strconv.Itoa(cfg.MaxAge)
	if cfg.IncludeSubdomains {
		v += "; includeSubDomains"
	}
	return v
}
