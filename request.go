package sslify

import "net/http"

// Request is the view of an incoming request the Enforcer decides on.
type Request interface {
	// IsSecure reports whether the request reached this process over TLS.
	IsSecure() bool
	// URL is the absolute URL the client asked for.
	URL() string
	// Header returns the named header, or "" if absent.
	Header(name string) string
}

// HTTPRequest adapts an *http.Request to Request.
type HTTPRequest struct {
	R *http.Request
}

// FromHTTP returns r as a Request.
func FromHTTP(r *http.Request) HTTPRequest {
	return HTTPRequest{R: r}
}

// IsSecure is true only for requests that arrived on a TLS connection. The
// scheme of an absolute-form request URI is client input and doesn't count.
func (hr HTTPRequest) IsSecure() bool {
	return hr.R.TLS != nil
}

// URL rebuilds the URL the client addressed, with the scheme of the
// connection it used. Requests without a Host yield only their request URI.
func (hr HTTPRequest) URL() string {
	r := hr.R
	if r.Host == "" {
		return r.URL.RequestURI()
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// Header implements Request.
func (hr HTTPRequest) Header(name string) string {
	return hr.R.Header.Get(name)
}
