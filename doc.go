// Package sslify enforces encrypted transport for net/http services.
//
// An Enforcer redirects plaintext requests to their https equivalent and
// adds a Strict-Transport-Security header to responses served over TLS:
//
//	e := sslify.New(sslify.DefaultConfig())
//	http.ListenAndServe(":"+os.Getenv("PORT"), e.Middleware(h))
//
// A request counts as secure when it arrived on a TLS connection or when an upstream
// proxy reports it with "X-Forwarded-Proto: https". Only the former gets the
// HSTS header, since the enforcer cannot tell how the proxy talks to clients.
package sslify
