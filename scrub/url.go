// Package scrub removes secrets from URLs before they are logged. Redirect
// locations repeat the request's query string, which may carry credentials.
package scrub

import (
	"net/url"
	"strings"
)

const scrubbedValue = "[SCRUBBED]"

// RestrictedParams are query parameters whose values never reach the logs.
// Keys are matched case-insensitively.
var RestrictedParams = map[string]bool{
	"access_token":  true,
	"api_key":       true,
	"client_secret": true,
	"code":          true,
	"password":      true,
	"refresh_token": true,
	"secret":        true,
	"token":         true,
}

// URL returns a copy of u with restricted query values and any userinfo
// password replaced. Query values that are themselves absolute URLs are
// scrubbed the same way.
func URL(u *url.URL) *url.URL {
	sc := *u

	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			sc.User = url.UserPassword(u.User.Username(), scrubbedValue)
		}
	}

	q := u.Query()
	var scrubbed bool
	for k, vals := range q {
		if RestrictedParams[strings.ToLower(k)] {
			q.Set(k, scrubbedValue)
			scrubbed = true
			continue
		}
		for i, v := range vals {
			if nested, ok := nestedURL(v); ok {
				vals[i] = nested
				scrubbed = true
			}
		}
	}
	if scrubbed {
		sc.RawQuery = q.Encode()
	}

	return &sc
}

// nestedURL scrubs v if it is an absolute URL and reports whether that
// changed anything.
func nestedURL(v string) (string, bool) {
	n, err := url.Parse(v)
	if err != nil || !n.IsAbs() || n.Host == "" {
		return v, false
	}
	if s := URL(n).String(); s != n.String() {
		return s, true
	}
	return v, false
}

// String scrubs a raw URL or request URI. Values that don't parse are
// dropped entirely.
func String(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return scrubbedValue
	}
	return URL(u).String()
}
