/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

package hmiddleware

import (
	"net/http"

	"github.com/heroku/sslify"
)

// EnsureTLS refuses requests that neither arrived over TLS nor were proxied
// via https from the upstream reverse proxy, instead of redirecting them. It
// suits APIs whose clients would not follow a redirect for a POST anyway.
//
// Accepted requests are handled by e, so TLS responses still get the HSTS
// header. The check relies on the X-Forwarded-Proto header which is not
// defined by any formal standard. For more information on this header, see
// https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/X-Forwarded-Proto.
func EnsureTLS(e *sslify.Enforcer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		enforced := e.Middleware(next)

		fn := func(w http.ResponseWriter, r *http.Request) {
			req := sslify.FromHTTP(r)
			if !req.IsSecure() && req.Header(sslify.HeaderForwardedProto) != "https" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			enforced.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}
