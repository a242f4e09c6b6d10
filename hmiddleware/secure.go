/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

package hmiddleware

import (
	"net/http"

	"github.com/unrolled/secure"
)

// SecureHeaders adds browser hardening headers (X-Frame-Options: DENY,
// X-Content-Type-Options: nosniff, X-XSS-Protection) to every response.
//
// Transport policy is left to sslify: the redirect and
// Strict-Transport-Security options of unrolled/secure stay off.
func SecureHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		IsDevelopment:      isDevelopment,
	}).Handler
}
