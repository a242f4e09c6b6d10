/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

package hmiddleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSecureHeaders(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rw := httptest.NewRecorder()
	SecureHeaders(false)(h).ServeHTTP(rw, httptest.NewRequest("GET", "/", nil))

	if rw.Code != http.StatusOK {
		t.Fatalf("response code was %d, wanted: %d", rw.Code, http.StatusOK)
	}

	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"X-Xss-Protection":       "1; mode=block",
	}
	for k, v := range want {
		if got := rw.Header().Get(k); got != v {
			t.Errorf("got %s %q, want %q", k, got, v)
		}
	}

	for _, k := range []string{"Strict-Transport-Security", "Location"} {
		if got := rw.Header().Get(k); got != "" {
			t.Errorf("got %s %q, want none", k, got)
		}
	}
}
