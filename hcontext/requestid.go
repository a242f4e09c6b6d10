/* Copyright (c) 2018 Salesforce
 * All rights reserved.
 * Licensed under the BSD 3-Clause license.
 * For full license text, see LICENSE.txt file in the repo root  or https://opensource.org/licenses/BSD-3-Clause
 */

package hcontext

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader is the header a generated request ID is stored in.
const RequestIDHeader = "X-Request-Id"

type idkey int

var ridKey idkey

// Canonical forms of Request-Id and X-Request-Id; Header.Get folds case.
var headersToSearch = []string{
	"Request-Id", RequestIDHeader,
}

// Get returns the request ID carried by r's headers, or "".
func Get(r *http.Request) string {
	for _, try := range headersToSearch {
		if id := r.Header.Get(try); id != "" {
			return id
		}
	}
	return ""
}

// FromRequest fetches the given request's request ID if it has one. Otherwise
// it generates a random one, sets it on r as X-Request-Id and returns false.
func FromRequest(r *http.Request) (id string, ok bool) {
	if id = Get(r); id != "" {
		return id, true
	}

	id = uuid.New().String()
	r.Header.Set(RequestIDHeader, id)
	return id, false
}

// WithRequestID adds the given request ID to a context for processing later
// down the chain.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ridKey, id)
}

// RequestIDFromContext fetches a request ID from the given context if it exists.
func RequestIDFromContext(ctx context.Context) (id string, ok bool) {
	id, ok = ctx.Value(ridKey).(string)
	return
}
