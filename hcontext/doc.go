// Package hcontext carries per-request values, currently the request ID, through
// contexts so that redirect and access log lines can be correlated.
package hcontext
