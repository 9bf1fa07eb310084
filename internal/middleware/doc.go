// Package middleware provides the HTTP middleware for the guild backend.
//
// Auth is the access guard in front of every mutating route: it requires a
// bearer-scheme Authorization header and rejects the request with 403
// before the handler runs when the header is missing or the token fails
// verification. On success the request proceeds unchanged — with a single
// admin there is no identity to propagate.
//
// The remaining middleware (RequestID, Logger, Recovery, CORS) is applied
// globally in main via Chain.
package middleware
