// Package handler contains the HTTP layer of the guild backend.
//
// Handlers are thin translators between HTTP verbs/paths and service calls:
// they decode JSON bodies, delegate, and write the result back. Success
// responses are the bare entity or list; every error response is
// {"message": "..."} with the status carried by the error type.
//
// Service errors are converted in one place, MapServiceError, so status
// codes stay consistent across the API. Storage and unexpected failures
// collapse into a generic 500 with no internal detail.
package handler
