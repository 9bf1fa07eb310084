package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is the error shape every handler returns to clients. The body is
// always {"message": "..."}; the HTTP status is carried out of band.
type APIError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Status, e.Message)
}

// WriteJSON writes the error as a JSON response
func (e *APIError) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	_ = json.NewEncoder(w).Encode(e)
}

// Common error constructors

// NewBadRequestError reports malformed or missing input (400)
func NewBadRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError reports failed login credentials (401)
func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError reports a missing or invalid bearer token (403)
func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError reports an unknown identifier (404)
func NewNotFoundError(resource string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewInternalError reports a storage or unexpected failure (500). Callers
// pass a generic message; internal detail never reaches the client.
func NewInternalError(message string) *APIError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return &APIError{Status: http.StatusInternalServerError, Message: message}
}
