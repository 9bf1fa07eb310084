package handler

import (
	"errors"

	"github.com/dwguild/backend/internal/model"
	"github.com/dwguild/backend/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrMemberNotFound):
		return model.NewNotFoundError("Member")
	case errors.Is(err, service.ErrRaidGroupNotFound):
		return model.NewNotFoundError("Raid group")
	case errors.Is(err, service.ErrBossNotFound):
		return model.NewNotFoundError("Boss")

	// ===== Validation Errors → 400 =====
	case errors.Is(err, service.ErrCharacterNameRequired),
		errors.Is(err, service.ErrInvalidRoles):
		return model.NewBadRequestError(err.Error())

	// ===== Everything else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
