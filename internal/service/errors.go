package service

import "errors"

// Sentinel errors returned by services. The handler layer maps these onto
// HTTP statuses; anything not listed here is treated as a storage failure.
var (
	// Authentication
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Not found
	ErrMemberNotFound    = errors.New("member not found")
	ErrRaidGroupNotFound = errors.New("raid group not found")
	ErrBossNotFound      = errors.New("boss not found")

	// Validation
	ErrCharacterNameRequired = errors.New("character name and class are required")
	ErrInvalidRoles          = errors.New("roles must be a valid object")
)
