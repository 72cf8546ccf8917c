package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Call request errors
	ErrRequestNotFound      = errors.New("call request not found")
	ErrInvalidRequestStatus = errors.New("invalid call request status")
	ErrInvalidTimeWindow    = errors.New("invalid time window")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrCastNotFound       = errors.New("cast not found")

	// Match errors
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchAlreadyOver = errors.New("match already ended")
	ErrInvalidDuration  = errors.New("invalid match duration")
	ErrInvalidExtension = errors.New("invalid extension hours")

	// Link code errors
	ErrUserNotFound = errors.New("user not found")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
