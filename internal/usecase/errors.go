package usecase

import (
	"fmt"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func WrapError(domainError *DomainError, err error) error {
	return &DomainError{
		Code:    domainError.Code,
		Message: domainError.Message,
		Err:     err,
	}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

var (
	// NOT_FOUND
	ErrPitchNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "pitch not found",
	}
	ErrUserNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "user not found",
	}
	ErrTeamNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "team not found",
	}
	ErrClaimNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "no pending claim for this user and team",
	}
	ErrResourceNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
	ErrIssueNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "issue not found",
	}

	// VALIDATION_ERROR
	ErrTargetBelowAssigned = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "cannot reduce positions below current contributor count",
	}
	ErrNegativeTarget = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "team target must not be negative",
	}
	ErrPitchNotApproved = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "pitch is not open for claims",
	}

	// DUPLICATE_CLAIM
	ErrDuplicateClaim = &DomainError{
		Code:    "DUPLICATE_CLAIM",
		Message: "user already claimed or is pending on this pitch",
	}

	// SLOT_UNAVAILABLE
	ErrSlotUnavailable = &DomainError{
		Code:    "SLOT_UNAVAILABLE",
		Message: "all positions for this team are filled",
	}

	// ALREADY_EXISTS
	ErrAlreadyExists = &DomainError{
		Code:    "ALREADY_EXISTS",
		Message: "record already exists",
	}

	// CONFLICT
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "pitch was modified concurrently, retry the operation",
	}

	// INVALID_INPUT
	ErrInvalidInput = &DomainError{
		Code:    "INVALID_INPUT",
		Message: "invalid input",
	}
)
