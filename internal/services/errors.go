package services

import (
	"errors"
	"fmt"

	apperrors "github.com/edusphere/edusphere/internal/errors"
)

// ===== COMMON SERVICE ERRORS =====

var (
	// Generic errors
	ErrNotFound         = errors.New("resource not found")
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrForbidden        = errors.New("forbidden - insufficient permissions")
	ErrValidationFailed = errors.New("validation failed")

	// Auth errors. One message for unknown user and wrong password; the
	// caller cannot tell which credential was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotAuthenticated   = errors.New("no user is logged in")

	// Course errors
	ErrCourseNotFound  = errors.New("course not found")
	ErrCourseNameTaken = errors.New("a course with this name already exists")
	ErrCourseCodeTaken = errors.New("a course with this code already exists")
	ErrNoCourseSelected = errors.New("no course is selected")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("assignment not found")

	// Template errors
	ErrTemplateNotFound = errors.New("template not found")
)

// ===== CUSTOM ERROR TYPES =====

// Use shared validation errors from errors package
type ValidationError = apperrors.ValidationError
type ValidationErrors = apperrors.ValidationErrors

type PermissionError struct {
	UserID   string `json:"user_id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Reason   string `json:"reason"`
}

func (pe *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: user %s cannot %s %s - %s",
		pe.UserID, pe.Action, pe.Resource, pe.Reason)
}

func NewPermissionError(userID, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		Action:   action,
		Reason:   reason,
	}
}

// ===== ERROR HELPERS =====

// IsNotFound checks if error represents a "not found" condition
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrAssignmentNotFound) ||
		errors.Is(err, ErrTemplateNotFound)
}

// IsPermission checks if error represents a permission failure
func IsPermission(err error) bool {
	if errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrForbidden) {
		return true
	}
	var pe *PermissionError
	return errors.As(err, &pe)
}

// IsValidation checks if error represents a validation failure
func IsValidation(err error) bool {
	if errors.Is(err, ErrValidationFailed) ||
		errors.Is(err, ErrCourseNameTaken) ||
		errors.Is(err, ErrCourseCodeTaken) {
		return true
	}
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// IsConflict checks if error represents a uniqueness conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrCourseNameTaken) ||
		errors.Is(err, ErrCourseCodeTaken)
}
