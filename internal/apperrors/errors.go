// Package apperrors defines the error kinds the store layer reports and the
// API layer translates to HTTP statuses. Repositories wrap these sentinels
// with context; handlers classify with errors.Is.
package apperrors

import "github.com/pkg/errors"

var (
	// ErrValidation marks missing or malformed input (maps to 400).
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a referenced comment that does not exist (maps to 404).
	ErrNotFound = errors.New("not found")
	// ErrAuthorization marks an actor that does not own the resource (maps to 403).
	ErrAuthorization = errors.New("not authorized")
	// ErrStore marks an underlying persistence failure (maps to 500).
	ErrStore = errors.New("store error")
)

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAuthorization reports whether err is an authorization error.
func IsAuthorization(err error) bool { return errors.Is(err, ErrAuthorization) }
