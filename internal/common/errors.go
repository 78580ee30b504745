// Package common defines shared sentinel errors used across GameBox
// components. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. Each specific rule wraps ErrValidation so callers
	// can match the class while still showing a per-rule message.
	ErrValidation       = errors.New("validation error")
	ErrNameTooShort     = fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email address", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password is too short", ErrValidation)
	ErrRecoveryTooShort = fmt.Errorf("%w: recovery phrase must be at least 4 characters", ErrValidation)
	ErrUnknownGame      = fmt.Errorf("%w: unknown game", ErrValidation)
	ErrUnknownPolicy    = fmt.Errorf("%w: unknown merge policy", ErrValidation)

	// Conflict errors.
	ErrEmailExists = errors.New("email already registered")

	// Auth errors. The same message is used for an unknown email and a wrong
	// password so that login failures do not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Admin-action guards.
	ErrNotAdmin   = errors.New("admin privileges required")
	ErrOwnAccount = errors.New("cannot target your own account")
)
