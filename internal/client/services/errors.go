package services

import (
	"errors"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrTwoFactorRequired = errors.New("two-factor code required")
	ErrNoSession         = errors.New("no active session")
)

// ValidationError is a user input problem. Message is shown as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// TwoFactorRequiredError is returned by Login when the account has 2FA
// enabled. Email identifies the pending login for VerifyTwoFactorLogin.
type TwoFactorRequiredError struct {
	Email string
}

func (e *TwoFactorRequiredError) Error() string { return "two-factor code required for " + e.Email }

func (e *TwoFactorRequiredError) Unwrap() error { return ErrTwoFactorRequired }
