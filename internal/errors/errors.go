package errors

import (
	"errors"
	"fmt"
)

var (
	ErrLinkNotFound      = errors.New("link not found")
	ErrUnsupportedInMode = errors.New("not supported in demo mode")
	ErrNotConfigured     = errors.New("datastore not configured")
	ErrDecodeFailed      = errors.New("invalid prompt encoding")
)

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// RateLimitError carries the retry-after hint surfaced to the caller.
// It is a client condition, never a system fault.
type RateLimitError struct {
	ResetIn int64 // seconds until the window frees a slot
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry in %ds", e.ResetIn)
}

func NewRateLimitError(resetIn int64) *RateLimitError {
	return &RateLimitError{ResetIn: resetIn}
}

// StoreError wraps a failed datastore call. Message is safe to echo to the
// caller; Cause is for operators only.
type StoreError struct {
	Code    string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

func NewStoreError(code, message string, cause error) *StoreError {
	return &StoreError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

func GetValidationError(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

func IsRateLimitError(err error) bool {
	var rateLimitErr *RateLimitError
	return errors.As(err, &rateLimitErr)
}

func GetRateLimitError(err error) *RateLimitError {
	var rateLimitErr *RateLimitError
	if errors.As(err, &rateLimitErr) {
		return rateLimitErr
	}
	return nil
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}

func GetStoreError(err error) *StoreError {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr
	}
	return nil
}
