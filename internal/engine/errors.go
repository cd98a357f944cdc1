package engine

import (
	"errors"
	"fmt"
)

// Validation error codes. Each maps to a single offending field so editors
// can refocus it.
const (
	CodeEmptyName     = "empty_name"
	CodeNameTooLong   = "name_too_long"
	CodeDuplicateName = "duplicate_name"
)

// ValidationError is a locally recoverable input error. It identifies the
// offending field and carries a stable machine-readable code.
type ValidationError struct {
	Field   string
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidationCode returns the code of a wrapped ValidationError, or "".
func ValidationCode(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

// PersistenceError wraps a store failure. Callers roll back any optimistic
// UI mutation and surface a generic retry prompt; the engine never retries.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}

func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}
