package errs

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Operations wrap these with context so callers can
// branch on kind with errors.Is while still surfacing a readable message.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrDuplicate   = errors.New("already exists")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
	ErrAuth        = errors.New("authentication failed")
)

// Validationf wraps ErrValidation with a formatted message
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrValidation, args)...)
}

// NotFoundf wraps ErrNotFound with a formatted message
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrNotFound, args)...)
}

// Duplicatef wraps ErrDuplicate with a formatted message
func Duplicatef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrDuplicate, args)...)
}

// Conflictf wraps ErrConflict with a formatted message
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrConflict, args)...)
}

// Persistence wraps a store error so callers see a single kind
func Persistence(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// Authf wraps ErrAuth with a formatted message
func Authf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, prepend(ErrAuth, args)...)
}

func prepend(err error, args []interface{}) []interface{} {
	out := make([]interface{}, 0, len(args)+1)
	out = append(out, err)
	return append(out, args...)
}
