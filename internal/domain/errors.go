package domain

import (
	"errors"
	"unicode/utf8"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// ValidationError describes the first schema violation found in a payload.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// tooLong counts characters, not bytes.
func tooLong(s string, max int) bool {
	return utf8.RuneCountInString(s) > max
}
