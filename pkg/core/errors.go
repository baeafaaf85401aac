package core

import (
	"errors"
	"fmt"
)

// FormatError reports a date or time field that does not match its fixed
// textual format.
type FormatError struct {
	Field string // "date" or "time"
	Value string
}

func (e *FormatError) Error() string {
	switch e.Field {
	case "date":
		return fmt.Sprintf("invalid date %q: use YYYY-MM-DD", e.Value)
	case "time":
		return fmt.Sprintf("invalid time %q: use HH:MM", e.Value)
	default:
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
}

// ValidationError reports a missing or unusable request parameter.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports that no record matched the lookup key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// StorageError wraps any failure returned by the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsFormat reports whether err is or wraps a *FormatError.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsNotFound reports whether err is or wraps a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsStorage reports whether err is or wraps a *StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
