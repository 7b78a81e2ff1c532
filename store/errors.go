package store

import (
	"errors"
	"fmt"
)

// ValidationError reports a rejected draft. The wrapped error carries the
// per-field messages; the collection is unchanged when it is returned.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	if e.Err == nil {
		return "invalid record"
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NotFoundError reports an update or lookup against an id that is not in
// the collection.
type NotFoundError struct {
	Key string
	ID  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: record not found: %s", e.Key, e.ID)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}
