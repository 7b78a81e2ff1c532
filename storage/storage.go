// Package storage provides the persistence layer for the planner.
// Collections are stored as opaque strings under fixed keys; the package
// defines the key-value interface and provides a file-backed implementation
// (one file per key, atomic writes, cross-process locking) plus an in-memory
// implementation for tests.
package storage

import (
	"errors"
	"fmt"
)

// ErrClosed is returned when an operation is attempted on a closed store.
var ErrClosed = errors.New("storage: closed")

// KV is the key-value collaborator that record stores persist through.
// Values are opaque serialized collections; the backend owns durability
// but not identity or ordering.
type KV interface {
	// Get returns the value stored under key. The second return value
	// reports whether the key was present.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// Error wraps a backend failure with the key and operation that caused it.
type Error struct {
	Op  string
	Key string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }
