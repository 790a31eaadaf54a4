// Package storeerr holds the sentinel errors shared by the storage package
// and its backend subpackages. It exists so the backends can return these
// errors without importing storage itself, which would be an import cycle.
package storeerr

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not owned by the requesting owner.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint rejects a write,
	// e.g. a second completion for the same (habit, day).
	ErrDuplicate = errors.New("already exists")
)
