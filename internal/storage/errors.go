package storage

import "github.com/Z4phxr/Habbit-Tracker/internal/storage/storeerr"

var (
	// ErrNotFound is returned when a requested entity does not exist or is
	// not owned by the requesting owner.
	ErrNotFound = storeerr.ErrNotFound

	// ErrDuplicate is returned when a uniqueness constraint rejects a write,
	// e.g. a second completion for the same (habit, day).
	ErrDuplicate = storeerr.ErrDuplicate
)
