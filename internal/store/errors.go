package store

import "errors"

// Sentinel errors returned by [UserStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when an operation references an id that is
	// not present in the collection.
	ErrUserNotFound = errors.New("user not found")
)
