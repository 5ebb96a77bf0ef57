// Package usecase implements the business logic for the cart feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when the authorized user id does not
	// resolve to a persisted user (e.g. deleted after token issuance).
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidSlot is returned when an item slot falls outside the
	// fixed 0..299 cart key space.
	ErrInvalidSlot = errors.New("item slot out of range")
)
