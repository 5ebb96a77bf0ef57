// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered customer account.
// It carries the authentication credentials and the per-user cart state.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the display name chosen at signup. It is not unique.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users; the unique index is what
	// enforces the one-account-per-email invariant.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// Cart is the per-user slot→quantity mapping, serialized as JSON.
	Cart CartData `gorm:"type:jsonb;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
