// Package usecase implements the business logic for catalog operations.
package usecase

import "errors"

// ErrProductNotFound is returned by the repository when a delete matches no
// row. The public API swallows it (remove of a missing id stays a silent
// success for admin-panel compatibility), but the distinction is kept here
// so it can be surfaced later.
var ErrProductNotFound = errors.New("product not found")
