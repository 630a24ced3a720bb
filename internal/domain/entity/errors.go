package entity

import "errors"

// Store-level errors. Repositories return these (possibly wrapped) so that
// callers can match with errors.Is regardless of the backing driver.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)
