package database

import (
	"errors"
	"fmt"
)

// ErrSessionOpen is returned by session Start calls when the owner already has
// an open session of the same kind. Callers close the open session first.
var ErrSessionOpen = errors.New("an open session already exists for this profile")

// PersistenceError wraps an unexpected storage failure during a write, keeping
// enough context (operation, owner) to log meaningfully. Reads that find
// nothing never produce one.
type PersistenceError struct {
	Op      string
	OwnerID uint
	Err     error
}

func (e *PersistenceError) Error() string {
	if e.OwnerID != 0 {
		return fmt.Sprintf("%s (profile %d): %v", e.Op, e.OwnerID, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError builds a PersistenceError. ownerID may be zero when the
// operation is not scoped to a profile.
func NewPersistenceError(op string, ownerID uint, err error) *PersistenceError {
	return &PersistenceError{Op: op, OwnerID: ownerID, Err: err}
}
