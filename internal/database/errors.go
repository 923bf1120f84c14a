package database

import (
	"errors"
	"fmt"
)

// The repository error taxonomy. Callers classify failures with errors.Is;
// anything that wraps neither sentinel is a storage failure from the
// underlying driver, propagated unchanged.
var (
	// ErrNotFound means a lookup by ID matched no row, active or deleted.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation means a lifecycle precondition failed: double
	// delete, restore of an active row, direct restore of a cascade-deleted
	// card, or mutation of a deleted row.
	ErrInvalidOperation = errors.New("invalid operation")
)

func notFound(entity, id string) error {
	return fmt.Errorf("%s %s: %w", entity, id, ErrNotFound)
}

func invalidOp(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidOperation)...)
}
