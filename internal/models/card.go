package models

import "time"

// Card is the smallest unit of text entry. Cards are ordered within their
// column by Position, carry an unbounded score adjusted by relative deltas,
// and may be soft-deleted either directly or as a cascade of their column's
// soft-delete.
type Card struct {
	ID        string
	ColumnID  string
	Content   string
	Score     int
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
	// DeletedWithColumn records cascade provenance: true only when the
	// deletion was caused by the parent column's soft-delete. A cascade-deleted
	// card can only come back by restoring the column.
	DeletedWithColumn bool
}

// Deleted reports whether the card is soft-deleted.
func (c *Card) Deleted() bool {
	return c.DeletedAt != nil
}
