package models

import "time"

// Column is a vertical lane of cards inside a deck. Active columns in a deck
// hold a contiguous, zero-based position sequence; a soft-deleted column keeps
// the position it held at deletion time so a restore can put it back.
type Column struct {
	ID        string
	DeckID    string
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // nil while the column is active
}

// Deleted reports whether the column is soft-deleted.
func (c *Column) Deleted() bool {
	return c.DeletedAt != nil
}
