package models

import "time"

// SortOrder controls how a deck's cards are presented by readers.
// It is advisory: the persistence layer stores it but never enforces it.
type SortOrder string

const (
	SortCreatedDesc SortOrder = "created_desc"
	SortCreatedAsc  SortOrder = "created_asc"
	SortScoreDesc   SortOrder = "score_desc"
	SortScoreAsc    SortOrder = "score_asc"
)

// DefaultSortOrder is newest-first.
const DefaultSortOrder = SortCreatedDesc

// ParseSortOrder maps a stored string onto a SortOrder, falling back to the
// default for anything unrecognized.
func ParseSortOrder(s string) SortOrder {
	switch SortOrder(s) {
	case SortCreatedAsc, SortScoreDesc, SortScoreAsc:
		return SortOrder(s)
	default:
		return SortCreatedDesc
	}
}

// Deck is a top-level container of columns. Decks have no soft-delete:
// deleting a deck physically cascades to its columns and cards.
type Deck struct {
	ID        string
	Name      string
	SortOrder SortOrder
	CreatedAt time.Time
	UpdatedAt time.Time
}
