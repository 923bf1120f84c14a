package types

import "github.com/oklog/ulid/v2"

// ID type aliases give semantic meaning to the ULID strings used as primary
// keys. ULIDs are lexicographically sortable by creation time, which is what
// the default created_desc/created_asc deck orderings rely on.

// DeckID identifies a unique deck in the system
type DeckID = string

// ColumnID identifies a unique column within a deck
type ColumnID = string

// CardID identifies a unique card within a column
type CardID = string

// TagID identifies a globally unique tag
type TagID = string

// NewID generates a fresh ULID string for any entity.
func NewID() string {
	return ulid.Make().String()
}
