package deck

import "errors"

// Deck-related validation errors
var (
	ErrEmptyName     = errors.New("deck name cannot be empty")
	ErrNameTooLong   = errors.New("deck name cannot exceed 255 characters")
	ErrInvalidDeckID = errors.New("invalid deck ID")
)
