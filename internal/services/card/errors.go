package card

import "errors"

// Card-related validation errors
var (
	ErrInvalidCardID   = errors.New("invalid card ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrInvalidDeckID   = errors.New("invalid deck ID")
	ErrInvalidIndex    = errors.New("invalid index: must be >= 0")
	ErrColumnDeleted   = errors.New("column is deleted")
)
