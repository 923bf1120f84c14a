package column

import "errors"

// Column-related validation errors
var (
	ErrInvalidDeckID   = errors.New("invalid deck ID")
	ErrInvalidColumnID = errors.New("invalid column ID")
	ErrEmptyName       = errors.New("column name cannot be empty")
	ErrNameTooLong     = errors.New("column name cannot exceed 255 characters")
	ErrInvalidIndex    = errors.New("invalid index: must be >= 0")
)
