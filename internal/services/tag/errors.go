package tag

import "errors"

// Tag-related validation errors
var (
	ErrInvalidDeckID = errors.New("invalid deck ID")
	ErrInvalidCardID = errors.New("invalid card ID")
	ErrEmptyTagName  = errors.New("tag name cannot be empty")
)
