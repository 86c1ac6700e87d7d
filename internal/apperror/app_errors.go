package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("coordinate is out of bounds")
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidLength   = errors.New("invalid notation length")
)
