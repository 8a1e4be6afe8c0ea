package domain

import "errors"

// Validation and lookup errors shared across the package.
var (
	ErrInvalidID       = errors.New("invalid id")
	ErrInvalidContent  = errors.New("invalid content")
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidHeight   = errors.New("invalid height")
	ErrInvalidSide     = errors.New("invalid side")
	ErrInvalidIndex    = errors.New("index out of range")
	ErrInvalidName     = errors.New("invalid name")
	ErrCardNotFound    = errors.New("card not found")
	ErrDuplicateCard   = errors.New("duplicate card id")
	ErrAlreadyDragging = errors.New("drag already in progress")
	ErrNotDragging     = errors.New("no drag in progress")
)
