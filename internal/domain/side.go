package domain

import "strings"

// Side identifies one of the two board columns.
type Side string

// SideLeft and SideRight are the only valid column identifiers.
const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// ParseSide parses input into a normalized form.
func ParseSide(raw string) (Side, error) {
	switch Side(strings.TrimSpace(strings.ToLower(raw))) {
	case SideLeft:
		return SideLeft, nil
	case SideRight:
		return SideRight, nil
	default:
		return "", ErrInvalidSide
	}
}

// Valid reports whether the side is one of the two known columns.
func (s Side) Valid() bool {
	return s == SideLeft || s == SideRight
}

// Opposite returns the other column.
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}
