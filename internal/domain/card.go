package domain

import (
	"strings"
	"time"
)

// Card represents card data used by this package. Height is assigned once at
// creation and never changes; OriginalIndex records where the card was dealt
// and is provenance only.
type Card struct {
	ID            string
	Content       string
	Color         string
	Height        int
	Column        Side
	OriginalIndex int
	CreatedAt     time.Time
}

// NewCard constructs a new value for this package.
func NewCard(id, content, color string, height int, column Side, originalIndex int, now time.Time) (Card, error) {
	id = strings.TrimSpace(id)
	content = strings.TrimSpace(content)
	color = strings.TrimSpace(color)
	if id == "" {
		return Card{}, ErrInvalidID
	}
	if content == "" {
		return Card{}, ErrInvalidContent
	}
	if color == "" {
		return Card{}, ErrInvalidColor
	}
	if height <= 0 {
		return Card{}, ErrInvalidHeight
	}
	if !column.Valid() {
		return Card{}, ErrInvalidSide
	}
	if originalIndex < 0 {
		return Card{}, ErrInvalidIndex
	}

	return Card{
		ID:            id,
		Content:       content,
		Color:         color,
		Height:        height,
		Column:        column,
		OriginalIndex: originalIndex,
		CreatedAt:     now.UTC(),
	}, nil
}

// Title returns the first content line for list-style rendering.
func (c Card) Title() string {
	content := strings.TrimSpace(c.Content)
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		content = content[:idx]
	}
	return strings.TrimSpace(strings.TrimLeft(content, "# "))
}
