package domain

import (
	"strings"
	"time"
)

// CardSpec captures the persistent identity-free part of a card: what a deck
// stores. Column membership and order are session state and never saved.
type CardSpec struct {
	Content string
	Color   string
	Height  int
}

// Deck is a named set of card specs that can be dealt onto a fresh board.
type Deck struct {
	ID        string
	Name      string
	Cards     []CardSpec
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDeck constructs a new value for this package.
func NewDeck(id, name string, cards []CardSpec, now time.Time) (Deck, error) {
	id = strings.TrimSpace(id)
	name = strings.TrimSpace(name)
	if id == "" {
		return Deck{}, ErrInvalidID
	}
	if name == "" {
		return Deck{}, ErrInvalidName
	}
	if len(cards) == 0 {
		return Deck{}, ErrInvalidContent
	}
	for _, spec := range cards {
		if strings.TrimSpace(spec.Content) == "" {
			return Deck{}, ErrInvalidContent
		}
		if strings.TrimSpace(spec.Color) == "" {
			return Deck{}, ErrInvalidColor
		}
		if spec.Height <= 0 {
			return Deck{}, ErrInvalidHeight
		}
	}
	return Deck{
		ID:        id,
		Name:      name,
		Cards:     append([]CardSpec(nil), cards...),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}, nil
}

// Rename renames the deck.
func (d *Deck) Rename(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}
	d.Name = name
	d.UpdatedAt = now.UTC()
	return nil
}
