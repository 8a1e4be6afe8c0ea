package app

import (
	"context"

	"github.com/jkullberg/slipboard/internal/domain"
)

// Repository represents the deck-library storage port.
type Repository interface {
	SaveDeck(context.Context, domain.Deck) error
	GetDeck(context.Context, string) (domain.Deck, error)
	GetDeckByName(context.Context, string) (domain.Deck, error)
	ListDecks(context.Context) ([]domain.Deck, error)
	DeleteDeck(context.Context, string) error
}
