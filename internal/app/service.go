package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"time"

	"github.com/jkullberg/slipboard/internal/domain"
)

// IDGenerator returns unique identifiers for new entities.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time

// RandInt returns a uniform value in [0, n).
type RandInt func(n int) int

// ServiceConfig holds configuration for service.
type ServiceConfig struct {
	DealCount int
	MinHeight int
	MaxHeight int
	Palette   []string
}

// defaultPalette stores the fixed card display colors.
var defaultPalette = []string{
	"#ff7eb6",
	"#82cfff",
	"#42be65",
	"#ffab91",
	"#be95ff",
	"#f1c21b",
}

// DefaultServiceConfig returns the fixed card-generation parameters.
func DefaultServiceConfig() ServiceConfig {
	return ServiceConfig{
		DealCount: 4,
		MinHeight: 80,
		MaxHeight: 180,
		Palette:   append([]string(nil), defaultPalette...),
	}
}

// Service represents service data used by this package.
type Service struct {
	repo    Repository
	idGen   IDGenerator
	clock   Clock
	randInt RandInt
	cfg     ServiceConfig
}

// NewService constructs a new value for this package.
func NewService(repo Repository, idGen IDGenerator, clock Clock, randInt RandInt, cfg ServiceConfig) *Service {
	if idGen == nil {
		idGen = func() string { return "" }
	}
	if clock == nil {
		clock = time.Now
	}
	if randInt == nil {
		randInt = rand.IntN
	}
	defaults := DefaultServiceConfig()
	if cfg.DealCount <= 0 {
		cfg.DealCount = defaults.DealCount
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = defaults.MinHeight
	}
	if cfg.MaxHeight < cfg.MinHeight {
		cfg.MaxHeight = cfg.MinHeight
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = defaults.Palette
	}
	return &Service{
		repo:    repo,
		idGen:   idGen,
		clock:   clock,
		randInt: randInt,
		cfg:     cfg,
	}
}

// DealNew generates a fresh board with the configured card count per column
// and random heights in the configured range. Nothing is persisted.
func (s *Service) DealNew(_ context.Context) (domain.Board, error) {
	now := s.clock()
	total := 0
	deal := func(side domain.Side) ([]domain.Card, error) {
		cards := make([]domain.Card, 0, s.cfg.DealCount)
		for i := 0; i < s.cfg.DealCount; i++ {
			spec := domain.CardSpec{
				Content: fmt.Sprintf("# Card %d\n\nDealt into the %s column.", total+1, side),
				Color:   s.cfg.Palette[total%len(s.cfg.Palette)],
				Height:  s.randomHeight(),
			}
			card, err := domain.NewCard(s.idGen(), spec.Content, spec.Color, spec.Height, side, i, now)
			if err != nil {
				return nil, fmt.Errorf("deal card %d: %w", total+1, err)
			}
			cards = append(cards, card)
			total++
		}
		return cards, nil
	}

	left, err := deal(domain.SideLeft)
	if err != nil {
		return domain.Board{}, err
	}
	right, err := deal(domain.SideRight)
	if err != nil {
		return domain.Board{}, err
	}
	board, err := domain.NewBoard(left, right)
	if err != nil {
		return domain.Board{}, fmt.Errorf("assemble board: %w", err)
	}
	return board, nil
}

// DealFromDeck deals a saved deck onto a fresh board, first half of the specs
// into the left column and the rest into the right. Column membership from
// previous sessions is never restored; only the cards themselves persist.
func (s *Service) DealFromDeck(ctx context.Context, name string) (domain.Board, error) {
	deck, err := s.deckByName(ctx, name)
	if err != nil {
		return domain.Board{}, err
	}

	now := s.clock()
	split := (len(deck.Cards) + 1) / 2
	var left, right []domain.Card
	for i, spec := range deck.Cards {
		side := domain.SideLeft
		index := i
		if i >= split {
			side = domain.SideRight
			index = i - split
		}
		card, err := domain.NewCard(s.idGen(), spec.Content, spec.Color, spec.Height, side, index, now)
		if err != nil {
			return domain.Board{}, fmt.Errorf("deal deck card %d: %w", i+1, err)
		}
		if side == domain.SideLeft {
			left = append(left, card)
		} else {
			right = append(right, card)
		}
	}
	board, err := domain.NewBoard(left, right)
	if err != nil {
		return domain.Board{}, fmt.Errorf("assemble board: %w", err)
	}
	return board, nil
}

// SaveDeck captures the current board's cards (left column top-to-bottom,
// then right) under a deck name, replacing an existing deck with that name.
func (s *Service) SaveDeck(ctx context.Context, name string, board domain.Board) (domain.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Deck{}, domain.ErrInvalidName
	}

	var specs []domain.CardSpec
	for _, side := range []domain.Side{domain.SideLeft, domain.SideRight} {
		for _, card := range board.Cards(side) {
			specs = append(specs, domain.CardSpec{
				Content: card.Content,
				Color:   card.Color,
				Height:  card.Height,
			})
		}
	}

	id := s.idGen()
	created := s.clock()
	if existing, err := s.repo.GetDeckByName(ctx, name); err == nil {
		id = existing.ID
		created = existing.CreatedAt
	} else if !errors.Is(err, ErrDeckNotFound) {
		return domain.Deck{}, fmt.Errorf("look up deck %q: %w", name, err)
	}

	deck, err := domain.NewDeck(id, name, specs, s.clock())
	if err != nil {
		return domain.Deck{}, fmt.Errorf("build deck %q: %w", name, err)
	}
	deck.CreatedAt = created.UTC()
	if err := s.repo.SaveDeck(ctx, deck); err != nil {
		return domain.Deck{}, fmt.Errorf("save deck %q: %w", name, err)
	}
	return deck, nil
}

// ListDecks returns all saved decks ordered by name.
func (s *Service) ListDecks(ctx context.Context) ([]domain.Deck, error) {
	decks, err := s.repo.ListDecks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	sort.Slice(decks, func(i, j int) bool { return decks[i].Name < decks[j].Name })
	return decks, nil
}

// DeleteDeck deletes a deck by name.
func (s *Service) DeleteDeck(ctx context.Context, name string) error {
	deck, err := s.deckByName(ctx, name)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteDeck(ctx, deck.ID); err != nil {
		return fmt.Errorf("delete deck %q: %w", name, err)
	}
	return nil
}

// deckByName resolves a deck by trimmed name.
func (s *Service) deckByName(ctx context.Context, name string) (domain.Deck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Deck{}, domain.ErrInvalidName
	}
	deck, err := s.repo.GetDeckByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrDeckNotFound) {
			return domain.Deck{}, fmt.Errorf("deck %q: %w", name, ErrDeckNotFound)
		}
		return domain.Deck{}, fmt.Errorf("get deck %q: %w", name, err)
	}
	return deck, nil
}

// randomHeight draws a card height from the configured inclusive range.
func (s *Service) randomHeight() int {
	span := s.cfg.MaxHeight - s.cfg.MinHeight + 1
	return s.cfg.MinHeight + s.randInt(span)
}
