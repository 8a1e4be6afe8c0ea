package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/jkullberg/slipboard/internal/domain"
)

type fakeRepo struct {
	decks map[string]domain.Deck
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{decks: map[string]domain.Deck{}}
}

func (f *fakeRepo) SaveDeck(_ context.Context, deck domain.Deck) error {
	f.decks[deck.ID] = deck
	return nil
}

func (f *fakeRepo) GetDeck(_ context.Context, id string) (domain.Deck, error) {
	deck, ok := f.decks[id]
	if !ok {
		return domain.Deck{}, ErrDeckNotFound
	}
	return deck, nil
}

func (f *fakeRepo) GetDeckByName(_ context.Context, name string) (domain.Deck, error) {
	for _, deck := range f.decks {
		if deck.Name == name {
			return deck, nil
		}
	}
	return domain.Deck{}, ErrDeckNotFound
}

func (f *fakeRepo) ListDecks(_ context.Context) ([]domain.Deck, error) {
	out := make([]domain.Deck, 0, len(f.decks))
	for _, deck := range f.decks {
		out = append(out, deck)
	}
	return out, nil
}

func (f *fakeRepo) DeleteDeck(_ context.Context, id string) error {
	if _, ok := f.decks[id]; !ok {
		return ErrDeckNotFound
	}
	delete(f.decks, id)
	return nil
}

func newTestService(repo Repository, seed int64) *Service {
	counter := 0
	rng := rand.New(rand.NewSource(seed))
	return NewService(repo, func() string {
		counter++
		return fmt.Sprintf("id-%d", counter)
	}, func() time.Time {
		return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	}, rng.Intn, ServiceConfig{})
}

func TestDealNewShape(t *testing.T) {
	svc := newTestService(newFakeRepo(), 1)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	left := board.Cards(domain.SideLeft)
	right := board.Cards(domain.SideRight)
	if len(left) != 4 || len(right) != 4 {
		t.Fatalf("expected 4 cards per column, got %d/%d", len(left), len(right))
	}

	seen := map[string]bool{}
	for _, card := range append(left, right...) {
		if seen[card.ID] {
			t.Fatalf("duplicate card id %q", card.ID)
		}
		seen[card.ID] = true
		if card.Height < 80 || card.Height > 180 {
			t.Fatalf("card %q height %d out of range", card.ID, card.Height)
		}
		if card.Color == "" {
			t.Fatalf("card %q has no color", card.ID)
		}
	}
	for i, card := range left {
		if card.Column != domain.SideLeft || card.OriginalIndex != i {
			t.Fatalf("unexpected left card placement %#v", card)
		}
	}
}

func TestDealNewDeterministicForSeed(t *testing.T) {
	first, err := newTestService(newFakeRepo(), 42).DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	second, err := newTestService(newFakeRepo(), 42).DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	a := first.Heights(domain.SideLeft)
	b := second.Heights(domain.SideLeft)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("heights diverged at %d: %d vs %d", i, a[i], b[i])
		}
	}
}

func TestSaveAndDealDeckRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, 7)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	deck, err := svc.SaveDeck(context.Background(), "focus", board)
	if err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}
	if len(deck.Cards) != board.Count() {
		t.Fatalf("expected %d specs, got %d", board.Count(), len(deck.Cards))
	}

	dealt, err := svc.DealFromDeck(context.Background(), "focus")
	if err != nil {
		t.Fatalf("DealFromDeck() error = %v", err)
	}
	if dealt.Count() != board.Count() {
		t.Fatalf("expected %d cards, got %d", board.Count(), dealt.Count())
	}
	// Splits evenly, extras to the left.
	if got := len(dealt.Cards(domain.SideLeft)); got != 4 {
		t.Fatalf("expected 4 left cards, got %d", got)
	}
	wantFirst := board.Cards(domain.SideLeft)[0]
	gotFirst := dealt.Cards(domain.SideLeft)[0]
	if gotFirst.Content != wantFirst.Content || gotFirst.Height != wantFirst.Height {
		t.Fatalf("first card not preserved: %#v", gotFirst)
	}
	if gotFirst.ID == wantFirst.ID {
		t.Fatalf("dealt card reused id %q", gotFirst.ID)
	}
}

func TestSaveDeckReplacesExistingName(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, 7)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	first, err := svc.SaveDeck(context.Background(), "focus", board)
	if err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}
	second, err := svc.SaveDeck(context.Background(), "focus", board)
	if err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected deck id %q to be reused, got %q", first.ID, second.ID)
	}
	decks, err := svc.ListDecks(context.Background())
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(decks) != 1 {
		t.Fatalf("expected 1 deck, got %d", len(decks))
	}
}

func TestDeleteDeck(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, 7)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	if _, err := svc.SaveDeck(context.Background(), "focus", board); err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}
	if err := svc.DeleteDeck(context.Background(), "focus"); err != nil {
		t.Fatalf("DeleteDeck() error = %v", err)
	}
	if err := svc.DeleteDeck(context.Background(), "focus"); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
	if _, err := svc.DealFromDeck(context.Background(), "focus"); !errors.Is(err, ErrDeckNotFound) {
		t.Fatalf("expected ErrDeckNotFound, got %v", err)
	}
}

func TestSaveDeckRejectsBlankName(t *testing.T) {
	svc := newTestService(newFakeRepo(), 7)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	if _, err := svc.SaveDeck(context.Background(), "   ", board); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}
