package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jkullberg/slipboard/internal/domain"
)

// SnapshotVersion identifies the snapshot document format.
const SnapshotVersion = "slipboard.snapshot.v1"

// SnapshotCard represents one card spec inside a snapshot document.
type SnapshotCard struct {
	Content string `json:"content"`
	Color   string `json:"color"`
	Height  int    `json:"height"`
}

// SnapshotDeck represents one deck inside a snapshot document.
type SnapshotDeck struct {
	Name  string         `json:"name"`
	Cards []SnapshotCard `json:"cards"`
}

// Snapshot represents snapshot data used by this package.
type Snapshot struct {
	Version    string         `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Decks      []SnapshotDeck `json:"decks"`
}

// ExportSnapshot captures every saved deck into a portable document.
func (s *Service) ExportSnapshot(ctx context.Context) (Snapshot, error) {
	decks, err := s.ListDecks(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	snap := Snapshot{
		Version:    SnapshotVersion,
		ExportedAt: s.clock().UTC(),
		Decks:      make([]SnapshotDeck, 0, len(decks)),
	}
	for _, deck := range decks {
		out := SnapshotDeck{Name: deck.Name, Cards: make([]SnapshotCard, 0, len(deck.Cards))}
		for _, spec := range deck.Cards {
			out.Cards = append(out.Cards, SnapshotCard{
				Content: spec.Content,
				Color:   spec.Color,
				Height:  spec.Height,
			})
		}
		snap.Decks = append(snap.Decks, out)
	}
	return snap, nil
}

// ImportSnapshot stores every deck from a snapshot document, replacing decks
// that already exist under the same name. Returns the number of decks written.
func (s *Service) ImportSnapshot(ctx context.Context, snap Snapshot) (int, error) {
	if snap.Version != SnapshotVersion {
		return 0, fmt.Errorf("unsupported snapshot version %q", snap.Version)
	}
	imported := 0
	for _, in := range snap.Decks {
		specs := make([]domain.CardSpec, 0, len(in.Cards))
		for _, card := range in.Cards {
			specs = append(specs, domain.CardSpec{
				Content: card.Content,
				Color:   card.Color,
				Height:  card.Height,
			})
		}
		if err := s.importDeck(ctx, in.Name, specs); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

// importDeck upserts one named deck worth of card specs.
func (s *Service) importDeck(ctx context.Context, name string, specs []domain.CardSpec) error {
	id := s.idGen()
	created := s.clock()
	existing, err := s.repo.GetDeckByName(ctx, name)
	switch {
	case err == nil:
		id = existing.ID
		created = existing.CreatedAt
	case !errors.Is(err, ErrDeckNotFound):
		return fmt.Errorf("look up deck %q: %w", name, err)
	}

	deck, err := domain.NewDeck(id, name, specs, s.clock())
	if err != nil {
		return fmt.Errorf("import deck %q: %w", name, err)
	}
	deck.CreatedAt = created.UTC()
	if err := s.repo.SaveDeck(ctx, deck); err != nil {
		return fmt.Errorf("import deck %q: %w", name, err)
	}
	return nil
}
