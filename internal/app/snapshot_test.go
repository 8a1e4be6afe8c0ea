package app

import (
	"context"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	source := newTestService(newFakeRepo(), 3)

	board, err := source.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	if _, err := source.SaveDeck(context.Background(), "alpha", board); err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}
	if _, err := source.SaveDeck(context.Background(), "beta", board); err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}

	snap, err := source.ExportSnapshot(context.Background())
	if err != nil {
		t.Fatalf("ExportSnapshot() error = %v", err)
	}
	if snap.Version != SnapshotVersion {
		t.Fatalf("unexpected version %q", snap.Version)
	}
	if len(snap.Decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(snap.Decks))
	}

	target := newTestService(newFakeRepo(), 3)
	imported, err := target.ImportSnapshot(context.Background(), snap)
	if err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}
	if imported != 2 {
		t.Fatalf("expected 2 imported decks, got %d", imported)
	}
	decks, err := target.ListDecks(context.Background())
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(decks) != 2 || decks[0].Name != "alpha" || decks[1].Name != "beta" {
		t.Fatalf("unexpected decks %#v", decks)
	}
	if len(decks[0].Cards) != board.Count() {
		t.Fatalf("expected %d specs, got %d", board.Count(), len(decks[0].Cards))
	}
}

func TestImportSnapshotRejectsUnknownVersion(t *testing.T) {
	svc := newTestService(newFakeRepo(), 3)

	if _, err := svc.ImportSnapshot(context.Background(), Snapshot{Version: "bogus"}); err == nil {
		t.Fatal("expected version error")
	}
}

func TestImportSnapshotReplacesExistingDeck(t *testing.T) {
	svc := newTestService(newFakeRepo(), 3)

	board, err := svc.DealNew(context.Background())
	if err != nil {
		t.Fatalf("DealNew() error = %v", err)
	}
	original, err := svc.SaveDeck(context.Background(), "alpha", board)
	if err != nil {
		t.Fatalf("SaveDeck() error = %v", err)
	}

	snap := Snapshot{
		Version: SnapshotVersion,
		Decks: []SnapshotDeck{{
			Name:  "alpha",
			Cards: []SnapshotCard{{Content: "# Solo", Color: "#82cfff", Height: 120}},
		}},
	}
	if _, err := svc.ImportSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("ImportSnapshot() error = %v", err)
	}
	decks, err := svc.ListDecks(context.Background())
	if err != nil {
		t.Fatalf("ListDecks() error = %v", err)
	}
	if len(decks) != 1 {
		t.Fatalf("expected 1 deck, got %d", len(decks))
	}
	if decks[0].ID != original.ID {
		t.Fatalf("expected deck id %q to be reused, got %q", original.ID, decks[0].ID)
	}
	if len(decks[0].Cards) != 1 || decks[0].Cards[0].Content != "# Solo" {
		t.Fatalf("unexpected deck cards %#v", decks[0].Cards)
	}
}
