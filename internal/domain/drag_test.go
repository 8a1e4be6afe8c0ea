package domain

import (
	"errors"
	"testing"
)

func TestDragStartRecordsGrabOffset(t *testing.T) {
	card := mustCard(t, "a", SideLeft, 0)
	drag := IdleDrag()
	if err := drag.Start(card, Point{X: 60, Y: 90}, Point{X: 16, Y: 16}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if !drag.Dragging() {
		t.Fatal("expected dragging state")
	}
	if off := drag.GrabOffset(); off.X != 44 || off.Y != 74 {
		t.Fatalf("unexpected grab offset %+v", off)
	}
	if _, ok := drag.Zone(); ok {
		t.Fatal("expected no zone at drag start")
	}
	if got, ok := drag.Card(); !ok || got.ID != "a" {
		t.Fatalf("unexpected dragged card %+v ok=%v", got, ok)
	}
}

func TestDragStartRejectsReentry(t *testing.T) {
	drag := IdleDrag()
	if err := drag.Start(mustCard(t, "a", SideLeft, 0), Point{}, Point{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	err := drag.Start(mustCard(t, "b", SideRight, 0), Point{}, Point{})
	if !errors.Is(err, ErrAlreadyDragging) {
		t.Fatalf("expected ErrAlreadyDragging, got %v", err)
	}
}

func TestDragTrackStoresPointerUnconditionally(t *testing.T) {
	drag := IdleDrag()
	if err := drag.Start(mustCard(t, "a", SideLeft, 0), Point{}, Point{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	drag.Track(Point{X: 700, Y: 100}, DropZone{Column: SideRight, Index: 1}, true)
	if p := drag.Pointer(); p.X != 700 || p.Y != 100 {
		t.Fatalf("unexpected pointer %+v", p)
	}
	if zone, ok := drag.Zone(); !ok || zone.Index != 1 || zone.Column != SideRight {
		t.Fatalf("unexpected zone %+v ok=%v", zone, ok)
	}
	// Leaving the valid region clears the zone but still moves the pointer.
	drag.Track(Point{X: 5, Y: 5}, DropZone{}, false)
	if p := drag.Pointer(); p.X != 5 || p.Y != 5 {
		t.Fatalf("unexpected pointer %+v", p)
	}
	if _, ok := drag.Zone(); ok {
		t.Fatal("expected cleared zone")
	}
}

func TestDragTrackIgnoredWhileIdle(t *testing.T) {
	drag := IdleDrag()
	drag.Track(Point{X: 9, Y: 9}, DropZone{Column: SideLeft, Index: 0}, true)
	if drag.Dragging() {
		t.Fatal("idle drag should stay idle")
	}
	if p := drag.Pointer(); p != (Point{}) {
		t.Fatalf("idle drag recorded pointer %+v", p)
	}
}

func TestDragCommitWithZone(t *testing.T) {
	left := []Card{mustCard(t, "a", SideLeft, 0), mustCard(t, "b", SideLeft, 1)}
	right := []Card{mustCard(t, "x", SideRight, 0)}
	board := mustBoard(t, left, right)

	drag := IdleDrag()
	if err := drag.Start(left[0], Point{X: 20, Y: 20}, Point{X: 16, Y: 16}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	drag.Track(Point{X: 600, Y: 30}, DropZone{Column: SideRight, Index: 0}, true)

	moved, err := drag.Commit(&board)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if !moved {
		t.Fatal("expected a committed move")
	}
	if got := boardIDs(board, SideRight); !sameIDs(got, []string{"a", "x"}) {
		t.Fatalf("unexpected right order %v", got)
	}
	if got := boardIDs(board, SideLeft); !sameIDs(got, []string{"b"}) {
		t.Fatalf("unexpected left order %v", got)
	}
	if board.Count() != 3 {
		t.Fatalf("card count changed: %d", board.Count())
	}
	if drag.Dragging() {
		t.Fatal("drag state not reset after commit")
	}
}

func TestDragCommitAppendsAtTargetTail(t *testing.T) {
	left := []Card{mustCard(t, "a", SideLeft, 0)}
	right := []Card{
		mustCard(t, "x", SideRight, 0),
		mustCard(t, "y", SideRight, 1),
	}
	board := mustBoard(t, left, right)

	drag := IdleDrag()
	if err := drag.Start(left[0], Point{X: 20, Y: 20}, Point{X: 16, Y: 16}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	drag.Track(Point{X: 600, Y: 500}, DropZone{Column: SideRight, Index: 2}, true)

	moved, err := drag.Commit(&board)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if !moved {
		t.Fatal("expected a committed move")
	}
	if got := boardIDs(board, SideRight); !sameIDs(got, []string{"x", "y", "a"}) {
		t.Fatalf("unexpected right order %v", got)
	}
	if got := boardIDs(board, SideLeft); len(got) != 0 {
		t.Fatalf("unexpected left order %v", got)
	}
}

func TestDragCommitWithoutZoneIsNoop(t *testing.T) {
	left := []Card{mustCard(t, "a", SideLeft, 0)}
	right := []Card{mustCard(t, "x", SideRight, 0)}
	board := mustBoard(t, left, right)

	drag := IdleDrag()
	if err := drag.Start(left[0], Point{X: 20, Y: 20}, Point{X: 16, Y: 16}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	moved, err := drag.Commit(&board)
	if err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if moved {
		t.Fatal("expected no move without a zone")
	}
	if got := boardIDs(board, SideLeft); !sameIDs(got, []string{"a"}) {
		t.Fatalf("left column changed: %v", got)
	}
	if got := boardIDs(board, SideRight); !sameIDs(got, []string{"x"}) {
		t.Fatalf("right column changed: %v", got)
	}
	if drag.Dragging() {
		t.Fatal("drag state not reset")
	}
}

func TestDragCommitWhileIdleIsNoop(t *testing.T) {
	board := mustBoard(t, []Card{mustCard(t, "a", SideLeft, 0)}, nil)
	drag := IdleDrag()
	moved, err := drag.Commit(&board)
	if err != nil || moved {
		t.Fatalf("idle commit: moved=%v err=%v", moved, err)
	}
}

// Picking a card up and releasing at the same spot leaves the board alone:
// the pointer-down position is inside the card's own column, never the
// opposite one, so no zone was ever resolved.
func TestDragImmediateReleaseKeepsOrigin(t *testing.T) {
	left := []Card{mustCard(t, "a", SideLeft, 0), mustCard(t, "b", SideLeft, 1)}
	board := mustBoard(t, left, nil)

	drag := IdleDrag()
	column := ColumnRect(testBoard, SideLeft)
	pointer := Point{X: column.X + 10, Y: column.Y + 10}
	if err := drag.Start(left[0], pointer, Point{X: column.X, Y: column.Y}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	zone, ok := ResolveDropZone(pointer, testBoard, SideLeft.Opposite(), board.Heights(SideRight))
	drag.Track(pointer, zone, ok)
	if ok {
		t.Fatalf("pointer over the origin column resolved a zone: %+v", zone)
	}
	moved, err := drag.Commit(&board)
	if err != nil || moved {
		t.Fatalf("expected no-op, moved=%v err=%v", moved, err)
	}
	if got := boardIDs(board, SideLeft); !sameIDs(got, []string{"a", "b"}) {
		t.Fatalf("origin column changed: %v", got)
	}
}

func TestDragCancel(t *testing.T) {
	drag := IdleDrag()
	if err := drag.Start(mustCard(t, "a", SideLeft, 0), Point{X: 1, Y: 1}, Point{}); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	drag.Track(Point{X: 600, Y: 60}, DropZone{Column: SideRight, Index: 0}, true)
	drag.Cancel()
	if drag.Dragging() {
		t.Fatal("expected idle after cancel")
	}
	if _, ok := drag.Zone(); ok {
		t.Fatal("expected no zone after cancel")
	}
}
