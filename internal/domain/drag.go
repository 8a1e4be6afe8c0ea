package domain

// DragState models the transient drag as a tagged variant: either idle, or
// dragging one card with a pointer position and an optional drop zone. The
// zone and the dragged card are only meaningful together; every exit path
// resets the whole value at once, so no handler can observe a half-cleared
// drag.
type DragState struct {
	dragging   bool
	card       Card
	grabOffset Point
	pointer    Point
	zone       *DropZone
}

// IdleDrag returns the empty drag state.
func IdleDrag() DragState {
	return DragState{}
}

// Dragging reports whether a drag is in flight.
func (d DragState) Dragging() bool {
	return d.dragging
}

// Card returns the dragged card while a drag is in flight.
func (d DragState) Card() (Card, bool) {
	if !d.dragging {
		return Card{}, false
	}
	return d.card, true
}

// GrabOffset returns the pointer-to-card-corner vector captured at drag
// start.
func (d DragState) GrabOffset() Point {
	return d.grabOffset
}

// Pointer returns the last recorded pointer position.
func (d DragState) Pointer() Point {
	return d.pointer
}

// Zone returns the current drop zone, if one is resolved.
func (d DragState) Zone() (DropZone, bool) {
	if !d.dragging || d.zone == nil {
		return DropZone{}, false
	}
	return *d.zone, true
}

// Start begins a drag on a card. The grab offset between the pointer and the
// card's top-left corner keeps the floating preview anchored where it was
// picked up. Neither column sequence is mutated. Starting while a drag is
// already in flight is rejected.
func (d *DragState) Start(card Card, pointer Point, cardTopLeft Point) error {
	if d.dragging {
		return ErrAlreadyDragging
	}
	if card.ID == "" {
		return ErrInvalidID
	}
	*d = DragState{
		dragging:   true,
		card:       card,
		grabOffset: Point{X: pointer.X - cardTopLeft.X, Y: pointer.Y - cardTopLeft.Y},
		pointer:    pointer,
	}
	return nil
}

// Track records a pointer move. The position is stored unconditionally; the
// zone is replaced by the given resolution result, which may be absent.
func (d *DragState) Track(pointer Point, zone DropZone, ok bool) {
	if !d.dragging {
		return
	}
	d.pointer = pointer
	if ok {
		z := zone
		d.zone = &z
	} else {
		d.zone = nil
	}
}

// Commit ends the drag on pointer release. When a drop zone is present, the
// card is removed from its source column and spliced into the target at the
// resolved index; without one, the sequences are untouched and the card
// keeps its original place (it was only hidden from rendering). Drag state
// resets on every path. Reports whether a move was applied.
func (d *DragState) Commit(board *Board) (bool, error) {
	if !d.dragging {
		return false, nil
	}
	zone := d.zone
	card := d.card
	*d = DragState{}
	if zone == nil {
		return false, nil
	}
	if err := board.Move(card.ID, zone.Column, zone.Index); err != nil {
		return false, err
	}
	return true, nil
}

// Cancel abandons the drag without touching either sequence. This is the
// interruption path for focus loss and escape; the card was never removed,
// so there is nothing to restore beyond clearing the state.
func (d *DragState) Cancel() {
	*d = DragState{}
}
