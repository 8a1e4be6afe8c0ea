package domain

// Board owns the two ordered card sequences. Order within a sequence is
// visual top-to-bottom order. Every card lives in exactly one sequence and
// ids are unique across both; NewBoard and every mutation preserve that.
type Board struct {
	left  []Card
	right []Card
}

// NewBoard constructs a new value for this package.
func NewBoard(left, right []Card) (Board, error) {
	seen := map[string]struct{}{}
	check := func(cards []Card, side Side) error {
		for _, card := range cards {
			if card.ID == "" {
				return ErrInvalidID
			}
			if card.Column != side {
				return ErrInvalidSide
			}
			if _, ok := seen[card.ID]; ok {
				return ErrDuplicateCard
			}
			seen[card.ID] = struct{}{}
		}
		return nil
	}
	if err := check(left, SideLeft); err != nil {
		return Board{}, err
	}
	if err := check(right, SideRight); err != nil {
		return Board{}, err
	}
	return Board{
		left:  append([]Card(nil), left...),
		right: append([]Card(nil), right...),
	}, nil
}

// Cards returns a copy of one column's sequence in display order.
func (b Board) Cards(side Side) []Card {
	return append([]Card(nil), b.sequence(side)...)
}

// Heights returns one column's card heights in display order.
func (b Board) Heights(side Side) []int {
	seq := b.sequence(side)
	heights := make([]int, len(seq))
	for i, card := range seq {
		heights[i] = card.Height
	}
	return heights
}

// Count returns the total card count across both columns.
func (b Board) Count() int {
	return len(b.left) + len(b.right)
}

// Find returns the card with the given id, if present.
func (b Board) Find(id string) (Card, bool) {
	for _, card := range b.left {
		if card.ID == id {
			return card, true
		}
	}
	for _, card := range b.right {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

// Remove removes a card by identity from whichever column holds it.
func (b *Board) Remove(id string) (Card, error) {
	for _, side := range []Side{SideLeft, SideRight} {
		seq := b.sequence(side)
		for i, card := range seq {
			if card.ID == id {
				b.setSequence(side, append(seq[:i:i], seq[i+1:]...))
				return card, nil
			}
		}
	}
	return Card{}, ErrCardNotFound
}

// Insert splices a card into a column at the given index. Index len(seq) is
// a valid append and index 0 a valid prepend; one splice path handles both.
func (b *Board) Insert(side Side, index int, card Card) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	seq := b.sequence(side)
	if index < 0 || index > len(seq) {
		return ErrInvalidIndex
	}
	if _, ok := b.Find(card.ID); ok {
		return ErrDuplicateCard
	}
	card.Column = side
	out := make([]Card, 0, len(seq)+1)
	out = append(out, seq[:index]...)
	out = append(out, card)
	out = append(out, seq[index:]...)
	b.setSequence(side, out)
	return nil
}

// Move removes a card from its current column and splices it into the target
// column at the given index. Relative order of all other cards is unchanged.
func (b *Board) Move(id string, side Side, index int) error {
	if !side.Valid() {
		return ErrInvalidSide
	}
	if index < 0 || index > len(b.sequence(side)) {
		return ErrInvalidIndex
	}
	card, err := b.Remove(id)
	if err != nil {
		return err
	}
	if err := b.Insert(side, index, card); err != nil {
		// Same-column moves can invalidate the index after removal; put the
		// card back at its column tail rather than losing it.
		_ = b.Insert(card.Column, len(b.sequence(card.Column)), card)
		return err
	}
	return nil
}

// sequence returns the backing slice for one side.
func (b Board) sequence(side Side) []Card {
	if side == SideLeft {
		return b.left
	}
	return b.right
}

// setSequence replaces the backing slice for one side.
func (b *Board) setSequence(side Side, cards []Card) {
	if side == SideLeft {
		b.left = cards
		return
	}
	b.right = cards
}
