package tui

import "charm.land/bubbles/v2/key"

// keyMap represents key map data used by this package.
type keyMap struct {
	quit          key.Binding
	redeal        key.Binding
	toggleHelp    key.Binding
	focusLeft     key.Binding
	focusRight    key.Binding
	focusUp       key.Binding
	focusDown     key.Binding
	moveCardLeft  key.Binding
	moveCardRight key.Binding
	moveCardUp    key.Binding
	moveCardDown  key.Binding
	inspect       key.Binding
	copyCard      key.Binding
	saveDeck      key.Binding
	decks         key.Binding
	cancel        key.Binding
}

// newKeyMap constructs key map.
func newKeyMap() keyMap {
	return keyMap{
		quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		redeal:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redeal")),
		toggleHelp:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		focusLeft:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "column left")),
		focusRight:    key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "column right")),
		focusUp:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "card up")),
		focusDown:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "card down")),
		moveCardLeft:  key.NewBinding(key.WithKeys("["), key.WithHelp("[", "move card left")),
		moveCardRight: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "move card right")),
		moveCardUp:    key.NewBinding(key.WithKeys("K", "shift+up"), key.WithHelp("K", "move card up")),
		moveCardDown:  key.NewBinding(key.WithKeys("J", "shift+down"), key.WithHelp("J", "move card down")),
		inspect:       key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i/enter", "inspect card")),
		copyCard:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy card")),
		saveDeck:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save deck")),
		decks:         key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "deck picker")),
		cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp handles short help.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.inspect, k.copyCard, k.saveDeck, k.decks, k.redeal, k.toggleHelp, k.quit,
	}
}

// FullHelp handles full help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.inspect, k.copyCard, k.saveDeck, k.decks, k.redeal, k.toggleHelp, k.quit},
		{k.focusLeft, k.focusRight, k.focusUp, k.focusDown},
		{k.moveCardLeft, k.moveCardRight, k.moveCardUp, k.moveCardDown, k.cancel},
	}
}
