package tui

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"
	"github.com/jkullberg/slipboard/internal/domain"
)

// Service represents service data used by this package.
type Service interface {
	DealNew(context.Context) (domain.Board, error)
	DealFromDeck(context.Context, string) (domain.Board, error)
	SaveDeck(context.Context, string, domain.Board) (domain.Deck, error)
	ListDecks(context.Context) ([]domain.Deck, error)
	DeleteDeck(context.Context, string) error
}

// inputMode represents a selectable mode.
type inputMode int

// modeNone and related constants define package defaults.
const (
	modeNone inputMode = iota
	modeInspect
	modeSaveDeck
	modeDeckPicker
	modeConfirmQuit
)

// boardMsg carries a freshly dealt board.
type boardMsg struct {
	board  domain.Board
	status string
	err    error
}

// decksMsg carries the saved-deck listing for the picker.
type decksMsg struct {
	decks []domain.Deck
	err   error
}

// deckSavedMsg reports the outcome of a deck save.
type deckSavedMsg struct {
	name string
	err  error
}

// deckDeletedMsg reports the outcome of a deck delete.
type deckDeletedMsg struct {
	name string
	err  error
}

// Model represents model data used by this package.
type Model struct {
	svc Service

	board domain.Board
	drag  domain.DragState

	focusSide  domain.Side
	focusIndex int

	mode      inputMode
	decks     []domain.Deck
	deckIndex int
	deckInput textinput.Model
	markdown  markdownRenderer

	help help.Model
	keys keyMap

	confirmQuit bool

	width  int
	height int
	ready  bool
	status string
	err    error
}

// NewModel constructs a new value for this package.
func NewModel(svc Service, opts ...Option) Model {
	h := help.New()
	h.ShowAll = false
	deckInput := textinput.New()
	deckInput.Prompt = "deck name: "
	deckInput.Placeholder = "e.g. focus"
	deckInput.CharLimit = 80
	m := Model{
		svc:       svc,
		status:    "dealing...",
		help:      h,
		keys:      newKeyMap(),
		drag:      domain.IdleDrag(),
		focusSide: domain.SideLeft,
		deckInput: deckInput,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// Init handles init.
func (m Model) Init() tea.Cmd {
	return m.dealNew
}

// Update updates state for the requested operation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		// Pointer geometry from before the resize no longer lines up.
		if m.drag.Dragging() {
			m.drag.Cancel()
			m.status = "drag canceled (resize)"
		}
		return m, nil

	case tea.BlurMsg:
		if m.drag.Dragging() {
			m.drag.Cancel()
			m.status = "drag canceled (focus lost)"
		}
		return m, nil

	case boardMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.board = msg.board
		m.drag = domain.IdleDrag()
		m.mode = modeNone
		m.focusSide = domain.SideLeft
		m.focusIndex = 0
		m.clampFocus()
		if msg.status != "" {
			m.status = msg.status
		}
		return m, nil

	case decksMsg:
		if msg.err != nil {
			m.status = "list decks failed: " + msg.err.Error()
			return m, nil
		}
		m.decks = msg.decks
		m.deckIndex = 0
		m.mode = modeDeckPicker
		if len(m.decks) == 0 {
			m.status = "no saved decks"
		}
		return m, nil

	case deckSavedMsg:
		if msg.err != nil {
			m.status = "save deck failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("deck %q saved", msg.name)
		return m, nil

	case deckDeletedMsg:
		if msg.err != nil {
			m.status = "delete deck failed: " + msg.err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("deck %q deleted", msg.name)
		return m, m.loadDecks

	case tea.KeyPressMsg:
		if m.mode != modeNone {
			return m.handleInputModeKey(msg)
		}
		return m.handleNormalModeKey(msg)

	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)

	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)

	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)

	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)

	default:
		return m, nil
	}
}

// dealNew deals a fresh random board.
func (m Model) dealNew() tea.Msg {
	board, err := m.svc.DealNew(context.Background())
	if err != nil {
		return boardMsg{err: err}
	}
	return boardMsg{board: board, status: fmt.Sprintf("dealt %d cards", board.Count())}
}

// loadDecks handles load decks.
func (m Model) loadDecks() tea.Msg {
	decks, err := m.svc.ListDecks(context.Background())
	return decksMsg{decks: decks, err: err}
}

// dealFromDeck deals a saved deck onto the board.
func (m Model) dealFromDeck(name string) tea.Cmd {
	return func() tea.Msg {
		board, err := m.svc.DealFromDeck(context.Background(), name)
		if err != nil {
			return boardMsg{err: err}
		}
		return boardMsg{board: board, status: fmt.Sprintf("dealt deck %q", name)}
	}
}

// saveDeck saves the current board's cards under a deck name.
func (m Model) saveDeck(name string) tea.Cmd {
	board := m.board
	return func() tea.Msg {
		deck, err := m.svc.SaveDeck(context.Background(), name, board)
		if err != nil {
			return deckSavedMsg{name: name, err: err}
		}
		return deckSavedMsg{name: deck.Name}
	}
}

// deleteDeck deletes a saved deck by name.
func (m Model) deleteDeck(name string) tea.Cmd {
	return func() tea.Msg {
		return deckDeletedMsg{name: name, err: m.svc.DeleteDeck(context.Background(), name)}
	}
}

// handleNormalModeKey handles normal mode key.
func (m Model) handleNormalModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.quit):
		if m.confirmQuit {
			m.mode = modeConfirmQuit
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, keys.cancel):
		if m.drag.Dragging() {
			m.drag.Cancel()
			m.status = "drag canceled"
		}
		return m, nil

	case key.Matches(msg, keys.redeal):
		m.status = "dealing..."
		return m, m.dealNew

	case key.Matches(msg, keys.toggleHelp):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, keys.focusLeft):
		m.focusSide = domain.SideLeft
		m.clampFocus()
		return m, nil

	case key.Matches(msg, keys.focusRight):
		m.focusSide = domain.SideRight
		m.clampFocus()
		return m, nil

	case key.Matches(msg, keys.focusUp):
		if m.focusIndex > 0 {
			m.focusIndex--
		}
		return m, nil

	case key.Matches(msg, keys.focusDown):
		if m.focusIndex < len(m.board.Cards(m.focusSide))-1 {
			m.focusIndex++
		}
		return m, nil

	case key.Matches(msg, keys.moveCardLeft):
		return m.moveFocusedCard(domain.SideLeft, -1), nil

	case key.Matches(msg, keys.moveCardRight):
		return m.moveFocusedCard(domain.SideRight, -1), nil

	case key.Matches(msg, keys.moveCardUp):
		if m.focusIndex > 0 {
			return m.moveFocusedCard(m.focusSide, m.focusIndex-1), nil
		}
		return m, nil

	case key.Matches(msg, keys.moveCardDown):
		cards := m.board.Cards(m.focusSide)
		if m.focusIndex < len(cards)-1 {
			return m.moveFocusedCard(m.focusSide, m.focusIndex+1), nil
		}
		return m, nil

	case key.Matches(msg, keys.inspect):
		if _, ok := m.focusedCard(); ok {
			m.mode = modeInspect
		}
		return m, nil

	case key.Matches(msg, keys.copyCard):
		card, ok := m.focusedCard()
		if !ok {
			return m, nil
		}
		if err := clipboard.WriteAll(card.Content); err != nil {
			m.status = "copy failed: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("copied %q", card.Title())
		return m, nil

	case key.Matches(msg, keys.saveDeck):
		m.mode = modeSaveDeck
		m.deckInput.Reset()
		m.deckInput.Focus()
		return m, nil

	case key.Matches(msg, keys.decks):
		return m, m.loadDecks

	default:
		return m, nil
	}
}

// handleInputModeKey handles input mode key.
func (m Model) handleInputModeKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeInspect:
		switch msg.String() {
		case "esc", "i", "enter", "q":
			m.mode = modeNone
		}
		return m, nil

	case modeSaveDeck:
		switch msg.String() {
		case "esc":
			m.mode = modeNone
			return m, nil
		case "enter":
			name := m.deckInput.Value()
			m.mode = modeNone
			if name == "" {
				m.status = "deck name required"
				return m, nil
			}
			return m, m.saveDeck(name)
		}
		var cmd tea.Cmd
		m.deckInput, cmd = m.deckInput.Update(msg)
		return m, cmd

	case modeDeckPicker:
		switch msg.String() {
		case "esc", "p", "q":
			m.mode = modeNone
		case "up", "k":
			if m.deckIndex > 0 {
				m.deckIndex--
			}
		case "down", "j":
			if m.deckIndex < len(m.decks)-1 {
				m.deckIndex++
			}
		case "enter":
			if m.deckIndex < len(m.decks) {
				name := m.decks[m.deckIndex].Name
				m.mode = modeNone
				return m, m.dealFromDeck(name)
			}
			m.mode = modeNone
		case "d", "x":
			if m.deckIndex < len(m.decks) {
				return m, m.deleteDeck(m.decks[m.deckIndex].Name)
			}
		}
		return m, nil

	case modeConfirmQuit:
		switch msg.String() {
		case "y", "enter", "q":
			return m, tea.Quit
		case "esc", "n":
			m.mode = modeNone
		}
		return m, nil

	default:
		m.mode = modeNone
		return m, nil
	}
}

// handleMouseClick starts a drag when the press lands on a card.
func (m Model) handleMouseClick(msg tea.MouseClickMsg) (tea.Model, tea.Cmd) {
	if m.mode != modeNone || msg.Button != tea.MouseLeft {
		return m, nil
	}
	surface := boardRect(m.width, m.height)
	if surface.W <= 0 || surface.H <= 0 {
		return m, nil
	}
	pointer := pointerFromCell(msg.X, msg.Y)
	for _, side := range []domain.Side{domain.SideLeft, domain.SideRight} {
		column := domain.ColumnRect(surface, side)
		if !column.Contains(pointer) {
			continue
		}
		heights := m.board.Heights(side)
		idx := domain.CardIndexAt(column, heights, pointer)
		if idx < 0 {
			return m, nil
		}
		card := m.board.Cards(side)[idx]
		rect := domain.CardRect(column, heights, idx)
		if err := m.drag.Start(card, pointer, domain.Point{X: rect.X, Y: rect.Y}); err != nil {
			return m, nil
		}
		m.focusSide = side
		m.focusIndex = idx
		m.status = fmt.Sprintf("dragging %q", card.Title())
		return m, nil
	}
	return m, nil
}

// handleMouseMotion tracks the pointer while a drag is active. Motion while
// idle is inert.
func (m Model) handleMouseMotion(msg tea.MouseMotionMsg) (tea.Model, tea.Cmd) {
	if !m.drag.Dragging() {
		return m, nil
	}
	pointer := pointerFromCell(msg.X, msg.Y)
	card, _ := m.drag.Card()
	zone, ok := m.resolveZone(pointer, card.Column)
	m.drag.Track(pointer, zone, ok)
	return m, nil
}

// handleMouseRelease commits the drag at the last resolved drop zone, or
// leaves the board untouched when the pointer is over no zone.
func (m Model) handleMouseRelease(msg tea.MouseReleaseMsg) (tea.Model, tea.Cmd) {
	if !m.drag.Dragging() || msg.Button != tea.MouseLeft {
		return m, nil
	}
	card, _ := m.drag.Card()
	moved, err := m.drag.Commit(&m.board)
	if err != nil {
		m.status = "drop failed: " + err.Error()
		return m, nil
	}
	if !moved {
		m.status = "drop ignored"
		m.clampFocus()
		return m, nil
	}
	if dropped, ok := m.board.Find(card.ID); ok {
		m.focusSide = dropped.Column
		for i, c := range m.board.Cards(dropped.Column) {
			if c.ID == card.ID {
				m.focusIndex = i
				break
			}
		}
	}
	m.status = fmt.Sprintf("dropped %q", card.Title())
	return m, nil
}

// handleMouseWheel handles mouse wheel.
func (m Model) handleMouseWheel(msg tea.MouseWheelMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeDeckPicker {
		switch msg.Button {
		case tea.MouseWheelUp:
			if m.deckIndex > 0 {
				m.deckIndex--
			}
		case tea.MouseWheelDown:
			if m.deckIndex < len(m.decks)-1 {
				m.deckIndex++
			}
		}
		return m, nil
	}
	if m.mode != modeNone {
		return m, nil
	}
	switch msg.Button {
	case tea.MouseWheelUp:
		if m.focusIndex > 0 {
			m.focusIndex--
		}
	case tea.MouseWheelDown:
		if m.focusIndex < len(m.board.Cards(m.focusSide))-1 {
			m.focusIndex++
		}
	}
	return m, nil
}

// resolveZone maps a board pixel to the drop zone under it. Only the column
// opposite the dragged card's origin is a target; a pointer anywhere else,
// including over the origin column, resolves to nothing.
func (m Model) resolveZone(pointer domain.Point, origin domain.Side) (domain.DropZone, bool) {
	surface := boardRect(m.width, m.height)
	target := origin.Opposite()
	return domain.ResolveDropZone(pointer, surface, target, m.board.Heights(target))
}

// moveFocusedCard moves the focused card to a column and index. A negative
// index clamps to the focused position within the target column.
func (m Model) moveFocusedCard(side domain.Side, index int) Model {
	card, ok := m.focusedCard()
	if !ok {
		return m
	}
	target := m.board.Cards(side)
	if index < 0 {
		index = m.focusIndex
		if side == card.Column {
			return m
		}
		if index > len(target) {
			index = len(target)
		}
	}
	if err := m.board.Move(card.ID, side, index); err != nil {
		m.status = "move failed: " + err.Error()
		return m
	}
	m.focusSide = side
	m.focusIndex = index
	m.clampFocus()
	m.status = fmt.Sprintf("moved %q", card.Title())
	return m
}

// focusedCard returns the card under keyboard focus.
func (m Model) focusedCard() (domain.Card, bool) {
	cards := m.board.Cards(m.focusSide)
	if m.focusIndex < 0 || m.focusIndex >= len(cards) {
		return domain.Card{}, false
	}
	return cards[m.focusIndex], true
}

// clampFocus clamps the keyboard focus to the board contents.
func (m *Model) clampFocus() {
	cards := m.board.Cards(m.focusSide)
	if len(cards) == 0 {
		other := m.focusSide.Opposite()
		if len(m.board.Cards(other)) > 0 {
			m.focusSide = other
			cards = m.board.Cards(other)
		}
	}
	m.focusIndex = clamp(m.focusIndex, 0, max(0, len(cards)-1))
}

// clamp clamps v into [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
