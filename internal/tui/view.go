package tui

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/jkullberg/slipboard/internal/domain"
)

// View handles view.
func (m Model) View() tea.View {
	if m.err != nil {
		return boardView("error: " + m.err.Error() + "\n\npress r to redeal • q quit\n")
	}
	if !m.ready {
		return boardView("dealing...")
	}

	muted := lipgloss.Color("241")
	dim := lipgloss.Color("239")
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	statusStyle := lipgloss.NewStyle().Foreground(dim)

	header := titleStyle.Render("slipboard")
	if strings.TrimSpace(m.status) != "" {
		header += "  " + statusStyle.Render(truncate(m.status, max(0, m.width-12)))
	}

	surface := boardRect(m.width, m.height)
	board := m.renderBoard(surface, dim)

	helpBubble := m.help
	helpBubble.SetWidth(max(0, m.width-2))
	helpLine := lipgloss.NewStyle().
		Foreground(muted).
		BorderTop(true).
		BorderForeground(dim).
		Padding(0, 1).
		Width(max(0, m.width)).
		Render(helpBubble.View(m.keys))

	fullContent := header + "\n\n" + board + "\n" + helpLine
	if overlay := m.renderOverlay(muted, dim); overlay != "" {
		overlayHeight := lipgloss.Height(fullContent)
		if m.height > 0 {
			overlayHeight = m.height
		}
		fullContent = overlayOnContent(fullContent, overlay, max(1, m.width), max(1, overlayHeight))
	}
	return boardView(fullContent)
}

// boardView wraps content in a view with mouse tracking enabled.
func boardView(content string) tea.View {
	v := tea.NewView(content)
	v.MouseMode = tea.MouseModeCellMotion
	v.AltScreen = true
	return v
}

// boardSlot is one rendered position in a column: a card, or the empty
// placeholder holding the drop slot open at the dragged card's height.
type boardSlot struct {
	card        domain.Card
	placeholder bool
}

// renderBoard composes the two columns, the drop placeholder, and the drag
// preview onto one canvas covering the board surface. The dragged card is
// omitted from its origin column, the rest of the board renders dimmed, and
// the target column opens a gap of the card's exact height at the resolved
// index.
func (m Model) renderBoard(surface domain.Rect, dim color.Color) string {
	rows := surface.H / pxPerCellY
	if surface.W <= 0 || rows <= 0 {
		return ""
	}
	canvas := lipgloss.NewCanvas(m.width, rows)

	dragCard, dragging := m.drag.Card()
	zone, hasZone := m.drag.Zone()
	for _, side := range []domain.Side{domain.SideLeft, domain.SideRight} {
		column := domain.ColumnRect(surface, side)
		canvas.Compose(m.columnLayer(column, dim))

		var slots []boardSlot
		for _, card := range m.board.Cards(side) {
			if dragging && card.ID == dragCard.ID {
				continue
			}
			slots = append(slots, boardSlot{card: card})
		}
		if dragging && hasZone && zone.Column == side {
			at := min(zone.Index, len(slots))
			rest := append([]boardSlot{{card: dragCard, placeholder: true}}, slots[at:]...)
			slots = append(slots[:at:at], rest...)
		}

		offset := 0
		for i, s := range slots {
			first, last := cardRowSpan(column.Y+offset, s.card.Height)
			var box string
			if s.placeholder {
				box = m.renderPlaceholder(s.card, last-first+1)
			} else {
				focused := !dragging && side == m.focusSide && i == m.focusIndex && m.mode == modeNone
				box = m.renderCard(s.card, last-first+1, focused, dragging)
			}
			layer := lipgloss.NewLayer(box).
				X(cellForPx(column.X, pxPerCellX)).
				Y(first).
				Z(1)
			canvas.Compose(layer)
			offset += s.card.Height + domain.CardGap
		}
	}

	if dragging {
		canvas.Compose(m.previewLayer(dragCard))
	}
	return canvas.Render()
}

// columnLayer renders the column backdrop.
func (m Model) columnLayer(column domain.Rect, dim color.Color) *lipgloss.Layer {
	w := column.W / pxPerCellX
	h := column.H / pxPerCellY
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(dim).
		Width(max(0, w-2)).
		Height(max(0, h-2)).
		Render("")
	return lipgloss.NewLayer(box).
		X(cellForPx(column.X, pxPerCellX)).
		Y(cellForPx(column.Y, pxPerCellY)).
		Z(0)
}

// renderCard renders one card box at its row height. While a drag is in
// flight the static board renders dimmed under the floating preview.
func (m Model) renderCard(card domain.Card, rows int, focused, dimmed bool) string {
	widthCells := domain.CardWidth / pxPerCellX
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(card.Color)).
		Width(widthCells - 2).
		Height(max(1, rows-2)).
		Padding(0, 1)
	title := lipgloss.NewStyle().Bold(true).Render(truncate(card.Title(), widthCells-4))
	if focused {
		border = border.Border(lipgloss.ThickBorder())
	}
	if dimmed {
		border = border.Faint(true)
		title = lipgloss.NewStyle().Faint(true).Render(truncate(card.Title(), widthCells-4))
	}
	return border.Render(title)
}

// renderPlaceholder renders the empty slot the dragged card would land in,
// at the card's exact height.
func (m Model) renderPlaceholder(card domain.Card, rows int) string {
	widthCells := domain.CardWidth / pxPerCellX
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(card.Color)).
		Faint(true).
		Width(widthCells - 2).
		Height(max(1, rows-2)).
		Render("")
}

// previewLayer renders the floating copy of the dragged card under the
// pointer, offset by where the card was grabbed.
func (m Model) previewLayer(card domain.Card) *lipgloss.Layer {
	pointer := m.drag.Pointer()
	grab := m.drag.GrabOffset()
	topLeft := domain.Point{X: pointer.X - grab.X, Y: pointer.Y - grab.Y}

	widthCells := domain.CardWidth / pxPerCellX
	_, last := cardRowSpan(0, card.Height)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(card.Color)).
		Width(widthCells - 2).
		Height(max(1, last)).
		Padding(0, 1).
		Render(lipgloss.NewStyle().Italic(true).Render(truncate(card.Title(), widthCells-4)))
	return lipgloss.NewLayer(box).
		X(cellForPx(max(0, topLeft.X), pxPerCellX)).
		Y(cellForPx(max(0, topLeft.Y), pxPerCellY)).
		Z(10)
}

// renderOverlay renders the active modal overlay, if any.
func (m Model) renderOverlay(muted, dim color.Color) string {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(1, 2)
	hint := lipgloss.NewStyle().Foreground(muted)

	switch m.mode {
	case modeInspect:
		card, ok := m.focusedCard()
		if !ok {
			return ""
		}
		width := min(64, max(24, m.width-8))
		body := m.markdown.render(card.Content, width)
		meta := hint.Render(fmt.Sprintf("%s column • %dpx", card.Column, card.Height))
		return frame.Render(body + "\n\n" + meta + "\n" + hint.Render("esc close • y copy"))

	case modeSaveDeck:
		return frame.Render("Save deck\n\n" + m.deckInput.View() + "\n\n" + hint.Render("enter save • esc cancel"))

	case modeDeckPicker:
		lines := []string{"Decks", ""}
		if len(m.decks) == 0 {
			lines = append(lines, hint.Render("no saved decks"))
		}
		for i, deck := range m.decks {
			marker := "  "
			if i == m.deckIndex {
				marker = "> "
			}
			lines = append(lines, fmt.Sprintf("%s%s (%d cards)", marker, deck.Name, len(deck.Cards)))
		}
		lines = append(lines, "", hint.Render("enter deal • d delete • esc close"))
		return frame.Render(strings.Join(lines, "\n"))

	case modeConfirmQuit:
		return frame.Render("Quit slipboard?\n\n" + hint.Render("y quit • n stay"))

	default:
		return ""
	}
}

// fitLines fits lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// overlayOnContent overlays on content.
func overlayOnContent(base, overlay string, width, height int) string {
	if width <= 0 || height <= 0 {
		if strings.TrimSpace(overlay) == "" {
			return base
		}
		return overlay + "\n\n" + base
	}

	base = fitLines(base, height)
	canvas := lipgloss.NewCanvas(width, height)
	baseLayer := lipgloss.NewLayer(base).X(0).Y(0).Z(0)
	centeredOverlay := lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlay,
	)
	overlayLayer := lipgloss.NewLayer(centeredOverlay).X(0).Y(0).Z(10)

	canvas.Compose(baseLayer)
	canvas.Compose(overlayLayer)
	return canvas.Render()
}

// truncate truncates the requested operation.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
