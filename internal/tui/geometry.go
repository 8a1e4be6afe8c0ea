package tui

import "github.com/jkullberg/slipboard/internal/domain"

// Terminal cells are mapped onto the board's pixel space at a fixed scale so
// drop resolution runs on pixel geometry regardless of terminal size.
const (
	pxPerCellX = 10
	pxPerCellY = 20
)

// chrome rows around the board surface.
const (
	boardTopRows    = 2
	boardBottomRows = 2
)

// boardRect returns the board's pixel rectangle for a terminal size.
func boardRect(widthCells, heightCells int) domain.Rect {
	rows := heightCells - boardTopRows - boardBottomRows
	if widthCells <= 0 || rows <= 0 {
		return domain.Rect{}
	}
	return domain.Rect{X: 0, Y: 0, W: widthCells * pxPerCellX, H: rows * pxPerCellY}
}

// pointerFromCell maps a terminal cell to the pixel at its center. Cells above
// the board surface map to negative Y and resolve to nothing.
func pointerFromCell(x, y int) domain.Point {
	return domain.Point{
		X: x*pxPerCellX + pxPerCellX/2,
		Y: (y-boardTopRows)*pxPerCellY + pxPerCellY/2,
	}
}

// cellForPx maps a board pixel offset to its terminal cell, clamped at zero.
func cellForPx(px, scale int) int {
	if px < 0 {
		return 0
	}
	return px / scale
}

// cardRowSpan returns the first and last terminal row a card occupies, from
// its pixel top and height. Rows come from cumulative pixel offsets so
// consecutive cards never drift apart from rounding.
func cardRowSpan(topPx, heightPx int) (first, last int) {
	first = cellForPx(topPx, pxPerCellY)
	last = cellForPx(topPx+heightPx-1, pxPerCellY)
	if last < first {
		last = first
	}
	return first, last
}
