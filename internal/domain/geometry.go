package domain

// Fixed board layout convention, in abstract pixel units. Column rectangles
// are derived from the board rectangle on every resolution pass.
const (
	ColumnPadding = 16
	ColumnGutter  = 8
	CardGap       = 16
	CardWidth     = 200
)

// Point is a position in board pixel space.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned rectangle in board pixel space.
type Rect struct {
	X int
	Y int
	W int
	H int
}

// Right returns the rectangle's right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle, bounds
// inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// DropZone identifies where a dragged card would land if released now.
type DropZone struct {
	Column Side
	Index  int
}

// ColumnRect derives one column's rectangle from the board rectangle: each
// column spans half the board width minus the gutter, inset by the padding.
func ColumnRect(board Rect, side Side) Rect {
	mid := board.X + board.W/2
	top := board.Y + ColumnPadding
	bottom := board.Bottom() - ColumnPadding
	if side == SideLeft {
		left := board.X + ColumnPadding
		return Rect{X: left, Y: top, W: mid - ColumnGutter - left, H: bottom - top}
	}
	left := mid + ColumnGutter
	return Rect{X: left, Y: top, W: board.Right() - ColumnPadding - left, H: bottom - top}
}

// ResolveDropZone computes the insertion index for a pointer over the target
// column. Each card occupies its height plus the card gap; the first card
// whose vertical center lies below the pointer sets the index, and a pointer
// below every center appends. A pointer outside the column rectangle, or a
// degenerate board rectangle, yields no zone.
func ResolveDropZone(pointer Point, board Rect, target Side, heights []int) (DropZone, bool) {
	if !target.Valid() || board.W <= 0 || board.H <= 0 {
		return DropZone{}, false
	}
	column := ColumnRect(board, target)
	if column.W <= 0 || column.H <= 0 || !column.Contains(pointer) {
		return DropZone{}, false
	}

	offset := column.Y
	for i, height := range heights {
		occupied := height + CardGap
		if offset+occupied/2 > pointer.Y {
			return DropZone{Column: target, Index: i}, true
		}
		offset += occupied
	}
	return DropZone{Column: target, Index: len(heights)}, true
}

// CardRect returns the rectangle a card at the given index occupies inside a
// column, excluding the trailing gap. Used for pointer hit testing at drag
// start and for rendering.
func CardRect(column Rect, heights []int, index int) Rect {
	offset := column.Y
	for i := 0; i < index && i < len(heights); i++ {
		offset += heights[i] + CardGap
	}
	height := 0
	if index >= 0 && index < len(heights) {
		height = heights[index]
	}
	return Rect{X: column.X, Y: offset, W: CardWidth, H: height}
}

// CardIndexAt returns the index of the card whose extent contains the
// pointer's y-coordinate, or -1 when the pointer is over a gap or past the
// stack.
func CardIndexAt(column Rect, heights []int, pointer Point) int {
	if !column.Contains(pointer) {
		return -1
	}
	offset := column.Y
	for i, height := range heights {
		if pointer.Y >= offset && pointer.Y < offset+height {
			return i
		}
		offset += height + CardGap
	}
	return -1
}
