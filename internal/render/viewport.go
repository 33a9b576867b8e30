package render

import (
	"math"

	"github.com/vovakirdan/jmpnrn/internal/core"
)

// Viewport maps tile-space coordinates to screen cells.
type Viewport struct {
	CellsX int // Cells per tile horizontally
	CellsY int // Cells per tile vertically

	// Offset is the tile-space point shown at cell (0, 0).
	Offset core.Vec2
}

// NewViewport creates a viewport anchored at the origin.
func NewViewport(cellsX, cellsY int) Viewport {
	return Viewport{CellsX: max(cellsX, 1), CellsY: max(cellsY, 1)}
}

// Cell returns the cell containing tile-space point p.
func (v Viewport) Cell(p core.Vec2) (x, y int) {
	x = int(math.Floor((p.X - v.Offset.X) * float64(v.CellsX)))
	y = int(math.Floor((p.Y - v.Offset.Y) * float64(v.CellsY)))
	return x, y
}

// Span returns the cell rectangle covered by r. Every non-empty rectangle
// covers at least one cell.
func (v Viewport) Span(r core.Rect) (x, y, w, h int) {
	cx, cy := float64(v.CellsX), float64(v.CellsY)
	x0 := math.Floor((r.Left() - v.Offset.X) * cx)
	y0 := math.Floor((r.Top() - v.Offset.Y) * cy)
	x1 := math.Ceil((r.Right() - v.Offset.X) * cx)
	y1 := math.Ceil((r.Bottom() - v.Offset.Y) * cy)

	w = max(int(x1-x0), 1)
	h = max(int(y1-y0), 1)
	return int(x0), int(y0), w, h
}

// Follow centers the viewport on focus for a screen of the given size,
// keeping it inside bounds where the level is larger than the screen.
func (v *Viewport) Follow(focus core.Vec2, screenW, screenH int, bounds core.Rect) {
	viewW := float64(screenW) / float64(v.CellsX)
	viewH := float64(screenH) / float64(v.CellsY)

	v.Offset.X = follow(focus.X, viewW, bounds.Left(), bounds.Right())
	v.Offset.Y = follow(focus.Y, viewH, bounds.Top(), bounds.Bottom())
}

func follow(focus, view, lo, hi float64) float64 {
	if hi-lo <= view {
		// Level fits: center it
		return lo - (view-(hi-lo))/2
	}
	return core.ClampF(focus-view/2, lo, hi-view)
}
