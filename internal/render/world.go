package render

import (
	"github.com/vovakirdan/jmpnrn/internal/core"
	"github.com/vovakirdan/jmpnrn/internal/physics"
)

// StaticCell is how level geometry is drawn.
var StaticCell = Cell{Rune: '█', Color: ColorStatic}

// Look picks the cell used to draw an actor.
type Look func(a *physics.Actor) Cell

// DrawWorld draws static geometry and then every actor in insertion order.
func DrawWorld(dst *Screen, vp Viewport, w *physics.World, look Look) {
	for _, r := range w.Statics() {
		DrawRect(dst, vp, r, StaticCell)
	}
	for _, a := range w.Actors() {
		DrawRect(dst, vp, a.Rect, look(a))
	}
}

// DrawRect fills the cells covered by r.
func DrawRect(dst *Screen, vp Viewport, r core.Rect, c Cell) {
	x, y, w, h := vp.Span(r)
	dst.FillRect(x, y, w, h, c.Rune, c.Color)
}
