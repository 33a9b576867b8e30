package tui

import "github.com/vovakirdan/jmpnrn/internal/core"

// holdTicks is how long a movement key counts as held after its last press.
// Terminals only report presses and auto-repeat, never releases.
const holdTicks = 8

// oneShot actions apply to a single tick only.
var oneShot = map[core.Action]bool{
	core.ActionPause:   true,
	core.ActionStep:    true,
	core.ActionRestart: true,
}

// heldInput turns key presses into per-tick input frames.
type heldInput struct {
	until map[core.Action]int
	once  core.InputFrame
	tick  int
}

func newHeldInput() *heldInput {
	return &heldInput{
		until: make(map[core.Action]int),
		once:  core.NewInputFrame(),
	}
}

// Press records a key press for action a.
func (h *heldInput) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if oneShot[a] {
		h.once.Set(a)
		return
	}
	// Opposite directions cancel each other
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = h.tick + holdTicks
}

// Frame returns the input for the current tick and advances the clock.
func (h *heldInput) Frame() core.InputFrame {
	frame := h.once.Clone()
	for a, until := range h.until {
		if h.tick < until {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	h.once.Clear()
	h.tick++
	return frame
}

// Reset drops every pending press.
func (h *heldInput) Reset() {
	clear(h.until)
	h.once.Clear()
}
