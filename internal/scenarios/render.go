package scenarios

import (
	"fmt"

	"github.com/vovakirdan/jmpnrn/internal/actors"
	"github.com/vovakirdan/jmpnrn/internal/physics"
	"github.com/vovakirdan/jmpnrn/internal/render"
)

// look colors actors by variant.
func look(a *physics.Actor) render.Cell {
	switch actors.KindOf(a) {
	case actors.KindPlayer:
		return render.Cell{Rune: '█', Color: render.ColorPlayer}
	case actors.KindWalker:
		return render.Cell{Rune: '▓', Color: render.ColorWalker}
	case actors.KindCrate:
		if a.Grounded() {
			return render.Cell{Rune: '▒', Color: render.ColorCrate}
		}
		return render.Cell{Rune: '▒', Color: render.ColorCrateFalling}
	case actors.KindMover:
		return render.Cell{Rune: '▀', Color: render.ColorMover}
	case actors.KindProjectile:
		return render.Cell{Rune: '•', Color: render.ColorProjectile}
	default:
		return render.Cell{Rune: '?', Color: render.ColorUnknown}
	}
}

// Render draws the level with the camera on the player, or centered on the
// level when there is none.
func (s *Sim) Render(dst *render.Screen) {
	dst.Clear()

	if s.world == nil {
		dst.DrawTextCentered(dst.Height()/2, "level failed to load")
		return
	}

	rc := s.env.Config.Render
	vp := render.NewViewport(rc.CellsPerTileX, rc.CellsPerTileY)
	bounds := s.lvl.Bounds()
	focus := bounds.Center()
	if s.hero != nil {
		focus = s.hero.Center()
	}
	vp.Follow(focus, dst.Width(), dst.Height(), bounds)
	render.DrawWorld(dst, vp, s.world, look)

	s.drawHUD(dst)

	if s.state.Paused {
		drawCenteredMessage(dst, "PAUSED", "P resume  |  N step")
	}
}

func (s *Sim) drawHUD(dst *render.Screen) {
	hud := fmt.Sprintf(" %s  t=%d  actors %d  grounded %d  fallbacks %d ",
		s.def.title, s.state.Tick, s.state.Actors, s.state.Grounded, s.state.Fallbacks)
	dst.DrawText(1, 0, hud)

	var status string
	if s.player != nil {
		status = fmt.Sprintf(" hp %d  shots %d ", s.player.Health(), s.player.Shots())
	}
	if s.state.Finished {
		status += " done "
	}
	if status != "" {
		dst.DrawText(dst.Width()-len([]rune(status))-1, 0, status)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *render.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillRect(boxX, boxY, boxW, boxH, ' ', render.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
