package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/jmpnrn/internal/render"
)

// colorStyles maps screen roles to lipgloss styles.
var colorStyles = map[render.Color]lipgloss.Style{
	render.ColorDefault:      lipgloss.NewStyle(),
	render.ColorStatic:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	render.ColorPlayer:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	render.ColorWalker:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	render.ColorCrate:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	render.ColorCrateFalling: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	render.ColorMover:        lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	render.ColorProjectile:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	render.ColorUnknown:      lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *render.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[render.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
