package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dronemania/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorDrone:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPropeller:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorChimney:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorChimneyCap: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorFlare:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorSkyline:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	core.ColorHUD:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorHighlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorWarning:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorDim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
