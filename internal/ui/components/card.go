package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards on a screen,
// so stacked boxes visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for border (2) + inner padding (4)
	return min(max(frameWidth-6, 20), 76)
}

// Card wraps content in a rounded-border card at the given content width.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Padding(0, 2).
		Render(content)
}

// FocusCard is Card with a highlighted border when focused.
func FocusCard(content string, cw int, focused bool) string {
	style := theme.BlurredCard
	if focused {
		style = theme.FocusedCard
	}
	return style.Width(cw - 2).Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
