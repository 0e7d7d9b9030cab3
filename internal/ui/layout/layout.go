// Package layout draws the frame around every screen: a header with the
// assessment position, the screen content, and a footer of key hints.
package layout

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/ui/theme"
)

// Smallest terminal the frame is drawn in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	brand  = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	status = lipgloss.NewStyle().Foreground(theme.Accent)
	key    = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	text := fmt.Sprintf("The terminal is too small.\n\nResize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(text))
}

// ProgressStatus is the header text for the given 1-based section number.
// It is empty until a position is known.
func ProgressStatus(section, sections int, progress float64) string {
	if section <= 0 || sections <= 0 {
		return ""
	}
	return fmt.Sprintf("Section %d/%d  %d%%", section, sections, int(math.Round(progress*100)))
}

// RenderHeader puts the app name on the left, title in the middle and the
// status on the right.
func RenderHeader(title, statusText string, width int) string {
	left := brand.Render("  Balancer")
	mid := theme.Body.Render(title)
	right := status.Render(statusText) + "  "

	inner := max(width-2, 0)
	lw, mw, rw := lipgloss.Width(left), lipgloss.Width(mid), lipgloss.Width(right)

	gap1 := max((inner-mw)/2-lw, 1)
	gap2 := max(inner-lw-gap1-mw-rw, 1)
	line := left + strings.Repeat(" ", gap1) + mid + strings.Repeat(" ", gap2) + right

	return bar.Width(width).Render(line)
}

// RenderFooter lists key hints in order.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + theme.Hint.Italic(false).Render(h.Description)
	}
	return bar.Width(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	h := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(h).MaxHeight(h).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
