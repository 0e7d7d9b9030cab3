package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/ui/theme"
)

// Meter draws Value out of Max as a labelled bar followed by the value.
type Meter struct {
	Label      string
	LabelWidth int // label column is padded to this width
	Value      float64
	Max        float64
	Width      int
	Color      color.Color // nil uses theme.ProgressFilled's color
}

// Fraction returns Value/Max clamped to [0, 1].
func (m Meter) Fraction() float64 {
	if m.Max <= 0 {
		return 0
	}
	return min(max(m.Value/m.Max, 0), 1)
}

func (m Meter) View() string {
	label := fmt.Sprintf("%-*s  ", m.LabelWidth, m.Label)
	value := fmt.Sprintf("  %5.1f", m.Value)

	cells := max(m.Width-lipgloss.Width(label)-len(value), 4)
	filled := int(float64(cells)*m.Fraction() + 0.5)

	fill := theme.ProgressFilled
	if m.Color != nil {
		fill = fill.Foreground(m.Color)
	}

	var b strings.Builder
	b.WriteString(theme.Body.Render(label))
	b.WriteString(fill.Render(strings.Repeat("█", filled)))
	b.WriteString(theme.ProgressEmpty.Render(strings.Repeat("░", cells-filled)))
	b.WriteString(theme.Hint.Render(value))
	return b.String()
}
