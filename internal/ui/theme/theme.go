// Package theme holds the palette and shared lipgloss styles.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/scoring"
)

// Palette.
var (
	Primary   = lipgloss.Color("#6366F1") // indigo
	Secondary = lipgloss.Color("#14B8A6") // teal
	Accent    = lipgloss.Color("#F59E0B") // amber
	Success   = lipgloss.Color("#22C55E")
	Warning   = lipgloss.Color("#EAB308")
	Info      = lipgloss.Color("#38BDF8")
	Danger    = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Body    = lipgloss.NewStyle().Foreground(Text)
	Hint    = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Heading = lipgloss.NewStyle().Foreground(Secondary).Bold(true)

	// Question cards: the focused one gets the primary border.
	FocusedCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Primary).Padding(0, 1)
	BlurredCard = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1)

	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Chosen     = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Required   = lipgloss.NewStyle().Foreground(Danger)
	Notice     = lipgloss.NewStyle().Foreground(Warning).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Foreground(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(Border)

	ButtonActive   = lipgloss.NewStyle().Background(Primary).Foreground(Text).Bold(true).Padding(0, 2)
	ButtonInactive = lipgloss.NewStyle().Foreground(TextDim).Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 2)
)

// BandColor is the display color for a score band.
func BandColor(b scoring.Band) color.Color {
	switch b {
	case scoring.BandHigh:
		return Success
	case scoring.BandMid:
		return Warning
	default:
		return Info
	}
}
