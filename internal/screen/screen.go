// Package screen defines what the router needs from a screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/balancer/internal/ui/layout"
)

// Screen is one full view of the app, drawn between the header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the content area of the given size.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that sometimes take free text.
// While CapturesText is true, printable keys belong to the screen and the
// app does not treat them as shortcuts.
type InputCapturer interface {
	CapturesText() bool
}

// PendingSaver is implemented by screens that hold input not yet recorded
// in the session. SavePending records it before the app navigates away.
type PendingSaver interface {
	SavePending()
}
