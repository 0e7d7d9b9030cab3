package components

import "github.com/abhisek/balancer/internal/ui/theme"

// Button renders a call-to-action label, highlighted while it has focus.
func Button(label string, focused bool) string {
	if focused {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}
