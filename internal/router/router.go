// Package router decides which screen the app shows. A single base screen
// follows the assessment position; overlays such as help sit above it until
// dismissed.
package router

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/balancer/internal/screen"
)

// ShowMsg replaces the base screen and drops any overlays.
type ShowMsg struct {
	Screen screen.Screen
}

// OverlayMsg opens a screen above the current one.
type OverlayMsg struct {
	Screen screen.Screen
}

// DismissMsg closes the topmost overlay.
type DismissMsg struct{}

// Show returns a command that shows s as the new base screen.
func Show(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Screen: s} }
}

// Overlay returns a command that opens s above the current screen.
func Overlay(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return OverlayMsg{Screen: s} }
}

// Router holds the base screen and its overlays.
type Router struct {
	base     screen.Screen
	overlays []screen.Screen
	log      *zap.Logger
}

// New creates a Router showing base. A nil logger discards output.
func New(base screen.Screen, log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{base: base, log: log}
}

// Show makes s the base screen, closes overlays and runs s.Init.
func (r *Router) Show(s screen.Screen) tea.Cmd {
	r.log.Debug("show screen", zap.String("title", s.Title()), zap.Int("dropped_overlays", len(r.overlays)))
	r.base = s
	r.overlays = nil
	return s.Init()
}

// Open places s above the active screen and runs s.Init.
func (r *Router) Open(s screen.Screen) tea.Cmd {
	r.log.Debug("open overlay", zap.String("title", s.Title()))
	r.overlays = append(r.overlays, s)
	return s.Init()
}

// Dismiss closes the topmost overlay and reports whether there was one.
func (r *Router) Dismiss() bool {
	n := len(r.overlays)
	if n == 0 {
		return false
	}
	r.overlays = r.overlays[:n-1]
	return true
}

// HasOverlay reports whether an overlay covers the base screen.
func (r *Router) HasOverlay() bool {
	return len(r.overlays) > 0
}

// Base returns the screen for the current assessment position.
func (r *Router) Base() screen.Screen {
	return r.base
}

// Active returns the screen receiving input: the top overlay, or the base.
func (r *Router) Active() screen.Screen {
	if n := len(r.overlays); n > 0 {
		return r.overlays[n-1]
	}
	return r.base
}

// Update applies navigation messages, or forwards msg to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ShowMsg:
		return r.Show(msg.Screen)
	case OverlayMsg:
		return r.Open(msg.Screen)
	case DismissMsg:
		r.Dismiss()
		return nil
	}

	if n := len(r.overlays); n > 0 {
		updated, cmd := r.overlays[n-1].Update(msg)
		r.overlays[n-1] = updated
		return cmd
	}
	if r.base == nil {
		return nil
	}
	updated, cmd := r.base.Update(msg)
	r.base = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
