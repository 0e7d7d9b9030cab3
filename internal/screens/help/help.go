// Package help shows the key bindings as an overlay.
package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/catalog"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/ui/components"
	"github.com/abhisek/balancer/internal/ui/layout"
	"github.com/abhisek/balancer/internal/ui/theme"
)

type binding struct {
	keys string
	desc string
}

type group struct {
	title    string
	bindings []binding
}

var groups = []group{
	{"Moving around", []binding{
		{"Enter", "Begin, choose, or continue"},
		{"Tab / Shift+Tab", "Next or previous question"},
		{"Esc", "Go back one step"},
		{"Ctrl+Z", "Undo the last change"},
	}},
	{"Answering", []binding{
		{"↑↓ or 1-9", "Pick an option"},
		{"←→", "Move along a scale"},
		{"Space", "Pick up a ranked item, then ↑↓ to move it"},
		{"Shift+↑↓", "Move a ranked item directly"},
	}},
	{"Anywhere", []binding{
		{"?", "Show this help"},
		{"Ctrl+C", "Quit"},
	}},
}

// HelpScreen lists key bindings and the kinds of questions asked.
type HelpScreen struct{}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

func New() *HelpScreen { return &HelpScreen{} }

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string { return "Help" }

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "?", "q", "enter":
			return h, func() tea.Msg { return router.DismissMsg{} }
		}
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	keyStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(18)

	var b strings.Builder
	for i, g := range groups {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Heading.Render(g.title))
		b.WriteString("\n")
		for _, kb := range g.bindings {
			b.WriteString("  " + keyStyle.Render(kb.keys) + theme.Body.Render(kb.desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Question kinds"))
	b.WriteString("\n")
	for _, qt := range catalog.AllQuestionTypes() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  • %s", qt.DisplayName())))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("Questions marked * must be answered before you can continue."))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(b.String(), cw))
}
