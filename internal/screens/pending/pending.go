package pending

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/ui/components"
	"github.com/abhisek/balancer/internal/ui/layout"
	"github.com/abhisek/balancer/internal/ui/theme"
)

// PendingScreen stands in for a section that has no scenarios yet.
type PendingScreen struct {
	sess     *assessment.Session
	route    func() screen.Screen
	pos      assessment.Position
	errMsg   string
	advanced bool
}

var _ screen.Screen = (*PendingScreen)(nil)
var _ screen.KeyHintProvider = (*PendingScreen)(nil)

// New creates a PendingScreen for the session's current section.
func New(sess *assessment.Session, route func() screen.Screen) *PendingScreen {
	return &PendingScreen{
		sess:  sess,
		route: route,
		pos:   assessment.Describe(sess.MustCurrent(), sess.Catalog()),
	}
}

func (p *PendingScreen) Init() tea.Cmd {
	return nil
}

func (p *PendingScreen) Title() string {
	return p.pos.Section.Title
}

func (p *PendingScreen) KeyHints() []layout.KeyHint {
	action := "Continue"
	if p.pos.LastStep {
		action = "See results"
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: action},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+Z", Description: "Undo"},
	}
}

func (p *PendingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return p, p.advance()
	}
	return p, nil
}

func (p *PendingScreen) advance() tea.Cmd {
	if p.advanced {
		return nil
	}
	if _, err := p.sess.Next(context.Background()); err != nil {
		p.errMsg = err.Error()
		return nil
	}
	p.advanced = true
	return router.Show(p.route())
}

func (p *PendingScreen) View(width, height int) string {
	sec := p.pos.Section
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("%s  %s", sec.IconGlyph(), sec.Title))
	desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Align(lipgloss.Center).
		Render(sec.Description)
	body := lipgloss.NewStyle().Foreground(theme.Text).
		Render("╌╌ Coming Soon ╌╌\n\nThis section is still being prepared.\nIt does not affect your results.")

	label := "Continue"
	if p.pos.LastStep {
		label = "See results"
	}
	parts := []string{title, "", desc, "", components.Card(body, cw), "", components.Button(label, true)}
	if p.errMsg != "" {
		parts = append(parts, "", theme.Notice.Render(p.errMsg))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
