package intro

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/ui/layout"
	"github.com/abhisek/balancer/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 400 * time.Millisecond
	totalDur     = 1200 * time.Millisecond
)

type tickMsg time.Time

// IntroScreen presents the introduction section: the assessment title, a
// short reveal animation and an overview of the sections ahead.
type IntroScreen struct {
	sess    *assessment.Session
	route   func() screen.Screen
	elapsed time.Duration
	errMsg  string
	started bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen. route builds the screen for the session's
// position after the introduction.
func New(sess *assessment.Session, route func() screen.Screen) *IntroScreen {
	return &IntroScreen{sess: sess, route: route}
}

func (s *IntroScreen) Title() string {
	sec, _ := s.sess.Catalog().Section(0)
	return sec.Title
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Begin"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *IntroScreen) animating() bool {
	return s.elapsed < totalDur
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !s.animating() {
			return s, nil
		}
		s.elapsed += tickInterval
		return s, tick()

	case tea.KeyMsg:
		// Any key finishes the animation; Enter afterwards begins.
		if s.animating() {
			s.elapsed = totalDur
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.begin()
		}
	}
	return s, nil
}

func (s *IntroScreen) begin() tea.Cmd {
	if s.started {
		return nil
	}
	if _, err := s.sess.Next(context.Background()); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.started = true
	return router.Show(s.route())
}

func (s *IntroScreen) View(width, height int) string {
	cat := s.sess.Catalog()
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(scaleArt))

	if s.elapsed >= phase1End {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(cat.Title))
	}

	if !s.animating() {
		intro, _ := cat.Section(0)
		if intro.Description != "" {
			sections = append(sections, "", lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(min(width-8, 70)).
				Align(lipgloss.Center).
				Render(intro.Description))
		}
		sections = append(sections, "", renderOverview(s.sess, min(width-8, 70)))

		hint := "press Enter to begin"
		if s.errMsg != "" {
			hint = s.errMsg
		}
		sections = append(sections, "", theme.Hint.Render(hint))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderOverview lists the scored sections with their icons.
func renderOverview(sess *assessment.Session, width int) string {
	var b strings.Builder
	for i, sec := range sess.Catalog().ScoredSections() {
		status := fmt.Sprintf("%d scenarios", len(sec.Scenarios))
		if !sec.Implemented() {
			status = "coming soon"
		}
		line := fmt.Sprintf("%s  %d. %-24s %s", sec.IconGlyph(), i+1, sec.Title, status)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Width(width).Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
