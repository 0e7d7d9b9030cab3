package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/balancer/internal/assessment"
	"github.com/abhisek/balancer/internal/router"
	"github.com/abhisek/balancer/internal/scoring"
	"github.com/abhisek/balancer/internal/screen"
	"github.com/abhisek/balancer/internal/ui/components"
	"github.com/abhisek/balancer/internal/ui/layout"
	"github.com/abhisek/balancer/internal/ui/theme"
)

// exportDoneMsg reports the outcome of writing the session document.
type exportDoneMsg struct {
	path string
	err  error
}

// ResultsScreen shows the scored result of a completed assessment.
type ResultsScreen struct {
	sess       *assessment.Session
	route      func() screen.Screen
	exportPath string
	exportNote string
	menu       components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. When exportPath is set the session document
// is written there once the screen starts.
func New(sess *assessment.Session, route func() screen.Screen, exportPath string) *ResultsScreen {
	s := &ResultsScreen{sess: sess, route: route, exportPath: exportPath}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Start over", Action: s.restart},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.exportPath == "" {
		return nil
	}
	s.exportNote = "Saving results..."
	path := s.exportPath
	sess := s.sess
	return func() tea.Msg {
		doc, err := sess.Export()
		if err == nil {
			err = assessment.WriteFile(path, doc)
		}
		return exportDoneMsg{path: path, err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) restart() tea.Cmd {
	if _, err := s.sess.Start(context.Background()); err != nil {
		s.exportNote = err.Error()
		return nil
	}
	return router.Show(s.route())
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		if msg.err != nil {
			s.exportNote = "Could not save results: " + msg.err.Error()
		} else {
			s.exportNote = "Results saved to " + msg.path
		}
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "q" {
			return s, tea.Quit
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	r, ok := s.sess.Result()
	if !ok {
		return ""
	}
	st := s.sess.MustCurrent()
	cw := components.ContentWidth(width)

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Assessment complete"))
	b.WriteString("\n\n")

	score := lipgloss.NewStyle().Foreground(theme.BandColor(r.Profile.Band())).Bold(true).
		Render(fmt.Sprintf("%d / %d", r.OverallScore, scoring.MaxScore))
	profile := lipgloss.NewStyle().Foreground(theme.BandColor(r.Profile.Band())).
		Render(string(r.Profile))
	b.WriteString(score + "   " + profile)
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d questions answered in %s",
		st.AnsweredCount(), formatDuration(totalTime(st)))))
	b.WriteString("\n\n")

	b.WriteString(theme.Heading.Render("Section scores"))
	b.WriteString("\n")
	for _, ss := range r.SectionScores {
		b.WriteString(components.Meter{
			Label:      ss.DisplayLabel(),
			LabelWidth: 16,
			Value:      ss.Score,
			Max:        scoring.MaxScore,
			Width:      cw,
			Color:      theme.BandColor(scoring.BandFor(ss.Score)),
		}.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderList("Strengths", r.Strengths, theme.Success))
	b.WriteString(renderList("Areas to improve", r.Improvements, theme.Warning))
	b.WriteString(renderList("Recommendations", r.Recommendations, theme.Info))

	if s.exportNote != "" {
		b.WriteString(theme.Hint.Render(s.exportNote))
		b.WriteString("\n\n")
	}
	b.WriteString(s.menu.View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func renderList(title string, items []string, c color.Color) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")
	bullet := lipgloss.NewStyle().Foreground(c).Render("•")
	for _, item := range items {
		b.WriteString("  " + bullet + " " + lipgloss.NewStyle().Foreground(theme.Text).Render(item) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}

func totalTime(st assessment.State) time.Duration {
	var total time.Duration
	for _, d := range st.TimeSpent {
		total += d
	}
	return total
}

func formatDuration(d time.Duration) string {
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
